package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tinsise/borderless/internal/ledger"
)

// RegisterLedgerRoutes wires the balance-affecting ledger endpoints.
func RegisterLedgerRoutes(r fiber.Router, h *ledger.Handler) {
	r.Post("/deposit", h.Deposit)
	r.Post("/swap", h.Swap)
	r.Post("/transfer", h.Transfer)
}
