package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tinsise/borderless/internal/ledger"
)

// RegisterWalletRoutes wires wallet-related endpoints.
func RegisterWalletRoutes(r fiber.Router, h *ledger.Handler) {
	r.Post("/wallets", h.CreateWallet)
	r.Get("/wallets/:walletId", h.GetWallet)
}
