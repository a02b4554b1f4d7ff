package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tinsise/borderless/internal/journal"
)

// RegisterTransactionRoutes wires the transaction journal listing.
func RegisterTransactionRoutes(r fiber.Router, h *journal.Handler) {
	r.Get("/transactions", h.List)
}
