package journal

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the transaction journal over HTTP.
type Handler struct {
	journal *Journal
}

// NewHandler builds a journal HTTP handler.
func NewHandler(journal *Journal) *Handler {
	return &Handler{journal: journal}
}

// List returns transaction records in chronological order. An optional
// wallet_id query parameter narrows the listing to one wallet.
func (h *Handler) List(c *fiber.Ctx) error {
	var records []Record
	if walletID := c.Query("wallet_id"); walletID != "" {
		records = h.journal.ByWallet(walletID)
	} else {
		records = h.journal.All()
	}
	if records == nil {
		records = []Record{}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"transactions": records,
		"count":        len(records),
	})
}
