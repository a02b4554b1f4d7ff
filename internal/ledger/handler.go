package ledger

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wallet and ledger HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a ledger HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type depositRequest struct {
	WalletID string  `json:"wallet_id"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

type swapRequest struct {
	WalletID     string  `json:"wallet_id"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	Amount       float64 `json:"amount"`
}

type transferRequest struct {
	FromWallet string  `json:"from_wallet"`
	ToWallet   string  `json:"to_wallet"`
	Currency   string  `json:"currency"`
	Amount     float64 `json:"amount"`
}

// CreateWallet provisions a new wallet with zero balances.
func (h *Handler) CreateWallet(c *fiber.Ctx) error {
	w, err := h.service.CreateWallet(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"wallet_id": w.ID,
		"balances":  w.Balances,
	})
}

// GetWallet returns the wallet's current balances.
func (h *Handler) GetWallet(c *fiber.Ctx) error {
	w, err := h.service.GetWallet(c.UserContext(), c.Params("walletId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"wallet_id": w.ID,
		"balances":  w.Balances,
	})
}

// Deposit credits funds to a wallet.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}
	balances, err := h.service.Deposit(c.UserContext(), req.WalletID, req.Currency, req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"wallet_id": req.WalletID,
		"balances":  balances,
	})
}

// Swap converts between two currency balances within one wallet.
func (h *Handler) Swap(c *fiber.Ctx) error {
	var req swapRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}
	res, err := h.service.Swap(c.UserContext(), req.WalletID, req.FromCurrency, req.ToCurrency, req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":           "success",
		"wallet_id":        res.WalletID,
		"from_currency":    res.FromCurrency,
		"to_currency":      res.ToCurrency,
		"rate":             res.Rate,
		"converted_amount": res.ConvertedAmount,
		"balances":         res.Balances,
	})
}

// Transfer moves funds between two wallets.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}
	res, err := h.service.Transfer(c.UserContext(), req.FromWallet, req.ToWallet, req.Currency, req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":        "success",
		"from_wallet":   res.FromWalletID,
		"to_wallet":     res.ToWalletID,
		"currency":      res.Currency,
		"amount":        res.Amount,
		"from_balances": res.FromBalances,
		"to_balances":   res.ToBalances,
		"completed_at":  res.CompletedAt,
	})
}

// respondError maps the ledger error taxonomy to stable boundary codes. The
// codes are part of the API contract and never renamed.
func respondError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := "internal_error"
	switch {
	case errors.Is(err, ErrWalletNotFound):
		status, code = http.StatusNotFound, "wallet_not_found"
	case errors.Is(err, ErrUnsupportedCurrency):
		status, code = http.StatusBadRequest, "unsupported_currency"
	case errors.Is(err, ErrInvalidAmount):
		status, code = http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, ErrInsufficientFunds):
		status, code = http.StatusBadRequest, "insufficient_funds"
	case errors.Is(err, ErrRateUnavailable):
		status, code = http.StatusBadRequest, "rate_unavailable"
	}
	return c.Status(status).JSON(fiber.Map{"code": code, "error": err.Error()})
}

// respondInvalidBody handles undecodable request bodies, e.g. a non-numeric
// amount field, before they reach the engine.
func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"code":  "invalid_amount",
		"error": "invalid input: amount must be a numeric value",
	})
}
