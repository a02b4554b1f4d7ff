package wallet

import (
	"context"
	"errors"
)

var (
	// ErrNotFound occurs when the referenced wallet identifier does not exist.
	ErrNotFound = errors.New("wallet not found")

	// ErrInsufficientFunds occurs when a debit would push a balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Store owns the mapping from wallet identifier to per-currency balances.
// It is currency-agnostic: currency support checks belong to the caller.
// Credit and Debit take amounts the caller has already validated as positive.
type Store interface {
	Create(ctx context.Context) (Wallet, error)
	Get(ctx context.Context, id string) (Wallet, error)
	Credit(ctx context.Context, id, currency string, amount float64) (map[string]float64, error)
	Debit(ctx context.Context, id, currency string, amount float64) (map[string]float64, error)
}
