package ledger

import (
	"errors"

	"github.com/tinsise/borderless/internal/wallet"
)

var (
	// ErrWalletNotFound occurs when a referenced wallet identifier is unknown.
	ErrWalletNotFound = wallet.ErrNotFound

	// ErrInsufficientFunds occurs when the source balance cannot cover the
	// requested amount.
	ErrInsufficientFunds = wallet.ErrInsufficientFunds

	// ErrUnsupportedCurrency occurs when a currency code is outside the
	// configured set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrInvalidAmount occurs when an amount is non-positive, NaN or infinite,
	// or when a swap names the same currency on both sides.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrRateUnavailable occurs when no exchange rate is configured for the
	// requested currency pair.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
