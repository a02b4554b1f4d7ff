package wallet

import "time"

// Wallet is a custodial account holding one balance per currency, identified
// by an opaque token. Every balance is non-negative at all times.
type Wallet struct {
	ID        string
	Balances  map[string]float64
	CreatedAt time.Time
}

// cloneBalances copies a balance map so callers never observe live store state.
func cloneBalances(balances map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(balances))
	for currency, amount := range balances {
		out[currency] = amount
	}
	return out
}
