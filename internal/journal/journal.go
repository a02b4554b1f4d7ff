package journal

import (
	"sync"
	"time"
)

// Kind identifies the ledger operation a record was produced by.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindSwap     Kind = "swap"
	KindTransfer Kind = "transfer"
)

// Record is an immutable entry in the transaction journal. A record is
// appended exactly once, when its ledger operation succeeds, and never
// mutated afterwards. Swap records carry the rate that was applied at
// execution time; rates may change later and are never recomputed.
type Record struct {
	Seq             uint64    `json:"seq"`
	Kind            Kind      `json:"kind"`
	WalletID        string    `json:"wallet_id"`
	CounterWalletID string    `json:"counter_wallet_id,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	FromCurrency    string    `json:"from_currency,omitempty"`
	ToCurrency      string    `json:"to_currency,omitempty"`
	Amount          float64   `json:"amount"`
	ConvertedAmount float64   `json:"converted_amount,omitempty"`
	Rate            float64   `json:"rate,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Journal is an append-only, concurrency-safe transaction log. Records are
// held in append order, which is also chronological order.
type Journal struct {
	mu      sync.RWMutex
	records []Record
	seq     uint64
}

// New constructs an empty journal.
func New() *Journal {
	return &Journal{}
}

// Append stores the record, assigning the next sequence number and a UTC
// timestamp, and returns the stored form.
func (j *Journal) Append(r Record) Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.seq++
	r.Seq = j.seq
	r.CreatedAt = time.Now().UTC()
	j.records = append(j.records, r)
	return r
}

// ByWallet returns the records attributed to the wallet in append order.
// Transfers are attributed to their source wallet; the destination appears
// as the counter wallet on the same record.
func (j *Journal) ByWallet(id string) []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []Record
	for _, r := range j.records {
		if r.WalletID == id {
			out = append(out, r)
		}
	}
	return out
}

// All returns every record in append order.
func (j *Journal) All() []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Record, len(j.records))
	copy(out, j.records)
	return out
}

// Len reports the number of records appended so far.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.records)
}
