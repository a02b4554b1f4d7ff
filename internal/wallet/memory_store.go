package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu         sync.RWMutex
	wallets    map[string]*Wallet
	currencies []string
}

// NewMemoryStore constructs an in-memory wallet store. New wallets are seeded
// with a zero balance for every supported currency, so reads never need to
// special-case absent currencies.
func NewMemoryStore(currencies []string) Store {
	seeded := make([]string, len(currencies))
	copy(seeded, currencies)
	return &memoryStore{
		wallets:    make(map[string]*Wallet),
		currencies: seeded,
	}
}

func (s *memoryStore) Create(_ context.Context) (Wallet, error) {
	balances := make(map[string]float64, len(s.currencies))
	for _, currency := range s.currencies {
		balances[currency] = 0
	}

	w := &Wallet{
		ID:        uuid.NewString(),
		Balances:  balances,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[w.ID] = w

	return Wallet{ID: w.ID, Balances: cloneBalances(w.Balances), CreatedAt: w.CreatedAt}, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wallets[id]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	return Wallet{ID: w.ID, Balances: cloneBalances(w.Balances), CreatedAt: w.CreatedAt}, nil
}

func (s *memoryStore) Credit(_ context.Context, id, currency string, amount float64) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[id]
	if !ok {
		return nil, ErrNotFound
	}
	w.Balances[currency] += amount
	return cloneBalances(w.Balances), nil
}

func (s *memoryStore) Debit(_ context.Context, id, currency string, amount float64) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[id]
	if !ok {
		return nil, ErrNotFound
	}
	if w.Balances[currency] < amount {
		return nil, ErrInsufficientFunds
	}
	w.Balances[currency] -= amount
	return cloneBalances(w.Balances), nil
}
