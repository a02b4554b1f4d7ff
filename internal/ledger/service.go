package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tinsise/borderless/internal/fx"
	"github.com/tinsise/borderless/internal/journal"
	"github.com/tinsise/borderless/internal/notification"
	"github.com/tinsise/borderless/internal/wallet"
)

// Service is the ledger engine: the sole owner and mutator of the wallet
// store and the transaction journal. Every operation runs as
// validate -> authorize -> mutate -> record; a failure before the mutate
// step leaves no observable state change.
//
// Operations serialize on per-wallet locks so that no reader or writer can
// observe a debit without its paired credit. Multi-wallet operations take
// their locks in identifier order.
type Service struct {
	store    wallet.Store
	rates    *fx.Table
	journal  *journal.Journal
	notifier notification.Notifier
	locks    *lockTable
}

// NewService builds the ledger engine. The notifier may be nil.
func NewService(store wallet.Store, rates *fx.Table, jrnl *journal.Journal, notifier notification.Notifier) *Service {
	return &Service{
		store:    store,
		rates:    rates,
		journal:  jrnl,
		notifier: notifier,
		locks:    newLockTable(),
	}
}

// SwapResult describes the outcome of a currency swap.
type SwapResult struct {
	WalletID        string
	FromCurrency    string
	ToCurrency      string
	Rate            float64
	ConvertedAmount float64
	Balances        map[string]float64
}

// TransferResult describes the outcome of a wallet-to-wallet transfer.
type TransferResult struct {
	FromWalletID string
	ToWalletID   string
	Currency     string
	Amount       float64
	FromBalances map[string]float64
	ToBalances   map[string]float64
	CompletedAt  time.Time
}

// CreateWallet provisions a wallet seeded with a zero balance for every
// supported currency.
func (s *Service) CreateWallet(ctx context.Context) (wallet.Wallet, error) {
	return s.store.Create(ctx)
}

// GetWallet returns the wallet's current balances. The read takes the wallet
// lock so it can never surface a half-applied swap or transfer.
func (s *Service) GetWallet(ctx context.Context, walletID string) (wallet.Wallet, error) {
	unlock := s.locks.acquire(walletID)
	defer unlock()
	return s.store.Get(ctx, walletID)
}

// Deposit credits the amount to the wallet and records the transaction.
func (s *Service) Deposit(ctx context.Context, walletID, currency string, amount float64) (map[string]float64, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if !s.rates.Supported(currency) {
		return nil, ErrUnsupportedCurrency
	}

	unlock := s.locks.acquire(walletID)
	balances, err := s.store.Credit(ctx, walletID, currency, amount)
	if err != nil {
		unlock()
		return nil, err
	}
	s.journal.Append(journal.Record{
		Kind:     journal.KindDeposit,
		WalletID: walletID,
		Currency: currency,
		Amount:   amount,
	})
	unlock()

	return balances, nil
}

// Swap converts amount from one currency balance into another within a single
// wallet at the configured rate. Debit and credit are applied under the
// wallet lock as one atomic unit, and the journal captures the rate that was
// actually applied.
func (s *Service) Swap(ctx context.Context, walletID, fromCurrency, toCurrency string, amount float64) (SwapResult, error) {
	if err := validateAmount(amount); err != nil {
		return SwapResult{}, err
	}
	if !s.rates.Supported(fromCurrency) || !s.rates.Supported(toCurrency) {
		return SwapResult{}, ErrUnsupportedCurrency
	}
	// Same-currency swaps are rejected outright rather than treated as a
	// rate-1 no-op.
	if fromCurrency == toCurrency {
		return SwapResult{}, ErrInvalidAmount
	}

	unlock := s.locks.acquire(walletID)
	defer unlock()

	w, err := s.store.Get(ctx, walletID)
	if err != nil {
		return SwapResult{}, err
	}
	if w.Balances[fromCurrency] < amount {
		return SwapResult{}, ErrInsufficientFunds
	}
	rate, ok := s.rates.Lookup(fromCurrency, toCurrency)
	if !ok {
		return SwapResult{}, ErrRateUnavailable
	}
	converted := amount * rate

	if _, err := s.store.Debit(ctx, walletID, fromCurrency, amount); err != nil {
		return SwapResult{}, err
	}
	balances, err := s.store.Credit(ctx, walletID, toCurrency, converted)
	if err != nil {
		return SwapResult{}, err
	}

	s.journal.Append(journal.Record{
		Kind:            journal.KindSwap,
		WalletID:        walletID,
		FromCurrency:    fromCurrency,
		ToCurrency:      toCurrency,
		Amount:          amount,
		ConvertedAmount: converted,
		Rate:            rate,
	})

	return SwapResult{
		WalletID:        walletID,
		FromCurrency:    fromCurrency,
		ToCurrency:      toCurrency,
		Rate:            rate,
		ConvertedAmount: converted,
		Balances:        balances,
	}, nil
}

// Transfer moves amount of a single currency between two wallets. Both wallet
// locks are held for the debit and credit, acquired in identifier order so
// crossing transfers cannot deadlock.
func (s *Service) Transfer(ctx context.Context, fromWalletID, toWalletID, currency string, amount float64) (TransferResult, error) {
	if err := validateAmount(amount); err != nil {
		return TransferResult{}, err
	}
	if !s.rates.Supported(currency) {
		return TransferResult{}, ErrUnsupportedCurrency
	}

	unlock := s.locks.acquire(fromWalletID, toWalletID)

	// Both wallets must exist before any mutation.
	if _, err := s.store.Get(ctx, toWalletID); err != nil {
		unlock()
		return TransferResult{}, err
	}
	fromBalances, err := s.store.Debit(ctx, fromWalletID, currency, amount)
	if err != nil {
		unlock()
		return TransferResult{}, err
	}
	toBalances, err := s.store.Credit(ctx, toWalletID, currency, amount)
	if err != nil {
		unlock()
		return TransferResult{}, err
	}

	s.journal.Append(journal.Record{
		Kind:            journal.KindTransfer,
		WalletID:        fromWalletID,
		CounterWalletID: toWalletID,
		Currency:        currency,
		Amount:          amount,
	})
	unlock()

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindTransferReceived,
			Destination: toWalletID,
			Body:        fmt.Sprintf("You received %v %s from wallet %s", amount, currency, fromWalletID),
		})
	}

	return TransferResult{
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
		Currency:     currency,
		Amount:       amount,
		FromBalances: fromBalances,
		ToBalances:   toBalances,
		CompletedAt:  time.Now().UTC(),
	}, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
