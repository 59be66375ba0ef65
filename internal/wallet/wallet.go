package wallet

import (
	"context"
	"errors"
	"fmt"
)

var ErrInsufficientFunds = errors.New("insufficient_funds")

// Store is the balance backend the ledger drives. Implementations must
// make every mutation atomic on the backend; the ledger holds no locks
// of its own.
type Store interface {
	Balance(ctx context.Context, account string) (int64, error)
	Add(ctx context.Context, account string, delta int64) (int64, error)
	DebitIfEnough(ctx context.Context, account string, amount int64) (int64, bool, error)
	InitBalance(ctx context.Context, account string, initial int64) error
}

// Ledger exposes credit and funds-checked debit over one account.
type Ledger struct {
	store   Store
	account string
}

func New(store Store, account string) *Ledger {
	return &Ledger{store: store, account: account}
}

// Init seeds the account balance if it has never been written. Callers
// must complete this before serving traffic.
func (l *Ledger) Init(ctx context.Context, initial int64) error {
	return l.store.InitBalance(ctx, l.account, initial)
}

func (l *Ledger) Balance(ctx context.Context) (int64, error) {
	return l.store.Balance(ctx, l.account)
}

// Credit adds amount and returns the new balance.
func (l *Ledger) Credit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive, got %d", amount)
	}
	return l.store.Add(ctx, l.account, amount)
}

// Debit removes amount only if the balance covers it. The check and the
// decrement are one backend operation, so concurrent debits cannot both
// pass a stale check and overdraw the account. On insufficient funds it
// returns the untouched balance and ErrInsufficientFunds.
func (l *Ledger) Debit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("debit amount must be positive, got %d", amount)
	}
	bal, ok, err := l.store.DebitIfEnough(ctx, l.account, amount)
	if err != nil {
		return 0, err
	}
	if !ok {
		return bal, ErrInsufficientFunds
	}
	return bal, nil
}
