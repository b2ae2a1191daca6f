// Package ledger persists and mutates a user's financial state.
package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/currency"
	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/store"
)

// Per-user store fields; the full key is "{userID}_{field}".
const (
	fieldTransactions = "transactions"
	fieldBudget       = "budget"
	fieldGoals        = "goals"
	fieldCurrency     = "currency"
)

func key(userID, field string) string {
	return userID + "_" + field
}

// Repository loads and saves whole ledgers. Save writes all four
// fields every time; no partial-field primitive is exposed.
type Repository interface {
	Load(userID string) (*model.Ledger, error)
	Save(l *model.Ledger) error
}

// Ensure StoreRepository implements Repository
var _ Repository = (*StoreRepository)(nil)

// StoreRepository implements Repository over an opaque key-value
// store, serializing list fields as JSON and scalars as plain text.
type StoreRepository struct {
	store store.Store
}

// NewRepository creates a StoreRepository over the given store.
func NewRepository(st store.Store) *StoreRepository {
	return &StoreRepository{store: st}
}

// Load reads all four fields for a user. Missing transactions and
// goals come back empty, a missing budget is zero, and a missing
// currency defaults to USD.
func (r *StoreRepository) Load(userID string) (*model.Ledger, error) {
	l := &model.Ledger{
		UserID:   userID,
		Budget:   decimal.Zero,
		Currency: currency.Default,
	}

	if raw, ok, err := r.store.Get(key(userID, fieldTransactions)); err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &l.Transactions); err != nil {
			return nil, fmt.Errorf("parsing transactions: %w", err)
		}
	}

	if raw, ok, err := r.store.Get(key(userID, fieldBudget)); err != nil {
		return nil, fmt.Errorf("loading budget: %w", err)
	} else if ok {
		budget, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing budget %q: %w", raw, err)
		}
		l.Budget = budget
	}

	if raw, ok, err := r.store.Get(key(userID, fieldGoals)); err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &l.Goals); err != nil {
			return nil, fmt.Errorf("parsing goals: %w", err)
		}
	}

	if raw, ok, err := r.store.Get(key(userID, fieldCurrency)); err != nil {
		return nil, fmt.Errorf("loading currency: %w", err)
	} else if ok && raw != "" {
		l.Currency = raw
	}

	return l, nil
}

// Save writes all four fields for the ledger's user.
func (r *StoreRepository) Save(l *model.Ledger) error {
	transactions, err := json.Marshal(l.Transactions)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}
	goals, err := json.Marshal(l.Goals)
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}

	if err := r.store.Set(key(l.UserID, fieldTransactions), string(transactions)); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	if err := r.store.Set(key(l.UserID, fieldBudget), l.Budget.String()); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}
	if err := r.store.Set(key(l.UserID, fieldGoals), string(goals)); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}
	if err := r.store.Set(key(l.UserID, fieldCurrency), l.Currency); err != nil {
		return fmt.Errorf("saving currency: %w", err)
	}
	return nil
}
