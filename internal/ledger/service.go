package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/currency"
	"github.com/pennywise-dev/pennywise/internal/id"
	"github.com/pennywise-dev/pennywise/internal/model"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidGoal   = errors.New("goal needs a name, a positive amount, and a target date")
	ErrNotLoaded     = errors.New("no ledger loaded")
)

// Notifier is told after every successful mutation. Presentation
// layers hang refresh scheduling off this; the ledger is already
// consistent when Changed fires, so a dropped or delayed refresh can
// never show half-applied state.
type Notifier interface {
	Changed()
}

// Service owns the in-memory ledger for the active user. Every
// mutation persists through the repository before touching memory, so
// a failed save leaves the in-memory view exactly as it was.
//
// Mutations follow the single-writer event model; the lock exists so
// observers (a debounced refresh callback on a timer goroutine) can
// call Ledger concurrently. Each mutation installs a fresh copy and
// never writes through a previously returned pointer, so a snapshot
// handed out by Ledger stays stable while the state moves on.
type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time

	mu     sync.RWMutex
	ledger *model.Ledger
}

// NewService creates a ledger Service with no ledger loaded.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SetNotifier registers the change observer. Pass nil to detach.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Load replaces the in-memory ledger with the stored state for userID.
func (s *Service) Load(userID string) error {
	l, err := s.repo.Load(userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ledger = l
	s.mu.Unlock()
	return nil
}

// Reset drops the in-memory ledger without touching the store. Used on
// logout.
func (s *Service) Reset() {
	s.mu.Lock()
	s.ledger = nil
	s.mu.Unlock()
}

// Ledger returns a snapshot of the current state, or nil if none
// loaded. The snapshot is never mutated by later operations.
func (s *Service) Ledger() *model.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger
}

// TransactionDraft carries user input for a new transaction. An empty
// Date defaults to today.
type TransactionDraft struct {
	Type        model.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        string
}

// AddTransaction validates the draft, assigns an ID and creation
// timestamp, inserts at the head of the sequence, and persists.
func (s *Service) AddTransaction(draft TransactionDraft) (*model.Transaction, error) {
	cur := s.Ledger()
	if cur == nil {
		return nil, ErrNotLoaded
	}
	if draft.Type != model.TypeIncome && draft.Type != model.TypeExpense {
		return nil, fmt.Errorf("unknown transaction type %q", draft.Type)
	}
	if !draft.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	now := s.now()
	date := draft.Date
	if date == "" {
		date = model.DateOf(now)
	} else if _, err := time.Parse(model.DateFormat, date); err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}

	tx := model.Transaction{
		ID:          id.New(),
		Type:        draft.Type,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        date,
		Timestamp:   now.UTC(),
		Currency:    cur.Currency,
	}

	next := *cur
	next.Transactions = append([]model.Transaction{tx}, cur.Transactions...)
	if err := s.commit(&next); err != nil {
		return nil, err
	}
	return &tx, nil
}

// SetBudget replaces the whole-history spending ceiling.
func (s *Service) SetBudget(amount decimal.Decimal) error {
	cur := s.Ledger()
	if cur == nil {
		return ErrNotLoaded
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	next := *cur
	next.Budget = amount
	return s.commit(&next)
}

// GoalDraft carries user input for a new savings goal.
type GoalDraft struct {
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   string
}

// AddGoal validates the draft, assigns an ID and creation timestamp,
// starts progress at zero, appends, and persists.
func (s *Service) AddGoal(draft GoalDraft) (*model.Goal, error) {
	cur := s.Ledger()
	if cur == nil {
		return nil, ErrNotLoaded
	}
	if draft.Name == "" || !draft.TargetAmount.IsPositive() || draft.TargetDate == "" {
		return nil, ErrInvalidGoal
	}
	if _, err := time.Parse(model.DateFormat, draft.TargetDate); err != nil {
		return nil, fmt.Errorf("parsing target date %q: %w", draft.TargetDate, err)
	}

	goal := model.Goal{
		ID:            id.New(),
		Name:          draft.Name,
		TargetAmount:  draft.TargetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    draft.TargetDate,
		CreatedAt:     s.now().UTC(),
		Currency:      cur.Currency,
	}

	next := *cur
	next.Goals = append(append([]model.Goal(nil), cur.Goals...), goal)
	if err := s.commit(&next); err != nil {
		return nil, err
	}
	return &goal, nil
}

// RemoveGoal filters out the goal with the given ID. Removing an
// unknown ID is a no-op that still persists.
func (s *Service) RemoveGoal(goalID string) error {
	cur := s.Ledger()
	if cur == nil {
		return ErrNotLoaded
	}

	kept := make([]model.Goal, 0, len(cur.Goals))
	for _, g := range cur.Goals {
		if g.ID != goalID {
			kept = append(kept, g)
		}
	}

	next := *cur
	next.Goals = kept
	return s.commit(&next)
}

// Clear resets transactions and goals to empty and the budget to zero.
// The selected currency survives a clear.
func (s *Service) Clear() error {
	cur := s.Ledger()
	if cur == nil {
		return ErrNotLoaded
	}

	next := *cur
	next.Transactions = nil
	next.Goals = nil
	next.Budget = decimal.Zero
	return s.commit(&next)
}

// ChangeCurrency sets the ambient currency that labels new records.
// Existing records keep the currency they were created with.
func (s *Service) ChangeCurrency(code string) error {
	cur := s.Ledger()
	if cur == nil {
		return ErrNotLoaded
	}
	if !currency.Known(code) {
		return fmt.Errorf("unknown currency %q", code)
	}

	next := *cur
	next.Currency = code
	return s.commit(&next)
}

// commit persists the candidate state and, only on success, installs
// it as the in-memory state and notifies the observer. The notifier
// runs outside the lock so its callback may call Ledger freely.
func (s *Service) commit(next *model.Ledger) error {
	if err := s.repo.Save(next); err != nil {
		return err
	}
	s.mu.Lock()
	s.ledger = next
	s.mu.Unlock()
	if s.notifier != nil {
		s.notifier.Changed()
	}
	return nil
}
