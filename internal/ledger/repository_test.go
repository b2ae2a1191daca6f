package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/store/memstore"
)

func TestLoad_Defaults(t *testing.T) {
	repo := NewRepository(memstore.New())

	l, err := repo.Load("nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", l.UserID)
	assert.Empty(t, l.Transactions)
	assert.Empty(t, l.Goals)
	assert.True(t, l.Budget.IsZero())
	assert.Equal(t, "USD", l.Currency)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := memstore.New()
	repo := NewRepository(st)

	l := &model.Ledger{
		UserID: "user-1",
		Transactions: []model.Transaction{
			{
				ID:        "t1",
				Type:      model.TypeExpense,
				Amount:    dec("12.50"),
				Category:  "food",
				Date:      "2025-08-20",
				Timestamp: time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC),
				Currency:  "USD",
			},
		},
		Budget: dec("1000"),
		Goals: []model.Goal{
			{
				ID:           "g1",
				Name:         "trip",
				TargetAmount: dec("800"),
				TargetDate:   "2026-06-01",
				Currency:     "USD",
			},
		},
		Currency: "EUR",
	}
	require.NoError(t, repo.Save(l))

	got, err := repo.Load("user-1")
	require.NoError(t, err)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "t1", got.Transactions[0].ID)
	assert.True(t, got.Transactions[0].Amount.Equal(dec("12.50")))
	assert.True(t, got.Budget.Equal(dec("1000")))
	require.Len(t, got.Goals, 1)
	assert.True(t, got.Goals[0].CurrentAmount.IsZero())
	assert.Equal(t, "EUR", got.Currency)
}

func TestSave_NamespacesByUser(t *testing.T) {
	st := memstore.New()
	repo := NewRepository(st)

	a := &model.Ledger{UserID: "alice", Budget: dec("100"), Currency: "USD"}
	b := &model.Ledger{UserID: "bob", Budget: dec("200"), Currency: "GBP"}
	require.NoError(t, repo.Save(a))
	require.NoError(t, repo.Save(b))

	gotA, err := repo.Load("alice")
	require.NoError(t, err)
	gotB, err := repo.Load("bob")
	require.NoError(t, err)

	assert.True(t, gotA.Budget.Equal(dec("100")))
	assert.Equal(t, "USD", gotA.Currency)
	assert.True(t, gotB.Budget.Equal(dec("200")))
	assert.Equal(t, "GBP", gotB.Currency)
}

func TestLoad_BudgetStoredAsText(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.Set("user-1_budget", "42.75"))

	repo := NewRepository(st)
	l, err := repo.Load("user-1")
	require.NoError(t, err)
	assert.True(t, l.Budget.Equal(decimal.RequireFromString("42.75")))
}
