package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func tx(t model.TransactionType, amount, category, day string) model.Transaction {
	return model.Transaction{Type: t, Amount: dec(amount), Category: category, Date: day}
}

func TestTotalsOf(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TypeIncome, "1000.00", "salary", "2025-08-01"),
		tx(model.TypeExpense, "300.00", "food", "2025-08-02"),
		tx(model.TypeExpense, "400.00", "transport", "2025-08-03"),
		tx(model.TypeIncome, "50.50", "other", "2025-08-04"),
	}

	totals := TotalsOf(transactions)
	assert.True(t, totals.Income.Equal(dec("1050.50")))
	assert.True(t, totals.Expenses.Equal(dec("700.00")))
	assert.True(t, totals.Net.Equal(totals.Income.Sub(totals.Expenses)), "net must equal income minus expenses")
}

func TestTotalsOf_Empty(t *testing.T) {
	totals := TotalsOf(nil)
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expenses.IsZero())
	assert.True(t, totals.Net.IsZero())
}

func TestBudgetUsage(t *testing.T) {
	// budget=1000, expenses=300+400 -> 70%.
	assert.InDelta(t, 70, BudgetUsage(dec("700"), dec("1000")), 0.0001)

	// Raw usage is unclamped past 100.
	raw := BudgetUsage(dec("1200"), dec("1000"))
	assert.InDelta(t, 120, raw, 0.0001)
	assert.InDelta(t, 100, ClampPercent(raw), 0.0001, "display percent clamps at 100")

	// No budget set -> zero.
	assert.Zero(t, BudgetUsage(dec("500"), decimal.Zero))
}

func TestRemaining(t *testing.T) {
	assert.True(t, Remaining(dec("700"), dec("1000")).Equal(dec("300")))
	assert.True(t, Remaining(dec("1200"), dec("1000")).IsZero(), "overrun floors at zero")
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, BudgetOnTrack, StatusOf(70))
	assert.Equal(t, BudgetWatch, StatusOf(80))
	assert.Equal(t, BudgetOver, StatusOf(95))
	assert.Equal(t, BudgetOver, StatusOf(120))
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TypeExpense, "300.00", "food", "2025-08-01"),
		tx(model.TypeExpense, "100.00", "transport", "2025-08-01"),
		tx(model.TypeExpense, "100.00", "food", "2025-08-02"),
		tx(model.TypeIncome, "2000.00", "salary", "2025-08-01"), // income never counts
	}

	shares := CategoryBreakdown(transactions)
	require.Len(t, shares, 2)

	// Sorted descending by amount.
	assert.Equal(t, "food", shares[0].Category)
	assert.True(t, shares[0].Amount.Equal(dec("400.00")))
	assert.Equal(t, "transport", shares[1].Category)

	sum := 0.0
	for _, s := range shares {
		sum += s.Percent
	}
	assert.InDelta(t, 100, sum, 0.01, "percentages must cover the whole")
}

func TestCategoryBreakdown_NoExpenses(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TypeIncome, "100.00", "salary", "2025-08-01"),
	}
	assert.Empty(t, CategoryBreakdown(transactions))
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestTimeSeries_Week(t *testing.T) {
	ref := date(2025, 8, 20)
	transactions := []model.Transaction{
		tx(model.TypeIncome, "50.00", "salary", "2025-08-20"),
		tx(model.TypeExpense, "10.00", "food", "2025-08-18"),
		tx(model.TypeIncome, "99.00", "salary", "2025-08-01"), // outside the window
	}

	s := TimeSeries(transactions, 7, ref)
	require.Len(t, s.Labels, 7)
	require.Len(t, s.Income, 7)
	require.Len(t, s.Expenses, 7)

	// Oldest first; the reference day is the last bucket.
	assert.Equal(t, "2025-08-14", s.Dates[0])
	assert.Equal(t, "2025-08-20", s.Dates[6])
	assert.True(t, s.Income[6].Equal(dec("50.00")))
	assert.True(t, s.Expenses[4].Equal(dec("10.00")))

	for i := 0; i < 6; i++ {
		assert.True(t, s.Income[i].IsZero(), "bucket %d income", i)
	}

	// Weekday labels for periods up to a week.
	assert.Equal(t, "Wed", s.Labels[6])
}

func TestTimeSeries_MonthLabels(t *testing.T) {
	s := TimeSeries(nil, 30, date(2025, 8, 20))
	require.Len(t, s.Labels, 30)
	assert.Equal(t, "Jul 22", s.Labels[0])
	assert.Equal(t, "Aug 20", s.Labels[29])
}

func TestTimeSeries_DoesNotMutateInput(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TypeIncome, "50.00", "salary", "2025-08-20"),
	}
	TimeSeries(transactions, 7, date(2025, 8, 20))
	assert.True(t, transactions[0].Amount.Equal(dec("50.00")))
	assert.Equal(t, "2025-08-20", transactions[0].Date)
}

func TestGoalProgress(t *testing.T) {
	now := date(2025, 8, 20)

	g := model.Goal{TargetAmount: dec("500"), CurrentAmount: decimal.Zero, TargetDate: "2025-08-30"}
	p := GoalProgress(g, now)
	assert.Zero(t, p.Percent, "nothing in scope increments currentAmount")
	assert.Equal(t, 10, p.DaysLeft)

	// Past target date reports negative days.
	g.TargetDate = "2025-08-10"
	p = GoalProgress(g, now)
	assert.Equal(t, -10, p.DaysLeft)

	// Progress caps at 100.
	g.CurrentAmount = dec("750")
	p = GoalProgress(g, now)
	assert.InDelta(t, 100, p.Percent, 0.0001)
}
