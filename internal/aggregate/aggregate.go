// Package aggregate derives summary views from ledger contents. All
// functions are pure: no storage access, no argument mutation, total
// over well-formed input.
package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Totals holds whole-history income, expenses, and their difference.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// TotalsOf sums income and expense amounts across all transactions.
func TotalsOf(transactions []model.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return Totals{Income: income, Expenses: expenses, Net: income.Sub(expenses)}
}

// BudgetUsage returns expenses as a percent of the budget ceiling, or
// zero when no budget is set. The result is unclamped; values over 100
// signal overrun.
func BudgetUsage(expenses, budget decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	return expenses.Div(budget).InexactFloat64() * 100
}

// ClampPercent bounds a display percent to [0, 100] for progress bars.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Remaining returns the budget headroom, floored at zero.
func Remaining(expenses, budget decimal.Decimal) decimal.Decimal {
	r := budget.Sub(expenses)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// BudgetStatus classifies budget usage for display.
type BudgetStatus string

const (
	BudgetOnTrack BudgetStatus = "on track"
	BudgetWatch   BudgetStatus = "watch spending"
	BudgetOver    BudgetStatus = "over budget"
)

// StatusOf maps a usage percent to its display classification.
func StatusOf(usage float64) BudgetStatus {
	switch {
	case usage <= 75:
		return BudgetOnTrack
	case usage <= 90:
		return BudgetWatch
	default:
		return BudgetOver
	}
}

// CategoryShare is one category's slice of total expenses.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Percent  float64
}

// CategoryBreakdown groups expense transactions by category, sorted by
// amount descending (category name breaks ties for a stable order).
// Returns an empty list when there are no expenses.
func CategoryBreakdown(transactions []model.Transaction) []CategoryShare {
	byCategory := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type != model.TypeExpense {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}
	if !total.IsPositive() {
		return nil
	}

	shares := make([]CategoryShare, 0, len(byCategory))
	for category, amount := range byCategory {
		shares = append(shares, CategoryShare{
			Category: category,
			Amount:   amount,
			Percent:  amount.Div(total).InexactFloat64() * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}

// Series holds per-day income and expense sums over a period, oldest
// first. Dates carries the calendar date for each bucket; Labels the
// presentation hint (weekday names for periods up to a week, month+day
// otherwise).
type Series struct {
	Dates    []string
	Labels   []string
	Income   []decimal.Decimal
	Expenses []decimal.Decimal
}

// TimeSeries buckets transactions into periodDays consecutive calendar
// days ending at reference (inclusive). A transaction lands in a
// bucket only when its date matches that day exactly.
func TimeSeries(transactions []model.Transaction, periodDays int, reference time.Time) Series {
	if periodDays <= 0 {
		return Series{}
	}

	s := Series{
		Dates:    make([]string, periodDays),
		Labels:   make([]string, periodDays),
		Income:   make([]decimal.Decimal, periodDays),
		Expenses: make([]decimal.Decimal, periodDays),
	}

	index := make(map[string]int, periodDays)
	for i := 0; i < periodDays; i++ {
		day := reference.AddDate(0, 0, i-(periodDays-1))
		date := model.DateOf(day)
		s.Dates[i] = date
		if periodDays <= 7 {
			s.Labels[i] = day.Format("Mon")
		} else {
			s.Labels[i] = day.Format("Jan 2")
		}
		s.Income[i] = decimal.Zero
		s.Expenses[i] = decimal.Zero
		index[date] = i
	}

	for _, t := range transactions {
		i, ok := index[t.Date]
		if !ok {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			s.Income[i] = s.Income[i].Add(t.Amount)
		case model.TypeExpense:
			s.Expenses[i] = s.Expenses[i].Add(t.Amount)
		}
	}
	return s
}

// Progress reports a goal's completion and time remaining.
type Progress struct {
	Percent  float64 // capped at 100
	DaysLeft int     // negative once the target date has passed
}

// GoalProgress derives progress for one goal relative to now. A goal
// with an unparsable target date reports zero days left.
func GoalProgress(goal model.Goal, now time.Time) Progress {
	percent := 0.0
	if goal.TargetAmount.IsPositive() {
		percent = goal.CurrentAmount.Div(goal.TargetAmount).InexactFloat64() * 100
		if percent > 100 {
			percent = 100
		}
	}

	daysLeft := 0
	if target, err := time.Parse(model.DateFormat, goal.TargetDate); err == nil {
		daysLeft = int(math.Ceil(target.Sub(now).Hours() / 24))
	}

	return Progress{Percent: percent, DaysLeft: daysLeft}
}
