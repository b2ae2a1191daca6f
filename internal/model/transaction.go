package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used for transaction and goal
// dates. Dates compare as strings at this granularity; there is no
// timezone normalization beyond it.
const DateFormat = "2006-01-02"

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is one recorded money event. Amount is always positive;
// direction is carried by Type. Transactions are never edited after
// creation, only removed via a full clear.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`      // calendar date, DateFormat
	Timestamp   time.Time       `json:"timestamp"` // creation instant
	Currency    string          `json:"currency"`
}

// DateOf formats an instant as a calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateFormat)
}
