package model

import "github.com/shopspring/decimal"

// Ledger is the full financial state of one user: transactions ordered
// newest-first, the whole-history budget ceiling, savings goals, and
// the ambient currency that labels new records.
type Ledger struct {
	UserID       string
	Transactions []Transaction
	Budget       decimal.Decimal
	Goals        []Goal
	Currency     string
}
