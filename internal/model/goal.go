package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. CurrentAmount starts at zero; no tracker
// operation increments it yet, so progress stays where the stored value
// puts it.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate"` // calendar date, DateFormat
	CreatedAt     time.Time       `json:"createdAt"`
	Currency      string          `json:"currency"`
}
