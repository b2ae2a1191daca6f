// Package export writes transaction reports.
//
// Fields are quoted only when they contain a comma, quote, or newline,
// as encoding/csv does. Readers see the same values as with
// always-quoted descriptions.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Header is the CSV header for exported reports.
const Header = "Date,Type,Category,Description,Amount,Currency"

const (
	numFields   = 6
	colDate     = 0
	colType     = 1
	colCategory = 2
	colDesc     = 3
	colAmount   = 4
	colCurrency = 5
)

// ErrNoTransactions is returned when there is nothing to export.
var ErrNoTransactions = errors.New("no transactions to export")

// WriteCSV writes the report header plus one row per transaction, in
// the order given (newest first for a ledger's sequence).
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return ErrNoTransactions
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range transactions {
		if err := cw.Write(marshalRow(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalRow(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date
	row[colType] = string(t.Type)
	row[colCategory] = t.Category
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.String()
	row[colCurrency] = t.Currency
	return row
}

// FileName returns the conventional export name for a user on a day.
func FileName(userName string, now time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(userName), " ", "-")
	return fmt.Sprintf("pennywise-%s-%s.csv", name, now.Format(model.DateFormat))
}
