package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/currency"
	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func newAddCommand() *cobra.Command {
	var category, description, date string

	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}

			tx, err := a.ledger.AddTransaction(ledger.TransactionDraft{
				Type:        model.TransactionType(args[0]),
				Amount:      amount,
				Category:    category,
				Description: description,
				Date:        date,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s of %s in %s on %s\n",
				tx.Type, currency.Format(tx.Currency, tx.Amount), tx.Category, tx.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "other", "transaction category")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&date, "date", "", "calendar date (YYYY-MM-DD, default today)")

	return cmd
}
