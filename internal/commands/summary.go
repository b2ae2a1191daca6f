package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
	"github.com/pennywise-dev/pennywise/internal/currency"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses, and net balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}

			l := a.ledger.Ledger()
			totals := aggregate.TotalsOf(l.Transactions)

			fmt.Printf("Income:   %s\n", currency.Format(l.Currency, totals.Income))
			fmt.Printf("Expenses: %s\n", currency.Format(l.Currency, totals.Expenses))
			fmt.Printf("Net:      %s\n", currency.Format(l.Currency, totals.Net))
			if l.Budget.IsPositive() {
				usage := aggregate.BudgetUsage(totals.Expenses, l.Budget)
				fmt.Printf("Budget:   %.1f%% used (%s)\n", usage, aggregate.StatusOf(usage))
			}
			return nil
		},
	}
}

func newBreakdownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Show expenses grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}

			l := a.ledger.Ledger()
			shares := aggregate.CategoryBreakdown(l.Transactions)
			if len(shares) == 0 {
				fmt.Println("No expenses to show categories.")
				return nil
			}
			for _, s := range shares {
				fmt.Printf("%-16s %12s  %5.1f%%\n",
					s.Category, currency.Format(l.Currency, s.Amount), s.Percent)
			}
			return nil
		},
	}
}
