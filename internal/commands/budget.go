package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
	"github.com/pennywise-dev/pennywise/internal/currency"
)

func newBudgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the spending ceiling",
	}
	cmd.AddCommand(newBudgetSetCommand())
	cmd.AddCommand(newBudgetShowCommand())
	return cmd
}

func newBudgetSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the budget ceiling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[0], err)
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}
			if err := a.ledger.SetBudget(amount); err != nil {
				return err
			}

			l := a.ledger.Ledger()
			fmt.Printf("Budget set to %s\n", currency.Format(l.Currency, l.Budget))
			return nil
		},
	}
}

func newBudgetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show budget usage",
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
			if !l.Budget.IsPositive() {
				fmt.Println("No budget set.")
				return nil
			}

			totals := aggregate.TotalsOf(l.Transactions)
			usage := aggregate.BudgetUsage(totals.Expenses, l.Budget)
			remaining := aggregate.Remaining(totals.Expenses, l.Budget)

			fmt.Printf("Budget:    %s\n", currency.Format(l.Currency, l.Budget))
			fmt.Printf("Spent:     %s (%.1f%%)\n", currency.Format(l.Currency, totals.Expenses), usage)
			fmt.Printf("Remaining: %s\n", currency.Format(l.Currency, remaining))
			fmt.Printf("Status:    %s\n", aggregate.StatusOf(usage))
			return nil
		},
	}
}
