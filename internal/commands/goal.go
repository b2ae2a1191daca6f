package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
	"github.com/pennywise-dev/pennywise/internal/currency"
	"github.com/pennywise-dev/pennywise/internal/ledger"
)

func newGoalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(newGoalAddCommand())
	cmd.AddCommand(newGoalListCommand())
	cmd.AddCommand(newGoalRemoveCommand())
	return cmd
}

func newGoalAddCommand() *cobra.Command {
	var name, amountStr, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}

			goal, err := a.ledger.AddGoal(ledger.GoalDraft{
				Name:         name,
				TargetAmount: amount,
				TargetDate:   date,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Goal %q added: %s by %s (id %s)\n",
				goal.Name, currency.Format(goal.Currency, goal.TargetAmount), goal.TargetDate, goal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "target amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "target date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newGoalListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}

			goals := a.ledger.Ledger().Goals
			if len(goals) == 0 {
				fmt.Println("No goals yet.")
				return nil
			}

			now := time.Now()
			for _, g := range goals {
				p := aggregate.GoalProgress(g, now)
				left := fmt.Sprintf("%d days left", p.DaysLeft)
				if p.DaysLeft <= 0 {
					left = "goal date passed"
				}
				fmt.Printf("%s  %s / %s  %.1f%%  (%s)  id=%s\n",
					g.Name,
					currency.Format(g.Currency, g.CurrentAmount),
					currency.Format(g.Currency, g.TargetAmount),
					p.Percent, left, g.ID)
			}
			return nil
		},
	}
}

func newGoalRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}
			if err := a.ledger.RemoveGoal(args[0]); err != nil {
				return err
			}
			fmt.Println("Goal removed.")
			return nil
		},
	}
}
