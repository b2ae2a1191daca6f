package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all transactions, goals, and the budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("this deletes all of your data; pass --yes to confirm")
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}
			if err := a.ledger.Clear(); err != nil {
				return err
			}
			fmt.Println("All data cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	return cmd
}
