package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/currency"
)

func newCurrencyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Show or change the display currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}

			code := a.ledger.Ledger().Currency
			info, _ := currency.Lookup(code)
			fmt.Printf("%s (%s)\n", code, info.Name)
			return nil
		},
	}
	cmd.AddCommand(newCurrencySetCommand())
	cmd.AddCommand(newCurrencyListCommand())
	return cmd
}

func newCurrencySetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <code>",
		Short: "Change the currency for new records",
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
			if err := a.ledger.ChangeCurrency(args[0]); err != nil {
				return err
			}

			info, _ := currency.Lookup(args[0])
			fmt.Printf("Currency changed to %s. Existing records keep theirs.\n", info.Name)
			return nil
		},
	}
}

func newCurrencyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range currency.Codes() {
				info, _ := currency.Lookup(code)
				fmt.Printf("%s  %-3s %s\n", code, info.Symbol, info.Name)
			}
			return nil
		},
	}
}
