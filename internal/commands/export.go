package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/export"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export transactions as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.requireUser()
			if err != nil {
				return err
			}

			path := export.FileName(user.Name, time.Now())
			if len(args) > 0 {
				path = args[0]
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := export.WriteCSV(f, a.ledger.Ledger().Transactions); err != nil {
				os.Remove(path)
				return err
			}

			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}
}
