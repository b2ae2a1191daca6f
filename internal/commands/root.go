package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pennywise",
		Short:   "Personal budget tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRegisterCommand())
	rootCmd.AddCommand(newLoginCommand())
	rootCmd.AddCommand(newLogoutCommand())
	rootCmd.AddCommand(newWhoamiCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newBudgetCommand())
	rootCmd.AddCommand(newGoalCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newBreakdownCommand())
	rootCmd.AddCommand(newTrendCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newCurrencyCommand())
	rootCmd.AddCommand(newClearCommand())

	return rootCmd
}
