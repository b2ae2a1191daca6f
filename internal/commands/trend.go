package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
	"github.com/pennywise-dev/pennywise/internal/charts"
)

func newTrendCommand() *cobra.Command {
	var days int
	var out string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Render the income/expense trend chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("invalid period %d: must be positive", days)
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.requireUser(); err != nil {
				return err
			}

			l := a.ledger.Ledger()
			series := aggregate.TimeSeries(l.Transactions, days, time.Now())
			png, err := charts.RenderTrend(series, l.Currency)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("writing chart: %w", err)
			}

			fmt.Printf("Wrote %d-day trend to %s\n", days, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "period length in days (7, 30, or 90 are typical)")
	cmd.Flags().StringVar(&out, "out", "trend.png", "output PNG path")

	return cmd
}
