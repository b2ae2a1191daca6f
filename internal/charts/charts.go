// Package charts renders aggregate series as images.
package charts

import (
	"bytes"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
	"github.com/pennywise-dev/pennywise/internal/currency"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// ErrEmptySeries is returned when the series has no buckets to plot.
var ErrEmptySeries = errors.New("empty series")

// RenderTrend draws the income/expense trend for a series as a PNG.
// The currency code drives the y-axis tick formatting.
func RenderTrend(series aggregate.Series, code string) ([]byte, error) {
	if len(series.Dates) == 0 {
		return nil, ErrEmptySeries
	}

	xValues := make([]time.Time, len(series.Dates))
	incomeValues := make([]float64, len(series.Dates))
	expenseValues := make([]float64, len(series.Dates))
	for i, date := range series.Dates {
		day, err := time.Parse(model.DateFormat, date)
		if err != nil {
			return nil, err
		}
		xValues[i] = day
		incomeValues[i] = series.Income[i].InexactFloat64()
		expenseValues[i] = series.Expenses[i].InexactFloat64()
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				return currency.Format(code, decimal.NewFromFloat(f))
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: incomeValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenseValues,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
