package eventservices

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

// ComparisonTable renders the metrics of several backtest runs side by side
// for strategy comparison.
func ComparisonTable(results []*eventmodels.BacktestResult) string {
	var display strings.Builder

	table := tablewriter.NewWriter(&display)
	table.SetHeader([]string{"Strategy", "Total Return", "Ann. Return", "Sharpe", "Max DD", "Calmar", "Win Rate", "Trades"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, result := range results {
		m := result.Metrics
		table.Append([]string{
			result.StrategyName,
			fmt.Sprintf("%.2f%%", m.TotalReturn*100),
			fmt.Sprintf("%.2f%%", m.AnnualizedReturn*100),
			fmt.Sprintf("%.2f", m.SharpeRatio),
			fmt.Sprintf("%.2f%%", m.MaxDrawdown*100),
			fmt.Sprintf("%.2f", m.CalmarRatio),
			fmt.Sprintf("%.2f%%", m.WinRate*100),
			fmt.Sprintf("%d", m.NumTrades),
		})
	}

	table.Render()

	return display.String()
}
