package eventmodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

// MetricsRecord holds the risk/return statistics computed from a completed
// equity curve and trade log. Every field is a total function of well-formed
// input: degenerate cases resolve to zero rather than NaN or Inf.
type MetricsRecord struct {
	InitialCapital       float64 `json:"initial_capital"`
	FinalEquity          float64 `json:"final_equity"`
	TotalReturn          float64 `json:"total_return"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	DailyVolatility      float64 `json:"daily_volatility"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	CalmarRatio          float64 `json:"calmar_ratio"`
	NumTrades            int     `json:"num_trades"`
	WinRate              float64 `json:"win_rate"`
	AvgProfit            float64 `json:"avg_profit"`
	AvgLoss              float64 `json:"avg_loss"`
	ProfitLossRatio      float64 `json:"profit_loss_ratio"`
}

// BacktestResult aggregates the full output of one simulation run. It is
// created once per run and read-only afterwards; running the engine twice on
// identical inputs yields identical results.
type BacktestResult struct {
	StrategyName string         `json:"strategy_name"`
	Symbol       string         `json:"symbol"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Trades       []Trade        `json:"trades"`
	EquityCurve  []EquitySample `json:"equity_curve"`
	Metrics      MetricsRecord  `json:"metrics"`
}

func (r *BacktestResult) String() string {
	var display strings.Builder

	display.WriteString(fmt.Sprintf("Backtest: %s on %s (%s - %s)\n", r.StrategyName, r.Symbol, r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02")))

	table := tablewriter.NewWriter(&display)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	table.Append([]string{"Total Return", fmt.Sprintf("%.2f%%", r.Metrics.TotalReturn*100)})
	table.Append([]string{"Annualized Return", fmt.Sprintf("%.2f%%", r.Metrics.AnnualizedReturn*100)})
	table.Append([]string{"Sharpe Ratio", fmt.Sprintf("%.2f", r.Metrics.SharpeRatio)})
	table.Append([]string{"Max Drawdown", fmt.Sprintf("%.2f%%", r.Metrics.MaxDrawdown*100)})
	table.Append([]string{"Calmar Ratio", fmt.Sprintf("%.2f", r.Metrics.CalmarRatio)})
	table.Append([]string{"Win Rate", fmt.Sprintf("%.2f%%", r.Metrics.WinRate*100)})
	table.Append([]string{"Profit/Loss Ratio", fmt.Sprintf("%.2f", r.Metrics.ProfitLossRatio)})
	table.Append([]string{"Trades", fmt.Sprintf("%d", r.Metrics.NumTrades)})
	table.Render()

	return display.String()
}
