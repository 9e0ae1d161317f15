package backtest

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

const tradingDaysPerYear = 252

// CalculateMetrics reduces a completed equity curve and trade log into a
// metrics record. It is a pure, total function: degenerate inputs (flat
// curves, zero elapsed time, no trades) resolve to zeros, never NaN or Inf.
func CalculateMetrics(equityCurve []eventmodels.EquitySample, trades []eventmodels.Trade, initialCapital float64) eventmodels.MetricsRecord {
	record := eventmodels.MetricsRecord{
		InitialCapital: initialCapital,
		NumTrades:      len(trades),
	}

	if len(equityCurve) == 0 || initialCapital <= 0 {
		return record
	}

	first := equityCurve[0]
	last := equityCurve[len(equityCurve)-1]

	record.FinalEquity = last.Equity
	record.TotalReturn = last.Equity/initialCapital - 1

	elapsedDays := last.Timestamp.Sub(first.Timestamp).Hours() / 24
	if elapsedDays > 0 {
		base := 1 + record.TotalReturn
		if base > 0 {
			record.AnnualizedReturn = math.Pow(base, 365/elapsedDays) - 1
		} else {
			record.AnnualizedReturn = -1
		}
	}

	dailyReturns := make([]float64, 0, len(equityCurve)-1)
	for i := 1; i < len(equityCurve); i++ {
		prev := equityCurve[i-1].Equity
		if prev == 0 {
			dailyReturns = append(dailyReturns, 0)
			continue
		}

		dailyReturns = append(dailyReturns, equityCurve[i].Equity/prev-1)
	}

	if len(dailyReturns) >= 2 {
		mean, errMean := stats.Mean(dailyReturns)
		std, errStd := stats.StandardDeviationSample(dailyReturns)

		if errMean == nil && errStd == nil && isFinite(std) && std > 0 {
			record.DailyVolatility = std
			record.AnnualizedVolatility = std * math.Sqrt(tradingDaysPerYear)
			record.SharpeRatio = mean / std * math.Sqrt(tradingDaysPerYear)
		}
	}

	record.MaxDrawdown = maxDrawdown(equityCurve)
	if record.MaxDrawdown < 0 {
		record.CalmarRatio = record.AnnualizedReturn / math.Abs(record.MaxDrawdown)
	}

	record.WinRate, record.AvgProfit, record.AvgLoss, record.ProfitLossRatio = tradeStats(trades)

	return record
}

func maxDrawdown(equityCurve []eventmodels.EquitySample) float64 {
	runningMax := equityCurve[0].Equity
	minDrawdown := 0.0

	for _, sample := range equityCurve {
		if sample.Equity > runningMax {
			runningMax = sample.Equity
		}

		if runningMax <= 0 {
			continue
		}

		drawdown := (sample.Equity - runningMax) / runningMax
		if drawdown < minDrawdown {
			minDrawdown = drawdown
		}
	}

	return minDrawdown
}

// tradeStats attributes realized P&L to closing trades: win rate is the
// share of closing trades that realized a profit.
func tradeStats(trades []eventmodels.Trade) (winRate, avgProfit, avgLoss, profitLossRatio float64) {
	var profits, losses []float64

	closing := 0
	for _, trade := range trades {
		if !trade.IsClosing {
			continue
		}

		closing++
		if trade.RealizedPL > 0 {
			profits = append(profits, trade.RealizedPL)
		} else {
			losses = append(losses, math.Abs(trade.RealizedPL))
		}
	}

	if closing == 0 {
		return 0, 0, 0, 0
	}

	winRate = float64(len(profits)) / float64(closing)

	if len(profits) > 0 {
		if mean, err := stats.Mean(profits); err == nil {
			avgProfit = mean
		}
	}

	if len(losses) > 0 {
		if mean, err := stats.Mean(losses); err == nil {
			avgLoss = mean
		}
	}

	if avgLoss != 0 {
		profitLossRatio = avgProfit / avgLoss
	}

	return winRate, avgProfit, avgLoss, profitLossRatio
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
