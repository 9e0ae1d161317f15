// Package strategies provides the built-in signal producers. A strategy
// turns a bar series into an aligned signal series in [-1, 1]; the
// simulation engine consumes the series without knowing how it was made.
package strategies

import (
	"fmt"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

type Strategy interface {
	Name() string
	GenerateSignals(bars eventmodels.BarSeries) (eventmodels.SignalSeries, error)
}

// NewFromConfig builds a strategy from a run-config entry. Zero-valued
// parameters fall back to the strategy's defaults.
func NewFromConfig(config eventmodels.StrategyConfigYAML) (Strategy, error) {
	switch config.Type {
	case "sma_cross":
		return NewSMACross(config.ShortWindow, config.LongWindow), nil
	case "rsi":
		return NewRSIStrategy(config.Period, config.Overbought, config.Oversold), nil
	case "macd":
		return NewMACDStrategy(config.FastPeriod, config.SlowPeriod, config.SignalPeriod), nil
	default:
		return nil, fmt.Errorf("strategies.NewFromConfig: unknown strategy type %q", config.Type)
	}
}
