package backtest

import (
	"fmt"
	"time"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

// Evaluation is the outcome of evaluating a strategy's most recent signal
// over a trailing window, for live monitoring rather than backtesting.
type Evaluation struct {
	Timestamp    time.Time `json:"timestamp"`
	StrategyName string    `json:"strategy_name"`
	Signal       float64   `json:"signal"`
	Close        float64   `json:"close"`
	Return5D     *float64  `json:"return_5d,omitempty"`
	Return10D    *float64  `json:"return_10d,omitempty"`
}

// EvaluateLatest applies the safe-rule overlay over the trailing lookback
// window and reports the latest overlaid signal together with short-horizon
// returns. lookback defaults to 20 bars.
func EvaluateLatest(strategyName string, bars eventmodels.BarSeries, signals eventmodels.SignalSeries, rules eventmodels.SafeRuleConfig, lookback int) (*Evaluation, error) {
	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("EvaluateLatest: %w", err)
	}

	if err := signals.Validate(len(bars)); err != nil {
		return nil, fmt.Errorf("EvaluateLatest: %w", err)
	}

	overlay, err := NewSafeRuleOverlay(rules)
	if err != nil {
		return nil, fmt.Errorf("EvaluateLatest: %w", err)
	}

	if lookback <= 0 {
		lookback = 20
	}

	if lookback > len(bars) {
		lookback = len(bars)
	}

	window := bars[len(bars)-lookback:]
	windowSignals := signals[len(signals)-lookback:]

	overlaid := overlay.Apply(window, windowSignals)

	last := window[len(window)-1]
	evaluation := &Evaluation{
		Timestamp:    last.Timestamp,
		StrategyName: strategyName,
		Signal:       overlaid[len(overlaid)-1],
		Close:        last.Close,
	}

	if r, ok := trailingReturn(window, 5); ok {
		evaluation.Return5D = &r
	}

	if r, ok := trailingReturn(window, 10); ok {
		evaluation.Return10D = &r
	}

	return evaluation, nil
}

func trailingReturn(bars eventmodels.BarSeries, days int) (float64, bool) {
	if len(bars) <= days {
		return 0, false
	}

	base := bars[len(bars)-1-days].Close
	if base == 0 {
		return 0, false
	}

	return bars[len(bars)-1].Close/base - 1, true
}
