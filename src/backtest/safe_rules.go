package backtest

import (
	log "github.com/sirupsen/logrus"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
	"github.com/ymiyamoto5/backtester/src/indicators"
)

// SafeRuleOverlay post-processes a raw signal series under the configured
// protective rules, in a fixed order: crash protection, then volatility
// limit, then trend filter. Each rule reads only bar fields available at its
// own bar; given the same bars and config the output is identical across
// runs.
type SafeRuleOverlay struct {
	config eventmodels.SafeRuleConfig
}

func NewSafeRuleOverlay(config eventmodels.SafeRuleConfig) (*SafeRuleOverlay, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &SafeRuleOverlay{config: config}, nil
}

// Apply returns a transformed copy of signals, same length and alignment as
// the input.
func (o *SafeRuleOverlay) Apply(bars eventmodels.BarSeries, signals eventmodels.SignalSeries) eventmodels.SignalSeries {
	out := signals.Copy()

	o.applyCrashProtection(bars, out)
	o.applyVolatilityLimit(bars, out)
	o.applyTrendFilter(bars, out)

	return out
}

func (o *SafeRuleOverlay) applyCrashProtection(bars eventmodels.BarSeries, signals eventmodels.SignalSeries) {
	rule := o.config.CrashProtection
	if !rule.Enabled {
		return
	}

	crashDays := 0
	for i := 1; i < len(bars); i++ {
		if bars[i].DailyReturn(bars[i-1]) >= rule.DailyReturnThreshold {
			continue
		}

		crashDays++

		switch rule.Action {
		case eventmodels.CrashActionExitAll:
			signals[i] = -1
		case eventmodels.CrashActionNoEntry:
			if signals[i] > 0 {
				signals[i] = 0
			}
		}
	}

	if crashDays > 0 {
		log.Warnf("SafeRuleOverlay: crash protection triggered on %d bars", crashDays)
	}
}

func (o *SafeRuleOverlay) applyVolatilityLimit(bars eventmodels.BarSeries, signals eventmodels.SignalSeries) {
	rule := o.config.VolatilityLimit
	if !rule.Enabled {
		return
	}

	period := rule.ATRPeriod
	if period <= 0 {
		period = 14
	}

	atr := indicators.NewATR(period)
	for i, bar := range bars {
		ready, value, err := atr.Update(bar)
		if err != nil || !ready || bar.Close <= 0 {
			// inactive until the volatility window is full
			continue
		}

		if value/bar.Close <= rule.ATRThreshold {
			continue
		}

		switch rule.Action {
		case eventmodels.VolatilityActionReducePosition:
			signals[i] *= 0.5
		case eventmodels.VolatilityActionNoTrade:
			signals[i] = 0
		}
	}
}

func (o *SafeRuleOverlay) applyTrendFilter(bars eventmodels.BarSeries, signals eventmodels.SignalSeries) {
	rule := o.config.TrendFilter
	if !rule.Enabled {
		return
	}

	period := rule.SMAPeriod
	if period <= 0 {
		period = 200
	}

	sma := indicators.NewSMA(period)
	for i, bar := range bars {
		ready, value, err := sma.Update(bar.Close)
		if err != nil || !ready {
			// no trend opinion until the SMA window is full
			continue
		}

		trend := 0.0
		if bar.Close > value {
			trend = 1
		} else if bar.Close < value {
			trend = -1
		}

		switch rule.Action {
		case eventmodels.TrendActionFollowTrend:
			if trend > 0 && signals[i] < 0 {
				signals[i] = 0
			} else if trend < 0 && signals[i] > 0 {
				signals[i] = 0
			}
		case eventmodels.TrendActionStrengthenTrend:
			if (trend > 0 && signals[i] > 0) || (trend < 0 && signals[i] < 0) {
				signals[i] *= 1.5
			}
		}
	}
}
