package backtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

func TestEvaluateLatest(t *testing.T) {
	t.Run("reports the latest overlaid signal and trailing returns", func(t *testing.T) {
		closes := make([]float64, 0, 30)
		for i := 0; i < 30; i++ {
			closes = append(closes, 100+float64(i))
		}

		bars := newTestBars(closes...)
		signals := make(eventmodels.SignalSeries, len(bars))
		signals[len(signals)-1] = 1

		evaluation, err := EvaluateLatest("sma_cross_5_20", bars, signals, eventmodels.SafeRuleConfig{}, 0)
		require.NoError(t, err)

		require.Equal(t, "sma_cross_5_20", evaluation.StrategyName)
		require.Equal(t, 1.0, evaluation.Signal)
		require.Equal(t, 129.0, evaluation.Close)
		require.Equal(t, bars[len(bars)-1].Timestamp, evaluation.Timestamp)

		require.NotNil(t, evaluation.Return5D)
		require.InDelta(t, 129.0/124.0-1, *evaluation.Return5D, 1e-9)

		require.NotNil(t, evaluation.Return10D)
		require.InDelta(t, 129.0/119.0-1, *evaluation.Return10D, 1e-9)
	})

	t.Run("short series omits trailing returns", func(t *testing.T) {
		bars := newTestBars(100, 101, 102)
		signals := eventmodels.SignalSeries{0, 0, 0.5}

		evaluation, err := EvaluateLatest("test", bars, signals, eventmodels.SafeRuleConfig{}, 0)
		require.NoError(t, err)

		require.Equal(t, 0.5, evaluation.Signal)
		require.Nil(t, evaluation.Return5D)
		require.Nil(t, evaluation.Return10D)
	})

	t.Run("overlay applies inside the window", func(t *testing.T) {
		bars := newTestBars(100, 101, 102, 90)
		signals := eventmodels.SignalSeries{0, 0, 0, 1}

		rules := eventmodels.SafeRuleConfig{
			CrashProtection: eventmodels.CrashProtectionRule{
				Enabled:              true,
				DailyReturnThreshold: -0.05,
				Action:               eventmodels.CrashActionExitAll,
			},
		}

		evaluation, err := EvaluateLatest("test", bars, signals, rules, 0)
		require.NoError(t, err)

		require.Equal(t, -1.0, evaluation.Signal)
	})

	t.Run("rejects misaligned inputs", func(t *testing.T) {
		bars := newTestBars(100, 101)

		_, err := EvaluateLatest("test", bars, eventmodels.SignalSeries{0}, eventmodels.SafeRuleConfig{}, 0)
		require.ErrorIs(t, err, eventmodels.ErrSeriesLengthMismatch)
	})
}
