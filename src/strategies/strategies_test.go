package strategies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

func newTestBars(closes ...float64) eventmodels.BarSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	bars := make(eventmodels.BarSeries, 0, len(closes))
	for i, c := range closes {
		bars = append(bars, eventmodels.Bar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1000,
		})
	}

	return bars
}

func TestSMACross(t *testing.T) {
	strategy := NewSMACross(2, 3)

	t.Run("long while the short average leads", func(t *testing.T) {
		signals, err := strategy.GenerateSignals(newTestBars(10, 11, 12, 13))
		require.NoError(t, err)

		require.Equal(t, 0.0, signals[0])
		require.Equal(t, 0.0, signals[1])
		require.Equal(t, 1.0, signals[2])
		require.Equal(t, 1.0, signals[3])
	})

	t.Run("short while the short average lags", func(t *testing.T) {
		signals, err := strategy.GenerateSignals(newTestBars(13, 12, 11, 10))
		require.NoError(t, err)

		require.Equal(t, -1.0, signals[2])
		require.Equal(t, -1.0, signals[3])
	})

	t.Run("signals stay in range", func(t *testing.T) {
		bars := newTestBars(10, 12, 9, 14, 8, 13, 11, 10)
		signals, err := strategy.GenerateSignals(bars)
		require.NoError(t, err)
		require.NoError(t, signals.Validate(len(bars)))
	})

	t.Run("rejects an empty series", func(t *testing.T) {
		_, err := strategy.GenerateSignals(nil)
		require.ErrorIs(t, err, eventmodels.ErrEmptyBarSeries)
	})
}

func TestRSIStrategy(t *testing.T) {
	strategy := NewRSIStrategy(2, 70, 30)

	t.Run("buys oversold markets", func(t *testing.T) {
		signals, err := strategy.GenerateSignals(newTestBars(100, 95, 90, 85))
		require.NoError(t, err)

		require.Equal(t, 0.0, signals[0])
		require.Equal(t, 1.0, signals[2])
		require.Equal(t, 1.0, signals[3])
	})

	t.Run("sells overbought markets", func(t *testing.T) {
		signals, err := strategy.GenerateSignals(newTestBars(100, 105, 110, 115))
		require.NoError(t, err)

		require.Equal(t, -1.0, signals[2])
		require.Equal(t, -1.0, signals[3])
	})
}

func TestMACDStrategy(t *testing.T) {
	strategy := NewMACDStrategy(2, 3, 2)

	t.Run("flat inside the warmup window", func(t *testing.T) {
		signals, err := strategy.GenerateSignals(newTestBars(100, 101, 102, 103))
		require.NoError(t, err)

		for _, s := range signals {
			require.Equal(t, 0.0, s)
		}
	})

	t.Run("signals stay in range", func(t *testing.T) {
		bars := newTestBars(100, 104, 98, 106, 95, 108, 101, 99, 103, 97)
		signals, err := strategy.GenerateSignals(bars)
		require.NoError(t, err)
		require.NoError(t, signals.Validate(len(bars)))
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Run("builds each strategy type", func(t *testing.T) {
		for _, config := range []eventmodels.StrategyConfigYAML{
			{Type: "sma_cross", ShortWindow: 5, LongWindow: 20},
			{Type: "rsi", Period: 14, Overbought: 70, Oversold: 30},
			{Type: "macd", FastPeriod: 12, SlowPeriod: 26, SignalPeriod: 9},
		} {
			strategy, err := NewFromConfig(config)
			require.NoError(t, err)
			require.NotEmpty(t, strategy.Name())
		}
	})

	t.Run("zero parameters fall back to defaults", func(t *testing.T) {
		strategy, err := NewFromConfig(eventmodels.StrategyConfigYAML{Type: "sma_cross"})
		require.NoError(t, err)
		require.Equal(t, "sma_cross_5_20", strategy.Name())
	})

	t.Run("unknown type fails", func(t *testing.T) {
		_, err := NewFromConfig(eventmodels.StrategyConfigYAML{Type: "momentum"})
		require.Error(t, err)
	})
}
