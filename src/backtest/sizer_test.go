package backtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

func TestPositionSizerSizeForSignal(t *testing.T) {
	policy := eventmodels.DefaultRiskPolicy()
	sizer := NewPositionSizer(policy)

	t.Run("risk amount bounds a fresh long", func(t *testing.T) {
		// 100000 * 0.02 = 2000 risk, 2000 / 50 = 40 shares
		quantity := sizer.SizeForSignal(1, 0, 50, 100000)
		require.Equal(t, 40.0, quantity)
	})

	t.Run("risk amount bounds a fresh short", func(t *testing.T) {
		quantity := sizer.SizeForSignal(-1, 0, 50, 100000)
		require.Equal(t, -40.0, quantity)
	})

	t.Run("position cap binds when risk allows more", func(t *testing.T) {
		// cap is 100000 * 0.1 / 50 = 200 shares, 190 already held
		quantity := sizer.SizeForSignal(1, 190, 50, 100000)
		require.Equal(t, 10.0, quantity)
	})

	t.Run("cap already reached sizes to zero", func(t *testing.T) {
		quantity := sizer.SizeForSignal(1, 200, 50, 100000)
		require.Equal(t, 0.0, quantity)
	})

	t.Run("zero signal sizes to zero", func(t *testing.T) {
		require.Equal(t, 0.0, sizer.SizeForSignal(0, 0, 50, 100000))
	})

	t.Run("degenerate price or capital sizes to zero", func(t *testing.T) {
		require.Equal(t, 0.0, sizer.SizeForSignal(1, 0, 0, 100000))
		require.Equal(t, 0.0, sizer.SizeForSignal(1, 0, -10, 100000))
		require.Equal(t, 0.0, sizer.SizeForSignal(1, 0, 50, 0))
		require.Equal(t, 0.0, sizer.SizeForSignal(1, 0, 50, -5))
	})

	t.Run("buy signal against a short closes in full", func(t *testing.T) {
		quantity := sizer.SizeForSignal(1, -40, 50, 100000)
		require.Equal(t, 40.0, quantity)
	})

	t.Run("sell signal against a long closes in full", func(t *testing.T) {
		quantity := sizer.SizeForSignal(-1, 40, 50, 100000)
		require.Equal(t, -40.0, quantity)
	})

	t.Run("quantity truncates toward zero to the trade unit", func(t *testing.T) {
		unitPolicy := eventmodels.DefaultRiskPolicy()
		unitPolicy.MinTradeUnit = 10
		unitSizer := NewPositionSizer(unitPolicy)

		// 2000 / 30 = 66.67, truncated to 60
		quantity := unitSizer.SizeForSignal(1, 0, 30, 100000)
		require.Equal(t, 60.0, quantity)
	})

	t.Run("signal scaled mode commits proportional risk", func(t *testing.T) {
		scaledPolicy := eventmodels.DefaultRiskPolicy()
		scaledPolicy.SizingMode = eventmodels.SizingModeSignalScaled
		scaledSizer := NewPositionSizer(scaledPolicy)

		// 2000 * 0.5 = 1000 risk, 1000 / 50 = 20 shares
		quantity := scaledSizer.SizeForSignal(0.5, 0, 50, 100000)
		require.Equal(t, 20.0, quantity)

		quantity = scaledSizer.SizeForSignal(-0.5, 0, 50, 100000)
		require.Equal(t, -20.0, quantity)
	})

	t.Run("fixed mode ignores signal strength", func(t *testing.T) {
		quantity := sizer.SizeForSignal(0.5, 0, 50, 100000)
		require.Equal(t, 40.0, quantity)
	})
}
