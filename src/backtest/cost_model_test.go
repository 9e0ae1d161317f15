package backtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

func TestCostModelFixedSlippage(t *testing.T) {
	policy := eventmodels.DefaultRiskPolicy()
	model := NewCostModel(policy, nil)

	bars := newTestBars(100)
	model.ObserveBar(bars[0])

	t.Run("buys slip up", func(t *testing.T) {
		fill := model.Execute(100, eventmodels.TradeActionBuy, 10, bars[0])
		require.InDelta(t, 100.1, fill.Price, 1e-9)
		require.InDelta(t, 100.1*10*0.001, fill.Commission, 1e-9)
	})

	t.Run("sells slip down", func(t *testing.T) {
		fill := model.Execute(100, eventmodels.TradeActionSell, 10, bars[0])
		require.InDelta(t, 99.9, fill.Price, 1e-9)
		require.InDelta(t, 99.9*10*0.001, fill.Commission, 1e-9)
	})

	t.Run("commission is never negative", func(t *testing.T) {
		fill := model.Execute(100, eventmodels.TradeActionSell, 0, bars[0])
		require.GreaterOrEqual(t, fill.Commission, 0.0)
	})
}

func TestCostModelVolumeSlippage(t *testing.T) {
	policy := eventmodels.DefaultRiskPolicy()
	policy.Slippage.Model = eventmodels.SlippageModelVolume

	t.Run("slippage scales with participation", func(t *testing.T) {
		model := NewCostModel(policy, nil)

		bar := newTestBars(100)[0]
		model.ObserveBar(bar)

		// 10 / 1000 * 0.01 = 0.0001
		fill := model.Execute(100, eventmodels.TradeActionBuy, 10, bar)
		require.InDelta(t, 100.01, fill.Price, 1e-9)
	})

	t.Run("zero volume falls back to fixed and reports it", func(t *testing.T) {
		sink := eventmodels.NewObservationCollector()
		model := NewCostModel(policy, sink)

		bar := newTestBars(100)[0]
		bar.Volume = 0
		model.ObserveBar(bar)

		fill := model.Execute(100, eventmodels.TradeActionBuy, 10, bar)
		require.InDelta(t, 100.1, fill.Price, 1e-9)

		require.Len(t, sink.Events, 1)
		require.Equal(t, eventmodels.ObservationSlippageFallback, sink.Events[0].Kind)
	})
}

func TestCostModelVolatilitySlippage(t *testing.T) {
	policy := eventmodels.DefaultRiskPolicy()
	policy.Slippage.Model = eventmodels.SlippageModelVolatility
	policy.Slippage.ATRPeriod = 2

	t.Run("slippage scales with the true range", func(t *testing.T) {
		model := NewCostModel(policy, nil)

		bars := newTestBars(100, 101)
		bars[0].High, bars[0].Low = 102, 98
		bars[1].High, bars[1].Low = 103, 99

		model.ObserveBar(bars[0])
		model.ObserveBar(bars[1])

		// both true ranges are 4, ATR = 4, 4 / 100 * 0.1 = 0.004
		fill := model.Execute(100, eventmodels.TradeActionBuy, 10, bars[1])
		require.InDelta(t, 100.4, fill.Price, 1e-9)
	})

	t.Run("warmup falls back to fixed and reports it", func(t *testing.T) {
		sink := eventmodels.NewObservationCollector()
		model := NewCostModel(policy, sink)

		bar := newTestBars(100)[0]
		model.ObserveBar(bar)

		fill := model.Execute(100, eventmodels.TradeActionBuy, 10, bar)
		require.InDelta(t, 100.1, fill.Price, 1e-9)

		require.Len(t, sink.Events, 1)
		require.Equal(t, eventmodels.ObservationSlippageFallback, sink.Events[0].Kind)
	})
}
