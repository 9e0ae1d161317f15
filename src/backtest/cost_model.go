package backtest

import (
	"fmt"
	"math"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
	"github.com/ymiyamoto5/backtester/src/indicators"
)

// Fill is the outcome of pricing one intended trade: the slippage-adjusted
// execution price and the commission charged.
type Fill struct {
	Price      float64
	Commission float64
}

// CostModel prices fills under one of three slippage models (fixed,
// volatility-scaled, volume-scaled) plus a proportional commission. The
// model is fed bars in order via ObserveBar so the volatility window never
// looks ahead.
type CostModel struct {
	config         eventmodels.SlippageConfig
	commissionRate float64
	atr            *indicators.ATR
	atrReady       bool
	atrValue       float64
	barIndex       int
	sink           eventmodels.ObservationSink
}

func NewCostModel(policy eventmodels.RiskPolicy, sink eventmodels.ObservationSink) *CostModel {
	if sink == nil {
		sink = eventmodels.NopSink{}
	}

	config := policy.Slippage
	atrPeriod := config.ATRPeriod
	if atrPeriod <= 0 {
		atrPeriod = 14
	}

	return &CostModel{
		config:         config,
		commissionRate: policy.CommissionRate,
		atr:            indicators.NewATR(atrPeriod),
		barIndex:       -1,
		sink:           sink,
	}
}

// ObserveBar advances the volatility window. Call exactly once per bar, in
// timestamp order, before pricing any fill on that bar.
func (m *CostModel) ObserveBar(bar eventmodels.Bar) {
	m.barIndex++

	ready, value, err := m.atr.Update(bar)
	if err != nil {
		// stats errors are unreachable with a non-empty window
		m.atrReady = false
		return
	}

	m.atrReady = ready
	m.atrValue = value
}

// Execute prices a fill of quantity units at the intended price. Buys slip
// up, sells slip down. Commission is charged on both entries and exits and
// is never negative.
func (m *CostModel) Execute(intendedPrice float64, action eventmodels.TradeAction, quantity float64, bar eventmodels.Bar) Fill {
	slippagePct := m.slippagePct(intendedPrice, quantity, bar)

	executed := intendedPrice * (1 + slippagePct)
	if action == eventmodels.TradeActionSell {
		executed = intendedPrice * (1 - slippagePct)
	}

	commission := math.Abs(executed * quantity * m.commissionRate)

	return Fill{Price: executed, Commission: commission}
}

func (m *CostModel) slippagePct(intendedPrice, quantity float64, bar eventmodels.Bar) float64 {
	switch m.config.Model {
	case eventmodels.SlippageModelVolatility:
		if !m.atrReady || intendedPrice <= 0 {
			m.fallback(bar, "volatility window not ready")
			return m.config.FixedPct
		}

		return (m.atrValue / intendedPrice) * m.config.VolatilityFactor

	case eventmodels.SlippageModelVolume:
		if bar.Volume == 0 {
			m.fallback(bar, "bar volume is zero")
			return m.config.FixedPct
		}

		return (quantity / bar.Volume) * m.config.VolumeFactor

	default:
		return m.config.FixedPct
	}
}

func (m *CostModel) fallback(bar eventmodels.Bar, reason string) {
	m.sink.Observe(eventmodels.Observation{
		Kind:      eventmodels.ObservationSlippageFallback,
		BarIndex:  m.barIndex,
		Timestamp: bar.Timestamp,
		Message:   fmt.Sprintf("%s slippage fell back to fixed: %s", m.config.Model, reason),
	})
}
