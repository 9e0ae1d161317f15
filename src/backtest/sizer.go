// Package backtest implements the bar-by-bar simulation engine: position
// sizing under capital and risk caps, slippage and commission modeling, the
// protective safe-rule overlay, and performance metrics over the resulting
// equity curve.
package backtest

import (
	"math"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

// PositionSizer converts a signal and the current account state into a
// signed trade quantity under the policy's risk and capital caps.
type PositionSizer struct {
	policy eventmodels.RiskPolicy
}

func NewPositionSizer(policy eventmodels.RiskPolicy) *PositionSizer {
	return &PositionSizer{policy: policy}
}

// SizeForSignal returns the quantity delta to trade: positive to buy,
// negative to sell, zero to hold. A signal against an open opposite-side
// position sizes a full close, never a partial reversal. Degenerate inputs
// (non-positive price or capital) size to zero rather than failing.
func (s *PositionSizer) SizeForSignal(signal, currentPosition, price, capital float64) float64 {
	if signal == 0 || price <= 0 || capital <= 0 {
		return 0
	}

	riskAmount := capital * s.policy.RiskPerTrade
	if s.policy.SizingMode == eventmodels.SizingModeSignalScaled {
		riskAmount *= math.Abs(signal)
	}

	maxAmount := capital * s.policy.MaxPositionFraction

	if signal > 0 {
		if currentPosition < 0 {
			return -currentPosition
		}

		maxAdditional := s.truncate(maxAmount/price) - currentPosition
		quantity := math.Min(s.truncate(riskAmount/price), maxAdditional)
		if quantity < 0 {
			quantity = 0
		}

		return quantity
	}

	if currentPosition > 0 {
		return -currentPosition
	}

	maxAdditional := s.truncate(maxAmount/price) + currentPosition
	quantity := math.Min(s.truncate(riskAmount/price), maxAdditional)
	if quantity < 0 {
		quantity = 0
	}

	return -quantity
}

// truncate rounds a quantity toward zero to the instrument's minimum
// tradable unit.
func (s *PositionSizer) truncate(quantity float64) float64 {
	unit := s.policy.MinTradeUnit
	if unit <= 0 {
		unit = 1
	}

	return math.Trunc(quantity/unit) * unit
}
