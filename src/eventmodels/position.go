package eventmodels

type PositionSide string

const (
	PositionSideFlat  PositionSide = "flat"
	PositionSideLong  PositionSide = "long"
	PositionSideShort PositionSide = "short"
)

// PositionState is the open position of a single simulation run. Quantity is
// signed: positive long, negative short, zero flat. Mutated only on executed
// fills and never shared across runs.
type PositionState struct {
	Quantity          float64 `json:"quantity"`
	AverageEntryPrice float64 `json:"average_entry_price"`
	UnrealizedPL      float64 `json:"unrealized_pl"`
}

func (p PositionState) Side() PositionSide {
	switch {
	case p.Quantity > 0:
		return PositionSideLong
	case p.Quantity < 0:
		return PositionSideShort
	default:
		return PositionSideFlat
	}
}

// LedgerState tracks cash and cumulative realized P&L for one run. Cash may
// go negative (short proceeds and margin bookkeeping are not clamped); a
// negative balance is reported through the observation sink, not silently
// corrected.
type LedgerState struct {
	Cash                 float64 `json:"cash"`
	RealizedPLCumulative float64 `json:"realized_pl_cumulative"`
}
