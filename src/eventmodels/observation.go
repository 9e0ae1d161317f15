package eventmodels

import "time"

type ObservationKind string

const (
	// ObservationDegenerateBar marks a bar skipped for trading because of a
	// non-positive price or missing liquidity.
	ObservationDegenerateBar ObservationKind = "degenerate_bar"
	// ObservationSlippageFallback marks a fill priced by the fixed slippage
	// model because the configured model could not be evaluated.
	ObservationSlippageFallback ObservationKind = "slippage_fallback"
	// ObservationNegativeCash marks a fill that left the ledger's cash
	// balance below zero.
	ObservationNegativeCash ObservationKind = "negative_cash"
)

// Observation is a non-fatal, reportable condition raised during a
// simulation run, tagged with the bar it occurred on.
type Observation struct {
	Kind      ObservationKind `json:"kind"`
	BarIndex  int             `json:"bar_index"`
	Timestamp time.Time       `json:"timestamp"`
	Message   string          `json:"message"`
}

// ObservationSink receives observations as the engine produces them. The
// caller owns the sink; the engine keeps no process-wide state.
type ObservationSink interface {
	Observe(o Observation)
}

// ObservationCollector is an ObservationSink that accumulates events in
// order.
type ObservationCollector struct {
	Events []Observation
}

func NewObservationCollector() *ObservationCollector {
	return &ObservationCollector{}
}

func (c *ObservationCollector) Observe(o Observation) {
	c.Events = append(c.Events, o)
}

// NopSink discards observations.
type NopSink struct{}

func (NopSink) Observe(Observation) {}
