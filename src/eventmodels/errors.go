package eventmodels

import "fmt"

var (
	ErrEmptyBarSeries         = fmt.Errorf("bar series is empty")
	ErrNonMonotonicTimestamps = fmt.Errorf("bar timestamps are not strictly increasing")
	ErrSeriesLengthMismatch   = fmt.Errorf("signal series is not aligned with bar series")
	ErrSignalOutOfRange       = fmt.Errorf("signal value outside [-1, 1]")
	ErrInvalidInitialCapital  = fmt.Errorf("initial capital must be positive")
	ErrUnknownSlippageModel   = fmt.Errorf("unknown slippage model")
	ErrUnknownSizingMode      = fmt.Errorf("unknown sizing mode")
	ErrUnknownSafeRuleAction  = fmt.Errorf("unknown safe rule action")
	ErrInvalidRiskFraction    = fmt.Errorf("risk fraction must be in (0, 1]")
)
