package eventmodels

import "fmt"

// SizingMode selects how fractional signal strength affects position sizing.
type SizingMode string

const (
	// SizingModeFixed sizes every trade from the full risk amount; signal
	// strength only gates direction.
	SizingModeFixed SizingMode = "fixed"

	// SizingModeSignalScaled scales the risk amount by |signal|, so a 0.5
	// signal commits half the per-trade risk.
	SizingModeSignalScaled SizingMode = "signal_scaled"
)

type SlippageModel string

const (
	SlippageModelFixed      SlippageModel = "fixed"
	SlippageModelVolatility SlippageModel = "volatility"
	SlippageModelVolume     SlippageModel = "volume"
)

type SlippageConfig struct {
	Model            SlippageModel `yaml:"model" json:"model"`
	FixedPct         float64       `yaml:"fixed_pct" json:"fixed_pct"`
	VolatilityFactor float64       `yaml:"volatility_factor" json:"volatility_factor"`
	VolumeFactor     float64       `yaml:"volume_factor" json:"volume_factor"`
	ATRPeriod        int           `yaml:"atr_period" json:"atr_period"`
}

func DefaultSlippageConfig() SlippageConfig {
	return SlippageConfig{
		Model:            SlippageModelFixed,
		FixedPct:         0.001,
		VolatilityFactor: 0.1,
		VolumeFactor:     0.01,
		ATRPeriod:        14,
	}
}

func (c SlippageConfig) Validate() error {
	switch c.Model {
	case SlippageModelFixed, SlippageModelVolatility, SlippageModelVolume:
	default:
		return fmt.Errorf("SlippageConfig.Validate: %q: %w", c.Model, ErrUnknownSlippageModel)
	}

	if c.ATRPeriod < 0 {
		return fmt.Errorf("SlippageConfig.Validate: atr_period must not be negative, got %d", c.ATRPeriod)
	}

	return nil
}

// RiskPolicy is the capital and cost configuration of one simulation run.
// Immutable for the run's duration.
type RiskPolicy struct {
	RiskPerTrade        float64        `yaml:"risk_per_trade" json:"risk_per_trade"`
	MaxPositionFraction float64        `yaml:"max_position_fraction" json:"max_position_fraction"`
	CommissionRate      float64        `yaml:"commission_rate" json:"commission_rate"`
	MinTradeUnit        float64        `yaml:"min_trade_unit" json:"min_trade_unit"`
	SizingMode          SizingMode     `yaml:"sizing_mode" json:"sizing_mode"`
	Slippage            SlippageConfig `yaml:"slippage" json:"slippage"`
}

func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		RiskPerTrade:        0.02,
		MaxPositionFraction: 0.1,
		CommissionRate:      0.001,
		MinTradeUnit:        1,
		SizingMode:          SizingModeFixed,
		Slippage:            DefaultSlippageConfig(),
	}
}

func (p RiskPolicy) Validate() error {
	if p.RiskPerTrade <= 0 || p.RiskPerTrade > 1 {
		return fmt.Errorf("RiskPolicy.Validate: risk_per_trade %v: %w", p.RiskPerTrade, ErrInvalidRiskFraction)
	}

	if p.MaxPositionFraction <= 0 || p.MaxPositionFraction > 1 {
		return fmt.Errorf("RiskPolicy.Validate: max_position_fraction %v: %w", p.MaxPositionFraction, ErrInvalidRiskFraction)
	}

	if p.CommissionRate < 0 {
		return fmt.Errorf("RiskPolicy.Validate: commission_rate must not be negative, got %v", p.CommissionRate)
	}

	switch p.SizingMode {
	case "", SizingModeFixed, SizingModeSignalScaled:
	default:
		return fmt.Errorf("RiskPolicy.Validate: %q: %w", p.SizingMode, ErrUnknownSizingMode)
	}

	return p.Slippage.Validate()
}
