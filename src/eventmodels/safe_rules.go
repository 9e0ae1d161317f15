package eventmodels

import "fmt"

type CrashProtectionAction string

const (
	// CrashActionExitAll forces a full liquidation signal on crash bars.
	CrashActionExitAll CrashProtectionAction = "exit_all"
	// CrashActionNoEntry cancels buy signals on crash bars.
	CrashActionNoEntry CrashProtectionAction = "no_entry"
)

type VolatilityLimitAction string

const (
	// VolatilityActionReducePosition halves the signal on high-volatility bars.
	VolatilityActionReducePosition VolatilityLimitAction = "reduce_position"
	// VolatilityActionNoTrade zeroes the signal on high-volatility bars.
	VolatilityActionNoTrade VolatilityLimitAction = "no_trade"
)

type TrendFilterAction string

const (
	// TrendActionFollowTrend zeroes signals that oppose the prevailing trend.
	TrendActionFollowTrend TrendFilterAction = "follow_trend"
	// TrendActionStrengthenTrend amplifies signals that agree with the trend.
	TrendActionStrengthenTrend TrendFilterAction = "strengthen_trend"
)

type CrashProtectionRule struct {
	Enabled              bool                  `yaml:"enabled" json:"enabled"`
	DailyReturnThreshold float64               `yaml:"daily_return_threshold" json:"daily_return_threshold"`
	Action               CrashProtectionAction `yaml:"action" json:"action"`
}

type VolatilityLimitRule struct {
	Enabled      bool                  `yaml:"enabled" json:"enabled"`
	ATRThreshold float64               `yaml:"atr_threshold" json:"atr_threshold"`
	ATRPeriod    int                   `yaml:"atr_period" json:"atr_period"`
	Action       VolatilityLimitAction `yaml:"action" json:"action"`
}

type TrendFilterRule struct {
	Enabled   bool              `yaml:"enabled" json:"enabled"`
	SMAPeriod int               `yaml:"sma_period" json:"sma_period"`
	Action    TrendFilterAction `yaml:"action" json:"action"`
}

// SafeRuleConfig is the set of protective overlay rules applied to a raw
// signal series before sizing. Rules run in a fixed order: crash protection,
// then volatility limit, then trend filter. Immutable per run.
type SafeRuleConfig struct {
	CrashProtection CrashProtectionRule `yaml:"crash_protection" json:"crash_protection"`
	VolatilityLimit VolatilityLimitRule `yaml:"volatility_limit" json:"volatility_limit"`
	TrendFilter     TrendFilterRule     `yaml:"trend_filter" json:"trend_filter"`
}

func DefaultSafeRuleConfig() SafeRuleConfig {
	return SafeRuleConfig{
		CrashProtection: CrashProtectionRule{
			Enabled:              true,
			DailyReturnThreshold: -0.05,
			Action:               CrashActionExitAll,
		},
		VolatilityLimit: VolatilityLimitRule{
			Enabled:      true,
			ATRThreshold: 0.03,
			ATRPeriod:    14,
			Action:       VolatilityActionReducePosition,
		},
		TrendFilter: TrendFilterRule{
			Enabled:   true,
			SMAPeriod: 200,
			Action:    TrendActionFollowTrend,
		},
	}
}

func (c SafeRuleConfig) Validate() error {
	if c.CrashProtection.Enabled {
		switch c.CrashProtection.Action {
		case CrashActionExitAll, CrashActionNoEntry:
		default:
			return fmt.Errorf("SafeRuleConfig.Validate: crash_protection action %q: %w", c.CrashProtection.Action, ErrUnknownSafeRuleAction)
		}
	}

	if c.VolatilityLimit.Enabled {
		switch c.VolatilityLimit.Action {
		case VolatilityActionReducePosition, VolatilityActionNoTrade:
		default:
			return fmt.Errorf("SafeRuleConfig.Validate: volatility_limit action %q: %w", c.VolatilityLimit.Action, ErrUnknownSafeRuleAction)
		}

		if c.VolatilityLimit.ATRPeriod < 0 {
			return fmt.Errorf("SafeRuleConfig.Validate: volatility_limit atr_period must not be negative, got %d", c.VolatilityLimit.ATRPeriod)
		}
	}

	if c.TrendFilter.Enabled {
		switch c.TrendFilter.Action {
		case TrendActionFollowTrend, TrendActionStrengthenTrend:
		default:
			return fmt.Errorf("SafeRuleConfig.Validate: trend_filter action %q: %w", c.TrendFilter.Action, ErrUnknownSafeRuleAction)
		}

		if c.TrendFilter.SMAPeriod < 0 {
			return fmt.Errorf("SafeRuleConfig.Validate: trend_filter sma_period must not be negative, got %d", c.TrendFilter.SMAPeriod)
		}
	}

	return nil
}
