package eventmodels

import "fmt"

// StrategyConfigYAML selects and parameterizes one signal producer in a run
// config. Unused parameters for the chosen type are ignored.
type StrategyConfigYAML struct {
	Type         string  `yaml:"type"`
	ShortWindow  int     `yaml:"short_window"`
	LongWindow   int     `yaml:"long_window"`
	Period       int     `yaml:"period"`
	Overbought   float64 `yaml:"overbought"`
	Oversold     float64 `yaml:"oversold"`
	FastPeriod   int     `yaml:"fast_period"`
	SlowPeriod   int     `yaml:"slow_period"`
	SignalPeriod int     `yaml:"signal_period"`
}

// RunConfigYAML is the backtester CLI's run configuration file.
type RunConfigYAML struct {
	Symbol         string               `yaml:"symbol"`
	BarsCsv        string               `yaml:"bars_csv"`
	InitialCapital float64              `yaml:"initial_capital"`
	Risk           *RiskPolicy          `yaml:"risk"`
	SafeRules      *SafeRuleConfig      `yaml:"safe_rules"`
	Strategies     []StrategyConfigYAML `yaml:"strategies"`
}

func (c *RunConfigYAML) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("RunConfigYAML.Validate: symbol is required")
	}

	if c.BarsCsv == "" {
		return fmt.Errorf("RunConfigYAML.Validate: bars_csv is required")
	}

	if c.InitialCapital <= 0 {
		return fmt.Errorf("RunConfigYAML.Validate: initial_capital %v: %w", c.InitialCapital, ErrInvalidInitialCapital)
	}

	if len(c.Strategies) == 0 {
		return fmt.Errorf("RunConfigYAML.Validate: at least one strategy is required")
	}

	return nil
}
