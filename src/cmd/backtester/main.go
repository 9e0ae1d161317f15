package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ymiyamoto5/backtester/src/backtest"
	"github.com/ymiyamoto5/backtester/src/eventmodels"
	"github.com/ymiyamoto5/backtester/src/eventservices"
	"github.com/ymiyamoto5/backtester/src/strategies"
	"github.com/ymiyamoto5/backtester/src/utils"
)

type RunArgs struct {
	ConfigPath string
	OutDir     string
}

type RunResults struct {
	Results []*eventmodels.BacktestResult
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/backtester/main.go --config run-config.yaml --outDir results",
	Short: "Backtest trading strategies over daily bars",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		results, err := Run(RunArgs{
			ConfigPath: configPath,
			OutDir:     outDir,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Println(eventservices.ComparisonTable(results.Results))

		log.Info("Done")
	},
}

func Run(args RunArgs) (RunResults, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		return RunResults{}, fmt.Errorf("failed to init environment variables: %w", err)
	}

	runID := uuid.New()
	log.Infof("starting backtest run %s", runID)

	// Load config
	data, err := os.ReadFile(args.ConfigPath)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to read run config: %v", err)
	}

	var runConfig eventmodels.RunConfigYAML
	if err := yaml.Unmarshal(data, &runConfig); err != nil {
		return RunResults{}, fmt.Errorf("failed to unmarshal run config: %v", err)
	}

	if err := runConfig.Validate(); err != nil {
		return RunResults{}, fmt.Errorf("invalid run config: %w", err)
	}

	bars, err := eventservices.ImportBars(runConfig.BarsCsv)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to import bars: %w", err)
	}

	log.Infof("loaded %d bars for %s from %s", len(bars), runConfig.Symbol, runConfig.BarsCsv)

	policy := eventmodels.DefaultRiskPolicy()
	if runConfig.Risk != nil {
		policy = *runConfig.Risk
	}

	rules := eventmodels.DefaultSafeRuleConfig()
	if runConfig.SafeRules != nil {
		rules = *runConfig.SafeRules
	}

	sink := eventmodels.NewObservationCollector()

	engine, err := backtest.NewSimulationEngine(policy, rules, sink)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to create simulation engine: %w", err)
	}

	var results []*eventmodels.BacktestResult
	for _, strategyConfig := range runConfig.Strategies {
		strategy, err := strategies.NewFromConfig(strategyConfig)
		if err != nil {
			return RunResults{}, fmt.Errorf("failed to create strategy: %w", err)
		}

		signals, err := strategy.GenerateSignals(bars)
		if err != nil {
			return RunResults{}, fmt.Errorf("failed to generate signals for %s: %w", strategy.Name(), err)
		}

		result, err := engine.Run(strategy.Name(), runConfig.Symbol, bars, signals, runConfig.InitialCapital)
		if err != nil {
			return RunResults{}, fmt.Errorf("failed to run backtest for %s: %w", strategy.Name(), err)
		}

		fmt.Println(result)

		if args.OutDir != "" {
			if _, err := eventservices.ExportBacktestResult(result, args.OutDir); err != nil {
				return RunResults{}, fmt.Errorf("failed to export results for %s: %w", strategy.Name(), err)
			}
		}

		results = append(results, result)
	}

	for _, observation := range sink.Events {
		log.Warnf("bar %d: %s: %s", observation.BarIndex, observation.Kind, observation.Message)
	}

	return RunResults{Results: results}, nil
}

func main() {
	runCmd.PersistentFlags().String("config", "run-config.yaml", "Path to the run config yaml file.")
	runCmd.PersistentFlags().String("outDir", "", "The directory to write the output to.")

	runCmd.Execute()
}
