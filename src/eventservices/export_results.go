package eventservices

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

// ExportBacktestResult writes the full result as JSON plus trade and equity
// CSVs keyed by strategy, symbol and end date. Returns the JSON path.
func ExportBacktestResult(result *eventmodels.BacktestResult, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("ExportBacktestResult: failed to create %s: %w", outDir, err)
	}

	base := fmt.Sprintf("%s_%s_%s", result.StrategyName, result.Symbol, result.EndDate.Format("20060102"))

	resultPath := filepath.Join(outDir, base+".json")
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ExportBacktestResult: failed to marshal result: %w", err)
	}

	if err := os.WriteFile(resultPath, data, 0644); err != nil {
		return "", fmt.Errorf("ExportBacktestResult: failed to write %s: %w", resultPath, err)
	}

	if len(result.Trades) > 0 {
		if err := writeCsv(filepath.Join(outDir, base+"_trades.csv"), &result.Trades); err != nil {
			return "", err
		}
	}

	if err := writeCsv(filepath.Join(outDir, base+"_equity.csv"), &result.EquityCurve); err != nil {
		return "", err
	}

	log.Infof("ExportBacktestResult: wrote %s", resultPath)

	return resultPath, nil
}

func writeCsv(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeCsv: failed to create %s: %w", path, err)
	}

	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("writeCsv: error marshalling %s: %w", path, err)
	}

	return nil
}
