// Package eventservices holds the data-plumbing collaborators around the
// simulation core: CSV import/export, report rendering, and market-data
// fetch. Nothing in here is called from inside a simulation loop.
package eventservices

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

// ImportBars reads an OHLCV CSV file (columns: date, open, high, low,
// close, volume) and validates the resulting series.
func ImportBars(path string) (eventmodels.BarSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ImportBars: failed to open %s: %w", path, err)
	}

	defer f.Close()

	var rows []*eventmodels.CsvBarDTO
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("ImportBars: error unmarshalling %s: %w", path, err)
	}

	bars := make(eventmodels.BarSeries, 0, len(rows))
	for i, row := range rows {
		bar, err := row.ToModel()
		if err != nil {
			return nil, fmt.Errorf("ImportBars: row %d: %w", i, err)
		}

		bars = append(bars, bar)
	}

	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("ImportBars: %s: %w", path, err)
	}

	return bars, nil
}

// WriteBarsCSV writes a bar series in the same format ImportBars reads.
func WriteBarsCSV(bars eventmodels.BarSeries, path string) error {
	rows := make([]*eventmodels.CsvBarDTO, 0, len(bars))
	for _, bar := range bars {
		rows = append(rows, eventmodels.NewCsvBarDTO(bar))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteBarsCSV: failed to create %s: %w", path, err)
	}

	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("WriteBarsCSV: error marshalling %s: %w", path, err)
	}

	return nil
}
