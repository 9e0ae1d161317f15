package eventservices

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

func writeTempCsv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestImportBars(t *testing.T) {
	t.Run("reads plain dates", func(t *testing.T) {
		path := writeTempCsv(t, "date,open,high,low,close,volume\n2024-01-02,100,102,99,101,5000\n2024-01-03,101,103,100,102,6000\n")

		bars, err := ImportBars(path)
		require.NoError(t, err)

		require.Len(t, bars, 2)
		require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), bars[0].Timestamp)
		require.Equal(t, 100.0, bars[0].Open)
		require.Equal(t, 102.0, bars[1].Close)
		require.Equal(t, 6000.0, bars[1].Volume)
	})

	t.Run("reads rfc3339 dates", func(t *testing.T) {
		path := writeTempCsv(t, "date,open,high,low,close,volume\n2024-01-02T00:00:00Z,100,102,99,101,5000\n")

		bars, err := ImportBars(path)
		require.NoError(t, err)
		require.Len(t, bars, 1)
	})

	t.Run("reports the failing row on a bad date", func(t *testing.T) {
		path := writeTempCsv(t, "date,open,high,low,close,volume\n2024-01-02,100,102,99,101,5000\nnot-a-date,101,103,100,102,6000\n")

		_, err := ImportBars(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "row 1")
	})

	t.Run("rejects out-of-order rows", func(t *testing.T) {
		path := writeTempCsv(t, "date,open,high,low,close,volume\n2024-01-03,100,102,99,101,5000\n2024-01-02,101,103,100,102,6000\n")

		_, err := ImportBars(path)
		require.ErrorIs(t, err, eventmodels.ErrNonMonotonicTimestamps)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ImportBars(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}

func TestWriteBarsCSV(t *testing.T) {
	bars := eventmodels.BarSeries{
		{Timestamp: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Open: 100, High: 102, Low: 99, Close: 101, Volume: 5000},
		{Timestamp: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Open: 101, High: 103, Low: 100, Close: 102, Volume: 6000},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteBarsCSV(bars, path))

	read, err := ImportBars(path)
	require.NoError(t, err)
	require.Equal(t, bars, read)
}
