package eventmodels

import (
	"fmt"
	"time"
)

// CsvBarDTO is the row format of imported and exported bar CSV files. The
// date column accepts RFC3339 or plain dates.
type CsvBarDTO struct {
	Date   string  `csv:"date"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume float64 `csv:"volume"`
}

func (d *CsvBarDTO) ToModel() (Bar, error) {
	t, err := time.Parse(time.RFC3339, d.Date)
	if err != nil {
		t, err = time.Parse("2006-01-02", d.Date)
		if err != nil {
			return Bar{}, fmt.Errorf("CsvBarDTO.ToModel: error parsing date %q: %w", d.Date, err)
		}
	}

	return Bar{
		Timestamp: t,
		Open:      d.Open,
		High:      d.High,
		Low:       d.Low,
		Close:     d.Close,
		Volume:    d.Volume,
	}, nil
}

func NewCsvBarDTO(b Bar) *CsvBarDTO {
	return &CsvBarDTO{
		Date:   b.Timestamp.Format(time.RFC3339),
		Open:   b.Open,
		High:   b.High,
		Low:    b.Low,
		Close:  b.Close,
		Volume: b.Volume,
	}
}
