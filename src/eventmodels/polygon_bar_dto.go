package eventmodels

import "time"

type PolygonBarDTO struct {
	Timestamp int64   `json:"t"`
	Open      float64 `json:"o"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Close     float64 `json:"c"`
	Volume    float64 `json:"v"`
}

func (dto *PolygonBarDTO) ToModel() Bar {
	return Bar{
		Timestamp: time.UnixMilli(dto.Timestamp).UTC(),
		Open:      dto.Open,
		High:      dto.High,
		Low:       dto.Low,
		Close:     dto.Close,
		Volume:    dto.Volume,
	}
}

type PolygonBarsResponse struct {
	Ticker       string          `json:"ticker"`
	QueryCount   int             `json:"queryCount"`
	ResultsCount int             `json:"resultsCount"`
	Results      []PolygonBarDTO `json:"results"`
	NextURL      *string         `json:"next_url"`
}

func (resp *PolygonBarsResponse) ToBarSeries() BarSeries {
	bars := make(BarSeries, 0, len(resp.Results))
	for _, dto := range resp.Results {
		bars = append(bars, dto.ToModel())
	}

	return bars
}
