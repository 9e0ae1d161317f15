package indicators

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

type BollingerBands struct {
	SmaPeriod         int
	StandardDeviation float64
	typicalPrice      []float64
}

type BollingerBandsStats struct {
	Upper         float64
	Lower         float64
	MovingAverage float64
}

func NewBollingerBands(smaPeriod int, standardDeviation float64) *BollingerBands {
	return &BollingerBands{
		SmaPeriod:         smaPeriod,
		StandardDeviation: standardDeviation,
	}
}

func (b *BollingerBands) Update(bar eventmodels.Bar) (bool, BollingerBandsStats, error) {
	typicalPrice := (bar.High + bar.Low + bar.Close) / 3.0
	if len(b.typicalPrice) < b.SmaPeriod {
		b.typicalPrice = append(b.typicalPrice, typicalPrice)
	} else {
		b.typicalPrice = append(b.typicalPrice[1:], typicalPrice)
	}

	if len(b.typicalPrice) < b.SmaPeriod {
		return false, BollingerBandsStats{}, nil
	}

	movingAverage, err := stats.Mean(b.typicalPrice)
	if err != nil {
		return false, BollingerBandsStats{}, fmt.Errorf("BollingerBands.Update: failed to calculate mean: %v", err)
	}

	sd, err := stats.StandardDeviation(b.typicalPrice)
	if err != nil {
		return false, BollingerBandsStats{}, fmt.Errorf("BollingerBands.Update: failed to calculate the standard deviation: %v", err)
	}

	return true, BollingerBandsStats{
		Upper:         movingAverage + (b.StandardDeviation * sd),
		Lower:         movingAverage - (b.StandardDeviation * sd),
		MovingAverage: movingAverage,
	}, nil
}
