package indicators

type MACDStats struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD tracks fast and slow EMAs of the close plus a signal-line EMA of
// their difference. EMAs are seeded with the first observed value.
type MACD struct {
	FastPeriod   int
	SlowPeriod   int
	SignalPeriod int

	fastEMA   float64
	slowEMA   float64
	signalEMA float64
	count     int
}

func NewMACD(fastPeriod, slowPeriod, signalPeriod int) *MACD {
	return &MACD{
		FastPeriod:   fastPeriod,
		SlowPeriod:   slowPeriod,
		SignalPeriod: signalPeriod,
	}
}

func ema(prev, value float64, period int) float64 {
	alpha := 2.0 / (float64(period) + 1.0)
	return alpha*value + (1-alpha)*prev
}

// Update pushes the next close. Readiness requires the slow window plus the
// signal window to have been seen, so the signal line is meaningful.
func (m *MACD) Update(close float64) (bool, MACDStats) {
	if m.count == 0 {
		m.fastEMA = close
		m.slowEMA = close
		m.signalEMA = 0
	} else {
		m.fastEMA = ema(m.fastEMA, close, m.FastPeriod)
		m.slowEMA = ema(m.slowEMA, close, m.SlowPeriod)
	}

	macd := m.fastEMA - m.slowEMA
	if m.count == 0 {
		m.signalEMA = macd
	} else {
		m.signalEMA = ema(m.signalEMA, macd, m.SignalPeriod)
	}

	m.count++

	if m.count < m.SlowPeriod+m.SignalPeriod {
		return false, MACDStats{}
	}

	return true, MACDStats{
		MACD:      macd,
		Signal:    m.signalEMA,
		Histogram: macd - m.signalEMA,
	}
}
