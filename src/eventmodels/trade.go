package eventmodels

import "time"

type TradeAction string

const (
	TradeActionBuy  TradeAction = "buy"
	TradeActionSell TradeAction = "sell"
)

// Trade is an immutable record of one executed fill. Quantity is always
// positive; Action carries the direction. IsClosing marks fills that reduce
// an existing position, the only fills that realize P&L.
type Trade struct {
	Timestamp         time.Time   `json:"timestamp" csv:"timestamp"`
	Action            TradeAction `json:"action" csv:"action"`
	Quantity          float64     `json:"quantity" csv:"quantity"`
	Price             float64     `json:"price" csv:"price"`
	Commission        float64     `json:"commission" csv:"commission"`
	IsClosing         bool        `json:"is_closing" csv:"is_closing"`
	RealizedPL        float64     `json:"realized_pl" csv:"realized_pl"`
	ResultingPosition float64     `json:"resulting_position" csv:"resulting_position"`
	ResultingCash     float64     `json:"resulting_cash" csv:"resulting_cash"`
}

func NewTrade(timestamp time.Time, action TradeAction, quantity, price, commission float64) Trade {
	return Trade{
		Timestamp:  timestamp,
		Action:     action,
		Quantity:   quantity,
		Price:      price,
		Commission: commission,
	}
}
