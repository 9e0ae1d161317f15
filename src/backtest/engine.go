package backtest

import (
	"fmt"
	"math"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

// SimulationEngine replays a bar series against an aligned signal series,
// turning signals into fills, a trade log and an equity curve. One engine
// instance owns all mutable run state; independent engines may run in
// parallel as long as they do not share input slices for writing.
//
// Execution timing: the signal generated on bar i-1 is acted on at bar i's
// open, so no fill ever uses information from its own bar's close.
//
// A reversal (long to short or short to long) is recorded as two trades: a
// full close at the bar's fill price, then a fresh open sized against the
// post-close cash balance.
type SimulationEngine struct {
	policy  eventmodels.RiskPolicy
	sizer   *PositionSizer
	overlay *SafeRuleOverlay
	sink    eventmodels.ObservationSink
}

func NewSimulationEngine(policy eventmodels.RiskPolicy, safeRules eventmodels.SafeRuleConfig, sink eventmodels.ObservationSink) (*SimulationEngine, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("NewSimulationEngine: invalid risk policy: %w", err)
	}

	overlay, err := NewSafeRuleOverlay(safeRules)
	if err != nil {
		return nil, fmt.Errorf("NewSimulationEngine: invalid safe rule config: %w", err)
	}

	if sink == nil {
		sink = eventmodels.NopSink{}
	}

	return &SimulationEngine{
		policy:  policy,
		sizer:   NewPositionSizer(policy),
		overlay: overlay,
		sink:    sink,
	}, nil
}

// Run executes one backtest. All preconditions are checked before any state
// is built; a validation failure aborts with no partial result.
func (e *SimulationEngine) Run(strategyName, symbol string, bars eventmodels.BarSeries, signals eventmodels.SignalSeries, initialCapital float64) (*eventmodels.BacktestResult, error) {
	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("SimulationEngine.Run: %w", err)
	}

	if err := signals.Validate(len(bars)); err != nil {
		return nil, fmt.Errorf("SimulationEngine.Run: %w", err)
	}

	if initialCapital <= 0 {
		return nil, fmt.Errorf("SimulationEngine.Run: %v: %w", initialCapital, eventmodels.ErrInvalidInitialCapital)
	}

	overlaid := e.overlay.Apply(bars, signals)
	costModel := NewCostModel(e.policy, e.sink)

	position := eventmodels.PositionState{}
	ledger := eventmodels.LedgerState{Cash: initialCapital}
	trades := make([]eventmodels.Trade, 0)
	equityCurve := make([]eventmodels.EquitySample, 0, len(bars))

	costModel.ObserveBar(bars[0])
	equityCurve = append(equityCurve, eventmodels.EquitySample{Timestamp: bars[0].Timestamp, Equity: initialCapital})

	for i := 1; i < len(bars); i++ {
		bar := bars[i]
		costModel.ObserveBar(bar)

		// mark to market on the close-to-close delta before acting on the
		// prior bar's signal
		if position.Quantity != 0 {
			position.UnrealizedPL += position.Quantity * (bar.Close - bars[i-1].Close)
		}

		signal := overlaid[i-1]

		if !bar.IsTradable() {
			e.sink.Observe(eventmodels.Observation{
				Kind:      eventmodels.ObservationDegenerateBar,
				BarIndex:  i,
				Timestamp: bar.Timestamp,
				Message:   fmt.Sprintf("open %v, close %v: no liquidity, skipping trading", bar.Open, bar.Close),
			})

			equityCurve = append(equityCurve, eventmodels.EquitySample{Timestamp: bar.Timestamp, Equity: ledger.Cash + position.Quantity*bar.Close})
			continue
		}

		if signal > 0 && position.Quantity <= 0 {
			if position.Quantity < 0 {
				equity := ledger.Cash + position.Quantity*bar.Open
				closeQty := e.sizer.SizeForSignal(signal, position.Quantity, bar.Open, equity)
				if closeQty > 0 {
					trades = append(trades, e.executeFill(costModel, bar, i, bar.Open, eventmodels.TradeActionBuy, closeQty, &position, &ledger))
				}
			}

			if position.Quantity == 0 {
				openQty := e.sizer.SizeForSignal(signal, 0, bar.Open, ledger.Cash)
				if openQty > 0 {
					trades = append(trades, e.executeFill(costModel, bar, i, bar.Open, eventmodels.TradeActionBuy, openQty, &position, &ledger))
				}
			}
		} else if signal < 0 && position.Quantity >= 0 {
			if position.Quantity > 0 {
				equity := ledger.Cash + position.Quantity*bar.Open
				closeQty := e.sizer.SizeForSignal(signal, position.Quantity, bar.Open, equity)
				if closeQty < 0 {
					trades = append(trades, e.executeFill(costModel, bar, i, bar.Open, eventmodels.TradeActionSell, -closeQty, &position, &ledger))
				}
			}

			if position.Quantity == 0 {
				openQty := e.sizer.SizeForSignal(signal, 0, bar.Open, ledger.Cash)
				if openQty < 0 {
					trades = append(trades, e.executeFill(costModel, bar, i, bar.Open, eventmodels.TradeActionSell, -openQty, &position, &ledger))
				}
			}
		}

		equityCurve = append(equityCurve, eventmodels.EquitySample{Timestamp: bar.Timestamp, Equity: ledger.Cash + position.Quantity*bar.Close})
	}

	// no open position survives a completed run
	if position.Quantity != 0 {
		last := bars[len(bars)-1]

		action := eventmodels.TradeActionSell
		if position.Quantity < 0 {
			action = eventmodels.TradeActionBuy
		}

		trades = append(trades, e.executeFill(costModel, last, len(bars)-1, last.Close, action, math.Abs(position.Quantity), &position, &ledger))
		equityCurve[len(equityCurve)-1] = eventmodels.EquitySample{Timestamp: last.Timestamp, Equity: ledger.Cash}
	}

	return &eventmodels.BacktestResult{
		StrategyName: strategyName,
		Symbol:       symbol,
		StartDate:    bars[0].Timestamp,
		EndDate:      bars[len(bars)-1].Timestamp,
		Trades:       trades,
		EquityCurve:  equityCurve,
		Metrics:      CalculateMetrics(equityCurve, trades, initialCapital),
	}, nil
}

// executeFill prices the trade, moves cash, restates the position, and
// returns the immutable trade record. quantity is a positive magnitude;
// action carries the direction.
func (e *SimulationEngine) executeFill(costModel *CostModel, bar eventmodels.Bar, barIndex int, intendedPrice float64, action eventmodels.TradeAction, quantity float64, position *eventmodels.PositionState, ledger *eventmodels.LedgerState) eventmodels.Trade {
	fill := costModel.Execute(intendedPrice, action, quantity, bar)

	signedQty := quantity
	if action == eventmodels.TradeActionSell {
		signedQty = -quantity
	}

	trade := eventmodels.NewTrade(bar.Timestamp, action, quantity, fill.Price, fill.Commission)

	closing := position.Quantity != 0 && position.Quantity*signedQty < 0
	if closing {
		closed := math.Min(quantity, math.Abs(position.Quantity))

		var realized float64
		if position.Quantity > 0 {
			realized = (fill.Price-position.AverageEntryPrice)*closed - fill.Commission
		} else {
			realized = (position.AverageEntryPrice-fill.Price)*closed - fill.Commission
		}

		ledger.RealizedPLCumulative += realized
		trade.IsClosing = true
		trade.RealizedPL = realized
	}

	if action == eventmodels.TradeActionBuy {
		ledger.Cash -= fill.Price * quantity
	} else {
		ledger.Cash += fill.Price * quantity
	}
	ledger.Cash -= fill.Commission

	newQty := position.Quantity + signedQty
	switch {
	case closing && newQty == 0:
		*position = eventmodels.PositionState{}
	case closing:
		position.Quantity = newQty
		position.UnrealizedPL = newQty * (bar.Close - position.AverageEntryPrice)
	case position.Quantity == 0:
		position.Quantity = newQty
		position.AverageEntryPrice = fill.Price
		position.UnrealizedPL = newQty * (bar.Close - fill.Price)
	default:
		// adding to an existing position: restate the average entry
		totalNotional := position.AverageEntryPrice*math.Abs(position.Quantity) + fill.Price*quantity
		position.AverageEntryPrice = totalNotional / (math.Abs(position.Quantity) + quantity)
		position.Quantity = newQty
		position.UnrealizedPL += signedQty * (bar.Close - fill.Price)
	}

	trade.ResultingPosition = position.Quantity
	trade.ResultingCash = ledger.Cash

	if ledger.Cash < 0 {
		e.sink.Observe(eventmodels.Observation{
			Kind:      eventmodels.ObservationNegativeCash,
			BarIndex:  barIndex,
			Timestamp: bar.Timestamp,
			Message:   fmt.Sprintf("cash balance %v after %s of %v", ledger.Cash, action, quantity),
		})
	}

	return trade
}
