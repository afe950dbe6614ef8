package taxes

import (
	"fmt"
	"maps"
)

// Trade is the outcome of replaying one transaction. For sells,
// ProfitLoss carries the profit or loss realized at the moment of the
// replay; for buys it stays nil for the whole lifetime of the trade.
type Trade struct {
	Transaction
	ProfitLoss *Money
}

// yearEnd is the immutable picture of all holdings at the close of one
// calendar year.
type yearEnd struct {
	positions     map[string]Quantity
	averagePrices map[string]Money
}

// History is the result of replaying a transaction stream in strict
// chronological order: the annotated trades plus one holdings snapshot
// per calendar year spanned by the stream.
//
// Snapshots cover a contiguous range of years. A year without activity
// carries the previous year end forward unchanged.
type History struct {
	trades    []Trade
	firstYear int
	yearEnds  []yearEnd // index 0 is firstYear
}

// updatedAveragePrice recomputes the weighted-average acquisition
// price after a purchase. The guards detect a corrupt transaction
// stream and are fatal.
func updatedAveragePrice(position Quantity, averagePrice Money, quantity Quantity, value Money) (Money, error) {
	if position.IsNegative() {
		return Money{}, fmt.Errorf("current position %s must not be negative", position)
	}
	if averagePrice.IsNegative() {
		return Money{}, fmt.Errorf("current average price %s must not be negative", averagePrice)
	}
	if !quantity.IsPositive() {
		return Money{}, fmt.Errorf("position increment %s must be positive", quantity)
	}
	if value.IsNegative() {
		return Money{}, fmt.Errorf("value increment %s must not be negative", value)
	}
	return averagePrice.Mul(position).Add(value).Div(position.Add(quantity)), nil
}

// replay sorts the transactions by date (stable on ties) and replays
// them, maintaining per ticker the current position and weighted
// average price, and snapshotting both at every year boundary.
func replay(transactions []Transaction) (*History, error) {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	stableSortByDate(sorted)

	positions := make(map[string]Quantity)
	averagePrices := make(map[string]Money)
	h := &History{trades: make([]Trade, 0, len(sorted))}

	currentYear := 0
	for _, tx := range sorted {
		year := tx.When().Year()
		if currentYear == 0 {
			currentYear = year
			h.firstYear = year
		}
		// Snapshot every year up to the transaction's year, so gap
		// years carry the holdings forward unchanged.
		for year > currentYear {
			h.yearEnds = append(h.yearEnds, yearEnd{
				positions:     maps.Clone(positions),
				averagePrices: maps.Clone(averagePrices),
			})
			currentYear++
		}

		ticker := tx.Asset().Ticker
		position := positions[ticker]
		averagePrice := averagePrices[ticker]
		trade := Trade{Transaction: tx}

		switch tx.Side() {
		case Buy:
			newAveragePrice, err := updatedAveragePrice(position, averagePrice, tx.Quantity(), tx.Value())
			if err != nil {
				return nil, fmt.Errorf("buy %s on %s: %w", ticker, tx.When(), err)
			}
			positions[ticker] = position.Add(tx.Quantity())
			averagePrices[ticker] = newAveragePrice
		case Sell:
			profit := tx.Value().Sub(averagePrice.Mul(tx.Quantity()))
			trade.ProfitLoss = &profit
			// A sell that empties (or overshoots) the position closes
			// it. Over-sells are not rejected, see the package doc.
			if !position.Sub(tx.Quantity()).IsPositive() {
				delete(positions, ticker)
				delete(averagePrices, ticker)
			} else {
				positions[ticker] = position.Sub(tx.Quantity())
			}
		}
		h.trades = append(h.trades, trade)
	}
	if currentYear != 0 {
		h.yearEnds = append(h.yearEnds, yearEnd{
			positions:     maps.Clone(positions),
			averagePrices: maps.Clone(averagePrices),
		})
	}
	return h, nil
}

// Trades returns the replayed trades in chronological order.
func (h *History) Trades() []Trade { return h.trades }

// at returns the year-end snapshot for the given year, or false when
// the replay never reached that year.
func (h *History) at(year int) (yearEnd, bool) {
	i := year - h.firstYear
	if len(h.yearEnds) == 0 || i < 0 || i >= len(h.yearEnds) {
		return yearEnd{}, false
	}
	return h.yearEnds[i], true
}

// Position returns the quantity of the asset held at the end of the
// given year, zero if none.
func (h *History) Position(year int, ticker string) Quantity {
	end, ok := h.at(year)
	if !ok {
		return Quantity{}
	}
	return end.positions[ticker]
}

// AveragePrice returns the weighted-average acquisition price of the
// asset at the end of the given year. It is only defined while a
// position is held, the second return value reports that.
func (h *History) AveragePrice(year int, ticker string) (Money, bool) {
	end, ok := h.at(year)
	if !ok {
		return Money{}, false
	}
	price, ok := end.averagePrices[ticker]
	return price, ok
}
