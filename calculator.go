package taxes

import (
	"sort"
)

// Policy fixes the parameters that vary between asset classes: which
// classes the calculator is responsible for, the DARF rate, and how
// monthly charges are derived from the replayed trades.
type Policy struct {
	Classes []AssetClass
	Rate    Quantity
	// Darfs derives the monthly withholding charges for one year.
	// When nil the default applies: the rate is charged on any month
	// with strictly positive profit, with no exemption.
	Darfs DarfDeriver
}

// DarfDeriver computes the withholding charges of one year from a
// fully replayed calculator.
type DarfDeriver func(c *Calculator, year int) []Darf

// Calculator computes per-year tax figures for one asset class. It
// owns its filtered transaction slice and the replayed history; no
// state is shared between calculator instances.
type Calculator struct {
	policy  Policy
	history *History
}

// NewCalculator filters the transactions to the policy's classes and
// replays them. It fails on a corrupt transaction stream.
func NewCalculator(transactions []Transaction, policy Policy) (*Calculator, error) {
	history, err := replay(filterByClass(transactions, policy.Classes...))
	if err != nil {
		return nil, err
	}
	return &Calculator{policy: policy, history: history}, nil
}

// Rate returns the policy's DARF rate.
func (c *Calculator) Rate() Quantity { return c.policy.Rate }

// Trades returns the replayed trades, sorted by date, with realized
// profit or loss attached to sells.
func (c *Calculator) Trades() []Trade { return c.history.Trades() }

// monthlyProfit buckets by calendar month the realized profit or loss
// of the year's sells matching the include filter. Buys never
// contribute; months without sells stay zero. Values are unrounded.
func (c *Calculator) monthlyProfit(year int, include func(Trade) bool) [12]Money {
	var profits [12]Money
	for _, trade := range c.history.Trades() {
		if trade.When().Year() != year || trade.ProfitLoss == nil {
			continue
		}
		if include != nil && !include(trade) {
			continue
		}
		m := int(trade.When().Month()) - 1
		profits[m] = profits[m].Add(*trade.ProfitLoss)
	}
	return profits
}

// MonthlyProfitLoss returns the realized profit or loss of the year,
// bucketed by calendar month in the order of the Months table.
func (c *Calculator) MonthlyProfitLoss(year int) [12]Money {
	return c.monthlyProfit(year, nil)
}

// ProfitByTicker returns the year's realized profit or loss per
// ticker, unrounded. Tickers with no sells in the year are absent.
func (c *Calculator) ProfitByTicker(year int) map[string]Money {
	profits := make(map[string]Money)
	for _, trade := range c.history.Trades() {
		if trade.When().Year() != year || trade.ProfitLoss == nil {
			continue
		}
		ticker := trade.Asset().Ticker
		profits[ticker] = profits[ticker].Add(*trade.ProfitLoss)
	}
	return profits
}

// Situation describes one holding at a year end: quantity held and its
// value at average acquisition cost.
type Situation struct {
	Position Quantity
	Value    Money
}

// Situation returns the holdings at the end of the given year, keyed
// by ticker. A year the replay never reached yields an empty map, not
// an error: holding nothing is a valid terminal state.
func (c *Calculator) Situation(year int) map[string]Situation {
	situations := make(map[string]Situation)
	end, ok := c.history.at(year)
	if !ok {
		return situations
	}
	for ticker, position := range end.positions {
		averagePrice := end.averagePrices[ticker]
		situations[ticker] = Situation{Position: position, Value: averagePrice.Mul(position)}
	}
	return situations
}

// SituationLine compares one holding across two consecutive year ends.
type SituationLine struct {
	Ticker       string
	Position     Quantity // position at the current year end
	LastValue    Money    // value at the previous year end, cents
	CurrentValue Money    // value at the current year end, cents
}

// SituationReport compares the given year's holdings with the previous
// year's. Every ticker present in either year appears exactly once,
// sorted ascending; fully divested tickers keep their last value with
// a zero position.
func (c *Calculator) SituationReport(year int) []SituationLine {
	last := c.Situation(year - 1)
	current := c.Situation(year)

	lines := make([]SituationLine, 0, len(current)+len(last))
	for ticker, situation := range current {
		lines = append(lines, SituationLine{
			Ticker:       ticker,
			Position:     situation.Position,
			LastValue:    last[ticker].Value.Monetary(),
			CurrentValue: situation.Value.Monetary(),
		})
	}
	for ticker, situation := range last {
		if _, ok := current[ticker]; ok {
			continue
		}
		lines = append(lines, SituationLine{
			Ticker:    ticker,
			LastValue: situation.Value.Monetary(),
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Ticker < lines[j].Ticker })
	return lines
}

// MonthlyAmount is one labeled entry of a 12-month money series.
type MonthlyAmount struct {
	Month  string
	Amount Money
}

// TaxReport bundles everything the yearly tax filing needs for one
// asset class.
type TaxReport struct {
	Year          int
	Situation     []SituationLine
	MonthlyProfit []MonthlyAmount // rounded to cents
	Darfs         []Darf
	// Volume-exempt classes (stocks, crypto) also report the monthly
	// sales volume and the year's total exempt profit.
	SalesVolume  []MonthlyAmount
	ExemptProfit Money
}

// TaxReport assembles the situation report, the cent-rounded monthly
// profit series and the policy's DARF charges for the given year.
func (c *Calculator) TaxReport(year int) *TaxReport {
	deriver := c.policy.Darfs
	if deriver == nil {
		deriver = defaultDarfs
	}
	return &TaxReport{
		Year:          year,
		Situation:     c.SituationReport(year),
		MonthlyProfit: labeledAmounts(c.MonthlyProfitLoss(year)),
		Darfs:         deriver(c, year),
	}
}

// MarshalJSON implements the json.Marshaler interface for
// SituationLine.
func (l SituationLine) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", l.Ticker)
	w.Append("position", l.Position)
	w.Append("lastValue", l.LastValue)
	w.Append("currentValue", l.CurrentValue)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for
// MonthlyAmount.
func (a MonthlyAmount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("month", a.Month)
	w.Append("amount", a.Amount)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for TaxReport.
// The volume fields only appear for classes with a volume exemption.
func (r *TaxReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", r.Year)
	w.Append("situation", r.Situation)
	w.Append("monthlyProfit", r.MonthlyProfit)
	w.Append("darfs", r.Darfs)
	if r.SalesVolume != nil {
		w.Append("salesVolume", r.SalesVolume)
		w.Append("exemptProfit", r.ExemptProfit)
	}
	return w.MarshalJSON()
}

// defaultDarfs charges the policy rate on every month with strictly
// positive profit. A month at exactly zero is never taxed.
func defaultDarfs(c *Calculator, year int) []Darf {
	monthlyProfit := c.MonthlyProfitLoss(year)
	var darfs []Darf
	for _, month := range Months {
		profit := monthlyProfit[month.Index]
		if !profit.IsPositive() {
			continue
		}
		darfs = append(darfs, newDarf(year, month, profit.Mul(c.policy.Rate)))
	}
	return darfs
}
