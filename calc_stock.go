package taxes

// Brazilian stocks: 15% on monthly profit, exempt when the month's
// total sales volume stays at or under R$20.000,00.
var (
	stockDarfRate           = Q(0.15)
	stockExemptionThreshold = M(20000)
)

// StockCalculator computes the yearly tax figures for stock trades.
type StockCalculator struct {
	*Calculator
}

func NewStockCalculator(transactions []Transaction) (*StockCalculator, error) {
	c, err := NewCalculator(transactions, Policy{
		Classes: []AssetClass{Stock},
		Rate:    stockDarfRate,
		Darfs:   volumeThresholdDarfs(stockExemptionThreshold),
	})
	if err != nil {
		return nil, err
	}
	return &StockCalculator{Calculator: c}, nil
}

// MonthlySalesVolume returns the notional value sold per calendar
// month of the year, in the order of the Months table.
func (c *StockCalculator) MonthlySalesVolume(year int) [12]Money {
	return c.monthlySalesVolume(year)
}

// AnnualExemptProfit returns the year's tax-exempt profit: the
// positive profits realized in months that had sales but stayed at or
// under the exemption threshold.
func (c *StockCalculator) AnnualExemptProfit(year int) Money {
	return c.annualExemptProfit(year, stockExemptionThreshold)
}

// TaxReport extends the base report with the monthly sales-volume
// series and the annual exempt profit.
func (c *StockCalculator) TaxReport(year int) *TaxReport {
	report := c.Calculator.TaxReport(year)
	report.SalesVolume = labeledAmounts(c.monthlySalesVolume(year))
	report.ExemptProfit = c.AnnualExemptProfit(year).Monetary()
	return report
}

// monthlySalesVolume buckets the notional value of the year's sells by
// calendar month. Values are unrounded.
func (c *Calculator) monthlySalesVolume(year int) [12]Money {
	var volumes [12]Money
	for _, trade := range c.history.Trades() {
		if trade.When().Year() != year || trade.Side() != Sell {
			continue
		}
		m := int(trade.When().Month()) - 1
		volumes[m] = volumes[m].Add(trade.Value())
	}
	return volumes
}

// monthlyPositiveProfit sums, per month, only the trades that realized
// a strictly positive profit. Losses in the same month do not offset
// the exempt figure.
func (c *Calculator) monthlyPositiveProfit(year int) [12]Money {
	var profits [12]Money
	for _, trade := range c.history.Trades() {
		if trade.When().Year() != year || trade.ProfitLoss == nil || !trade.ProfitLoss.IsPositive() {
			continue
		}
		m := int(trade.When().Month()) - 1
		profits[m] = profits[m].Add(*trade.ProfitLoss)
	}
	return profits
}

// annualExemptProfit totals the positive profit of months whose sales
// volume is positive but at or under the threshold.
func (c *Calculator) annualExemptProfit(year int, threshold Money) Money {
	volumes := c.monthlySalesVolume(year)
	profits := c.monthlyPositiveProfit(year)
	var total Money
	for _, month := range Months {
		volume := volumes[month.Index]
		if volume.IsPositive() && volume.LessThanOrEqual(threshold) {
			total = total.Add(profits[month.Index])
		}
	}
	return total
}

// volumeThresholdDarfs builds the deriver shared by the classes with a
// monthly sales-volume exemption: a month is charged only when its
// sales volume exceeds the threshold and its profit is positive.
func volumeThresholdDarfs(threshold Money) DarfDeriver {
	return func(c *Calculator, year int) []Darf {
		volumes := c.monthlySalesVolume(year)
		profits := c.MonthlyProfitLoss(year)
		var darfs []Darf
		for _, month := range Months {
			if !volumes[month.Index].GreaterThan(threshold) {
				continue
			}
			if !profits[month.Index].IsPositive() {
				continue
			}
			darfs = append(darfs, newDarf(year, month, profits[month.Index].Mul(c.policy.Rate)))
		}
		return darfs
	}
}

// labeledAmounts attaches the month labels to a 12-value series and
// rounds it to cents.
func labeledAmounts(amounts [12]Money) []MonthlyAmount {
	labeled := make([]MonthlyAmount, len(Months))
	for _, month := range Months {
		labeled[month.Index] = MonthlyAmount{Month: month.Label, Amount: amounts[month.Index].Monetary()}
	}
	return labeled
}
