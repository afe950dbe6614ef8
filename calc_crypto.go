package taxes

// Crypto assets: 15%, with a higher monthly sales-volume exemption
// than stocks, R$35.000,00.
var (
	cryptoDarfRate           = Q(0.15)
	cryptoExemptionThreshold = M(35000)
)

// CryptoCalculator computes the yearly tax figures for crypto trades.
type CryptoCalculator struct {
	*Calculator
}

func NewCryptoCalculator(transactions []Transaction) (*CryptoCalculator, error) {
	c, err := NewCalculator(transactions, Policy{
		Classes: []AssetClass{Crypto},
		Rate:    cryptoDarfRate,
		Darfs:   volumeThresholdDarfs(cryptoExemptionThreshold),
	})
	if err != nil {
		return nil, err
	}
	return &CryptoCalculator{Calculator: c}, nil
}

// MonthlySalesVolume returns the notional value sold per calendar
// month of the year.
func (c *CryptoCalculator) MonthlySalesVolume(year int) [12]Money {
	return c.monthlySalesVolume(year)
}

// AnnualExemptProfit returns the year's tax-exempt profit under the
// crypto volume threshold.
func (c *CryptoCalculator) AnnualExemptProfit(year int) Money {
	return c.annualExemptProfit(year, cryptoExemptionThreshold)
}

// TaxReport extends the base report with the monthly sales-volume
// series and the annual exempt profit.
func (c *CryptoCalculator) TaxReport(year int) *TaxReport {
	report := c.Calculator.TaxReport(year)
	report.SalesVolume = labeledAmounts(c.monthlySalesVolume(year))
	report.ExemptProfit = c.AnnualExemptProfit(year).Monetary()
	return report
}
