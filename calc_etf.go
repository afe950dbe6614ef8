package taxes

// ETFs: 15%, charged only on profit from the variable-income subtype.
// Fixed-income ETF profit is taxed at source and never generates a
// charge here, whatever its sign.
var etfDarfRate = Q(0.15)

// EtfCalculator computes the yearly tax figures for ETF trades, both
// subtypes combined.
type EtfCalculator struct {
	*Calculator
}

func NewEtfCalculator(transactions []Transaction) (*EtfCalculator, error) {
	c, err := NewCalculator(transactions, Policy{
		Classes: []AssetClass{FixedIncomeEtf, VariableIncomeEtf},
		Rate:    etfDarfRate,
		Darfs:   variableIncomeDarfs,
	})
	if err != nil {
		return nil, err
	}
	return &EtfCalculator{Calculator: c}, nil
}

// variableIncomeDarfs charges the rate on months whose variable-income
// ETF profit is strictly positive.
func variableIncomeDarfs(c *Calculator, year int) []Darf {
	profits := c.monthlyProfit(year, func(t Trade) bool {
		return t.Asset().Class == VariableIncomeEtf
	})
	var darfs []Darf
	for _, month := range Months {
		profit := profits[month.Index]
		if !profit.IsPositive() {
			continue
		}
		darfs = append(darfs, newDarf(year, month, profit.Mul(c.policy.Rate)))
	}
	return darfs
}
