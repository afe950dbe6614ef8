package taxes

// Real-estate funds (FII): 20% on any month with positive profit, no
// exemption threshold.
var fiiDarfRate = Q(0.2)

// FiiCalculator computes the yearly tax figures for real-estate fund
// trades.
type FiiCalculator struct {
	*Calculator
}

func NewFiiCalculator(transactions []Transaction) (*FiiCalculator, error) {
	c, err := NewCalculator(transactions, Policy{
		Classes: []AssetClass{Fii},
		Rate:    fiiDarfRate,
	})
	if err != nil {
		return nil, err
	}
	return &FiiCalculator{Calculator: c}, nil
}
