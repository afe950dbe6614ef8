package taxes

// Subscription rights: 15% on any month with positive profit, no
// exemption threshold.
var subscriptionDarfRate = Q(0.15)

// SubscriptionCalculator computes the yearly tax figures for
// subscription-right trades.
type SubscriptionCalculator struct {
	*Calculator
}

func NewSubscriptionCalculator(transactions []Transaction) (*SubscriptionCalculator, error) {
	c, err := NewCalculator(transactions, Policy{
		Classes: []AssetClass{Subscription},
		Rate:    subscriptionDarfRate,
	})
	if err != nil {
		return nil, err
	}
	return &SubscriptionCalculator{Calculator: c}, nil
}
