package taxes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lslemes/brazilian-income-tax-helper/date"
)

// tx builds a valid transaction for tests, failing the test on a
// construction error.
func tx(t *testing.T, day string, side TradeSide, class AssetClass, ticker string, quantity, price float64) Transaction {
	t.Helper()
	transaction, err := NewTransaction(date.MustParse(day), side, Asset{Ticker: ticker, Class: class}, Q(quantity), M(price))
	if err != nil {
		t.Fatalf("NewTransaction(%s %s %s) failed: %v", day, side, ticker, err)
	}
	return transaction
}

// cmpMoney lets go-cmp compare Money and Quantity values exactly.
var cmpMoney = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
}

// assertMoney fails the test when got differs from want.
func assertMoney(t *testing.T, label string, got Money, want float64) {
	t.Helper()
	if !got.Equal(M(want)) {
		t.Errorf("%s = %s, want %s", label, got, M(want))
	}
}
