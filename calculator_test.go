package taxes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestCalculator(t *testing.T, transactions []Transaction, policy Policy) *Calculator {
	t.Helper()
	c, err := NewCalculator(transactions, policy)
	if err != nil {
		t.Fatalf("NewCalculator() failed: %v", err)
	}
	return c
}

func TestCalculator_FiltersToItsClasses(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2021-01-05", Buy, Stock, "ABEV3", 10, 10),
		tx(t, "2021-01-05", Buy, Fii, "HGLG11", 5, 100),
	}, Policy{Classes: []AssetClass{Fii}, Rate: Q(0.2)})

	if got := len(c.Trades()); got != 1 {
		t.Fatalf("Trades() = %d entries, want 1", got)
	}
	if got := c.Trades()[0].Asset().Ticker; got != "HGLG11" {
		t.Errorf("Trades()[0] = %s, want HGLG11", got)
	}
}

func TestCalculator_MonthlyProfitLoss(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2020-11-10", Buy, Stock, "ABEV3", 100, 10),
		tx(t, "2021-01-15", Sell, Stock, "ABEV3", 20, 12), // +40 in January
		tx(t, "2021-01-20", Sell, Stock, "ABEV3", 10, 9),  // -10 in January
		tx(t, "2021-03-10", Sell, Stock, "ABEV3", 10, 15), // +50 in March
	}, Policy{Classes: []AssetClass{Stock}, Rate: Q(0.15)})

	profits := c.MonthlyProfitLoss(2021)
	assertMoney(t, "January", profits[0], 30)
	assertMoney(t, "March", profits[2], 50)
	for _, i := range []int{1, 3, 4, 5, 6, 7, 8, 9, 10, 11} {
		if !profits[i].IsZero() {
			t.Errorf("%s profit = %s, want 0", Months[i].Label, profits[i])
		}
	}
	// Buys contribute nothing in any year.
	for _, p := range c.MonthlyProfitLoss(2020) {
		if !p.IsZero() {
			t.Errorf("2020 profit = %s, want 0 (buys only)", p)
		}
	}
}

func TestCalculator_Situation(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2020-02-05", Buy, Fii, "HGLG11", 5, 100),
		tx(t, "2020-03-05", Buy, Fii, "XPLG11", 7, 131.87),
	}, Policy{Classes: []AssetClass{Fii}, Rate: Q(0.2)})

	want := map[string]Situation{
		"HGLG11": {Position: Q(5), Value: M(500)},
		"XPLG11": {Position: Q(7), Value: M(923.09)},
	}
	if diff := cmp.Diff(want, c.Situation(2020), cmpMoney); diff != "" {
		t.Errorf("Situation(2020) mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculator_SituationForUnknownYearIsEmpty(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2020-02-05", Buy, Fii, "HGLG11", 5, 100),
	}, Policy{Classes: []AssetClass{Fii}, Rate: Q(0.2)})

	if got := c.Situation(1999); len(got) != 0 {
		t.Errorf("Situation(1999) = %v, want empty", got)
	}
	if got := c.Situation(2050); len(got) != 0 {
		t.Errorf("Situation(2050) = %v, want empty", got)
	}
}

func TestCalculator_SituationCarryForward(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2019-02-05", Buy, Fii, "KNRI11", 5, 179.99),
		tx(t, "2022-02-05", Buy, Fii, "KNRI11", 1, 100),
	}, Policy{Classes: []AssetClass{Fii}, Rate: Q(0.2)})

	// 2020 and 2021 saw no activity: deep-equal to 2019.
	for _, year := range []int{2020, 2021} {
		if diff := cmp.Diff(c.Situation(2019), c.Situation(year), cmpMoney); diff != "" {
			t.Errorf("Situation(%d) differs from Situation(2019) (-2019 +%d):\n%s", year, year, diff)
		}
	}
}

func TestCalculator_SituationReport(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2020-02-05", Buy, Stock, "WEGE3", 21, 32.70),
		tx(t, "2020-03-05", Buy, Stock, "ABEV3", 37, 18.31),
		tx(t, "2021-04-10", Sell, Stock, "WEGE3", 21, 40), // fully divested in 2021
		tx(t, "2021-05-10", Buy, Stock, "MDIA3", 100, 39.4797),
	}, Policy{Classes: []AssetClass{Stock}, Rate: Q(0.15)})

	want := []SituationLine{
		{Ticker: "ABEV3", Position: Q(37), LastValue: M(677.47), CurrentValue: M(677.47)},
		{Ticker: "MDIA3", Position: Q(100), LastValue: M(0), CurrentValue: M(3947.97)},
		{Ticker: "WEGE3", Position: Q(0), LastValue: M(686.70), CurrentValue: M(0)},
	}
	if diff := cmp.Diff(want, c.SituationReport(2021), cmpMoney); diff != "" {
		t.Errorf("SituationReport(2021) mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculator_DefaultDarfs(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2020-11-10", Buy, Fii, "HGLG11", 100, 100),
		tx(t, "2021-01-15", Sell, Fii, "HGLG11", 10, 110), // +100 in January
		tx(t, "2021-02-15", Sell, Fii, "HGLG11", 10, 90),  // -100 in February
		tx(t, "2021-03-15", Sell, Fii, "HGLG11", 10, 100), // exactly zero in March
	}, Policy{Classes: []AssetClass{Fii}, Rate: Q(0.2)})

	want := []Darf{
		{Year: 2021, Month: "January", Amount: M(20)},
	}
	report := c.TaxReport(2021)
	if diff := cmp.Diff(want, report.Darfs, cmpMoney); diff != "" {
		t.Errorf("Darfs mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculator_TaxReport(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2020-11-10", Buy, Fii, "HGLG11", 10, 100),
		tx(t, "2021-06-15", Sell, Fii, "HGLG11", 5, 120.333),
	}, Policy{Classes: []AssetClass{Fii}, Rate: Q(0.2)})

	report := c.TaxReport(2021)
	if report.Year != 2021 {
		t.Errorf("Year = %d, want 2021", report.Year)
	}
	if len(report.MonthlyProfit) != 12 {
		t.Fatalf("MonthlyProfit has %d entries, want 12", len(report.MonthlyProfit))
	}
	if report.MonthlyProfit[0].Month != "January" || report.MonthlyProfit[11].Month != "December" {
		t.Errorf("month labels out of order: %s ... %s", report.MonthlyProfit[0].Month, report.MonthlyProfit[11].Month)
	}
	// 5 * (120.333 - 100) = 101.665, rounded half up to 101.67.
	assertMoney(t, "June profit", report.MonthlyProfit[5].Amount, 101.67)
	if report.SalesVolume != nil {
		t.Error("SalesVolume is set for a class without a volume exemption")
	}
	if len(report.Situation) != 1 || report.Situation[0].Ticker != "HGLG11" {
		t.Errorf("Situation = %v, want a single HGLG11 line", report.Situation)
	}
}

func TestCalculator_ProfitByTicker(t *testing.T) {
	c := newTestCalculator(t, []Transaction{
		tx(t, "2020-05-10", Buy, Stock, "ABEV3", 100, 10),
		tx(t, "2020-05-10", Buy, Stock, "WEGE3", 50, 30),
		tx(t, "2021-02-15", Sell, Stock, "ABEV3", 20, 12), // +40
		tx(t, "2021-07-20", Sell, Stock, "ABEV3", 10, 11), // +10
		tx(t, "2021-08-05", Sell, Stock, "WEGE3", 10, 25), // -50
	}, Policy{Classes: []AssetClass{Stock}, Rate: Q(0.15)})

	want := map[string]Money{
		"ABEV3": M(50),
		"WEGE3": M(-50),
	}
	if diff := cmp.Diff(want, c.ProfitByTicker(2021), cmpMoney); diff != "" {
		t.Errorf("ProfitByTicker(2021) mismatch (-want +got):\n%s", diff)
	}
	if got := c.ProfitByTicker(2020); len(got) != 0 {
		t.Errorf("ProfitByTicker(2020) = %v, want empty (buys only)", got)
	}
}
