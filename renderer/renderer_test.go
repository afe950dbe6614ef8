package renderer

import (
	"strings"
	"testing"

	taxes "github.com/lslemes/brazilian-income-tax-helper"
	"github.com/lslemes/brazilian-income-tax-helper/date"
)

func mustTx(t *testing.T, day string, side taxes.TradeSide, class taxes.AssetClass, ticker string, quantity, price float64) taxes.Transaction {
	t.Helper()
	transaction, err := taxes.NewTransaction(date.MustParse(day), side, taxes.Asset{Ticker: ticker, Class: class}, taxes.Q(quantity), taxes.M(price))
	if err != nil {
		t.Fatalf("NewTransaction() failed: %v", err)
	}
	return transaction
}

func stockReport(t *testing.T) *taxes.TaxReport {
	t.Helper()
	c, err := taxes.NewStockCalculator([]taxes.Transaction{
		mustTx(t, "2020-06-10", taxes.Buy, taxes.Stock, "PSSA3", 100, 240),
		mustTx(t, "2021-01-15", taxes.Sell, taxes.Stock, "PSSA3", 100, 250),
	})
	if err != nil {
		t.Fatalf("NewStockCalculator() failed: %v", err)
	}
	return c.TaxReport(2021)
}

func TestTaxReportMarkdown(t *testing.T) {
	md := TaxReportMarkdown(stockReport(t), "Stocks")

	for _, want := range []string{
		"# Stocks Tax Report for 2021",
		"## Situation",
		"## Monthly Profit/Loss",
		"## DARF Charges",
		"| 2021 | January |",
		"Sales Volume",
		"Annual exempt profit",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("TaxReportMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestDarfsMarkdown_Empty(t *testing.T) {
	md := DarfsMarkdown(nil)
	if !strings.Contains(md, "No tax due.") {
		t.Errorf("DarfsMarkdown(nil) missing the empty notice:\n%s", md)
	}
}

func TestSituationMarkdown(t *testing.T) {
	c, err := taxes.NewFiiCalculator([]taxes.Transaction{
		mustTx(t, "2020-02-05", taxes.Buy, taxes.Fii, "HGLG11", 5, 100),
	})
	if err != nil {
		t.Fatalf("NewFiiCalculator() failed: %v", err)
	}
	md := SituationMarkdown(c.SituationReport(2020), 2020)
	if !strings.Contains(md, "HGLG11") {
		t.Errorf("SituationMarkdown() missing the HGLG11 row:\n%s", md)
	}
	if !strings.Contains(md, "Value 2019") || !strings.Contains(md, "Value 2020") {
		t.Errorf("SituationMarkdown() missing year columns:\n%s", md)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	c, err := taxes.NewStockCalculator([]taxes.Transaction{
		mustTx(t, "2021-01-05", taxes.Buy, taxes.Stock, "ABEV3", 10, 15),
		mustTx(t, "2021-02-05", taxes.Sell, taxes.Stock, "ABEV3", 10, 16),
	})
	if err != nil {
		t.Fatalf("NewStockCalculator() failed: %v", err)
	}
	md := TransactionsMarkdown(c.Trades())
	if !strings.Contains(md, "| 2021-01-05 | buy | ABEV3 |") {
		t.Errorf("TransactionsMarkdown() missing the buy row:\n%s", md)
	}
	// The sell shows its realized profit: 10 * (16 - 15) = +R$10,00.
	if !strings.Contains(md, "+R$10,00") {
		t.Errorf("TransactionsMarkdown() missing the sell profit:\n%s", md)
	}
}

func TestTransactionsMarkdown_Empty(t *testing.T) {
	if md := TransactionsMarkdown(nil); !strings.Contains(md, "No transactions.") {
		t.Errorf("TransactionsMarkdown(nil) missing the empty notice:\n%s", md)
	}
}
