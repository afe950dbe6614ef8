// Package renderer turns tax figures into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	taxes "github.com/lslemes/brazilian-income-tax-helper"
)

// TaxReportMarkdown renders the full yearly tax report of one asset
// class to a markdown string. The class is a display label, e.g.
// "Stocks" or "Real-Estate Funds".
func TaxReportMarkdown(report *taxes.TaxReport, class string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Tax Report for %d\n\n", class, report.Year)

	b.WriteString(situationSection(report))
	b.WriteString(monthlySection(report))
	b.WriteString(DarfsMarkdown(report.Darfs))

	if report.SalesVolume != nil {
		fmt.Fprintf(&b, "\nAnnual exempt profit: **%s**\n", report.ExemptProfit)
	}
	return b.String()
}

// SituationMarkdown renders the year-over-year holdings comparison.
func SituationMarkdown(lines []taxes.SituationLine, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Situation at end of %d\n\n", year)
	b.WriteString(situationTable(lines, year))
	return b.String()
}

func situationSection(report *taxes.TaxReport) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Situation\n\n")
	b.WriteString(situationTable(report.Situation, report.Year))
	return b.String()
}

func situationTable(lines []taxes.SituationLine, year int) string {
	var b strings.Builder
	if len(lines) == 0 {
		fmt.Fprint(&b, "No holdings.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Ticker | Position | Value %d | Value %d |\n", year-1, year)
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, line := range lines {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			line.Ticker,
			line.Position,
			line.LastValue,
			line.CurrentValue,
		)
	}
	return b.String()
}

func monthlySection(report *taxes.TaxReport) string {
	var b strings.Builder
	fmt.Fprint(&b, "\n## Monthly Profit/Loss\n\n")
	if report.SalesVolume != nil {
		fmt.Fprintln(&b, "| Month | Profit/Loss | Sales Volume |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for i, entry := range report.MonthlyProfit {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", entry.Month, entry.Amount.SignedString(), report.SalesVolume[i].Amount)
		}
		return b.String()
	}
	fmt.Fprintln(&b, "| Month | Profit/Loss |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, entry := range report.MonthlyProfit {
		fmt.Fprintf(&b, "| %s | %s |\n", entry.Month, entry.Amount.SignedString())
	}
	return b.String()
}

// DarfsMarkdown renders the withholding charges of one year.
func DarfsMarkdown(darfs []taxes.Darf) string {
	var b strings.Builder
	fmt.Fprint(&b, "\n## DARF Charges\n\n")
	if len(darfs) == 0 {
		fmt.Fprint(&b, "No tax due.\n")
		return b.String()
	}
	fmt.Fprintln(&b, "| Year | Month | Amount |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, darf := range darfs {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", darf.Year, darf.Month, darf.Amount)
	}
	return b.String()
}

// TransactionsMarkdown renders the replayed trades, with the realized
// profit or loss on sells.
func TransactionsMarkdown(trades []taxes.Trade) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")
	if len(trades) == 0 {
		fmt.Fprint(&b, "No transactions.\n")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Side | Ticker | Class | Quantity | Price | Value | Profit/Loss |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|---:|")
	for _, trade := range trades {
		profit := ""
		if trade.ProfitLoss != nil {
			profit = trade.ProfitLoss.Monetary().SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			trade.When(),
			trade.Side(),
			trade.Asset().Ticker,
			trade.Asset().Class,
			trade.Quantity(),
			trade.Price(),
			trade.Value().Monetary(),
			profit,
		)
	}
	return b.String()
}
