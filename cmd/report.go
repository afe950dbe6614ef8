package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lslemes/brazilian-income-tax-helper/date"
	"github.com/lslemes/brazilian-income-tax-helper/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	file  string
	class string
	year  int
	json  bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full yearly tax report for one asset class" }
func (*reportCmd) Usage() string {
	return `birt report -class <class> [-year <year>] [-f <file>]

  Computes the yearly tax report for one asset class: year-over-year
  holdings situation, monthly realized profit/loss, DARF charges and,
  for stocks and crypto, sales volume and annual exempt profit.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Transactions CSV file. Defaults to $"+envTransactionsFile+".")
	f.StringVar(&c.class, "class", "stocks", "Asset class (stocks, fii, etf, subscription, crypto)")
	f.IntVar(&c.year, "year", date.Today().Year()-1, "Tax year to report on")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON instead of markdown")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := loadTransactions(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	calc, label, err := newCalculator(transactions, c.class)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report := calc.TaxReport(c.year)
	if c.json {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TaxReportMarkdown(report, label))
	return subcommands.ExitSuccess
}
