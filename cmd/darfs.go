package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lslemes/brazilian-income-tax-helper/date"
	"github.com/lslemes/brazilian-income-tax-helper/renderer"
)

// darfsCmd holds the flags for the 'darfs' subcommand.
type darfsCmd struct {
	file  string
	class string
	year  int
}

func (*darfsCmd) Name() string     { return "darfs" }
func (*darfsCmd) Synopsis() string { return "monthly DARF withholding charges" }
func (*darfsCmd) Usage() string {
	return `birt darfs -class <class> [-year <year>] [-f <file>]

  Lists the DARF charges due for one asset class and year, applying the
  class's rate and exemption rules.
`
}

func (c *darfsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Transactions CSV file. Defaults to $"+envTransactionsFile+".")
	f.StringVar(&c.class, "class", "stocks", "Asset class (stocks, fii, etf, subscription, crypto)")
	f.IntVar(&c.year, "year", date.Today().Year()-1, "Year to report on")
}

func (c *darfsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := loadTransactions(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	calc, _, err := newCalculator(transactions, c.class)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.DarfsMarkdown(calc.TaxReport(c.year).Darfs))
	return subcommands.ExitSuccess
}
