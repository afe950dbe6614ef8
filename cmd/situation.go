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

// situationCmd holds the flags for the 'situation' subcommand.
type situationCmd struct {
	file  string
	class string
	year  int
}

func (*situationCmd) Name() string     { return "situation" }
func (*situationCmd) Synopsis() string { return "year-end holdings valued at average cost" }
func (*situationCmd) Usage() string {
	return `birt situation -class <class> [-year <year>] [-f <file>]

  Lists the holdings of one asset class at the end of the year, valued
  at their weighted-average acquisition cost, next to the previous
  year's value.
`
}

func (c *situationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Transactions CSV file. Defaults to $"+envTransactionsFile+".")
	f.StringVar(&c.class, "class", "stocks", "Asset class (stocks, fii, etf, subscription, crypto)")
	f.IntVar(&c.year, "year", date.Today().Year()-1, "Year to report on")
}

func (c *situationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SituationMarkdown(calc.SituationReport(c.year), c.year))
	return subcommands.ExitSuccess
}
