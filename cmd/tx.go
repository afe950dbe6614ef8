package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lslemes/brazilian-income-tax-helper/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	file  string
	class string
	year  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list replayed transactions" }
func (*txCmd) Usage() string {
	return `birt tx -class <class> [-year <year>] [-f <file>]

  Lists the transactions of one asset class in replay order, with the
  realized profit/loss attached to each sell. Use -year 0 for all
  years.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Transactions CSV file. Defaults to $"+envTransactionsFile+".")
	f.StringVar(&c.class, "class", "stocks", "Asset class (stocks, fii, etf, subscription, crypto)")
	f.IntVar(&c.year, "year", 0, "Restrict to one year (0 for all)")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	trades := calc.Trades()
	if c.year != 0 {
		filtered := trades[:0:0]
		for _, trade := range trades {
			if trade.When().Year() == c.year {
				filtered = append(filtered, trade)
			}
		}
		trades = filtered
	}
	printMarkdown(renderer.TransactionsMarkdown(trades))
	return subcommands.ExitSuccess
}
