// Package cmd implements the CLI application to compute Brazilian
// capital-gains tax reports.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	taxes "github.com/lslemes/brazilian-income-tax-helper"
)

// Commands lists the subcommands of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&situationCmd{},
	&darfsCmd{},
	&txCmd{},
}

// envTransactionsFile names the environment variable (or .env entry)
// that provides the default transactions file.
const envTransactionsFile = "BIRT_TRANSACTIONS"

// loadTransactions reads the transaction batch from the file given by
// the -f flag, falling back to the BIRT_TRANSACTIONS environment
// variable, optionally loaded from a .env file in the working
// directory.
func loadTransactions(file string) ([]taxes.Transaction, error) {
	if file == "" {
		// A missing .env is fine, the variable may be set in the environment.
		_ = godotenv.Load()
		file = os.Getenv(envTransactionsFile)
	}
	if file == "" {
		return nil, fmt.Errorf("no transactions file: pass -f or set %s", envTransactionsFile)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer f.Close()

	transactions, err := taxes.ImportTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("cannot import %q: %w", file, err)
	}
	return transactions, nil
}

// calculator is what the subcommands need from any category
// calculator.
type calculator interface {
	TaxReport(year int) *taxes.TaxReport
	SituationReport(year int) []taxes.SituationLine
	Trades() []taxes.Trade
}

// newCalculator builds the calculator for the given class keyword and
// returns it along with a display label for report titles.
func newCalculator(transactions []taxes.Transaction, class string) (calculator, string, error) {
	switch class {
	case "stocks":
		c, err := taxes.NewStockCalculator(transactions)
		return c, "Stocks", err
	case "fii":
		c, err := taxes.NewFiiCalculator(transactions)
		return c, "Real-Estate Funds", err
	case "etf":
		c, err := taxes.NewEtfCalculator(transactions)
		return c, "ETFs", err
	case "subscription":
		c, err := taxes.NewSubscriptionCalculator(transactions)
		return c, "Subscription Rights", err
	case "crypto":
		c, err := taxes.NewCryptoCalculator(transactions)
		return c, "Crypto Assets", err
	default:
		return nil, "", fmt.Errorf("unknown asset class %q (want stocks, fii, etf, subscription or crypto)", class)
	}
}

// printMarkdown renders the markdown report for the terminal. On any
// rendering trouble the raw markdown is still printed.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
