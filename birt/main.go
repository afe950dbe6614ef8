// Command birt computes Brazilian capital-gains tax reports from a
// brokerage transactions CSV.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/lslemes/brazilian-income-tax-helper/cmd"
)

// completion describes the CLI for shell completion.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"report":    reportCompletion(),
		"situation": reportLike(),
		"darfs":     reportLike(),
		"tx":        reportLike(),
	},
}

func reportCompletion() *complete.Command {
	c := reportLike()
	c.Flags["json"] = predict.Nothing
	return c
}

func reportLike() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":     predict.Files("*.csv"),
			"class": predict.Set{"stocks", "fii", "etf", "subscription", "crypto"},
			"year":  predict.Nothing,
		},
	}
}

func main() {
	completion.Complete("birt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
