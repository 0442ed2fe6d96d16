package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dealership/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; exits early when invoked by the completion machinery.
	completion().Complete("dlr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"stock": {},
			"sell": {Flags: map[string]complete.Predictor{
				"plate":  predict.Something,
				"seller": predict.Something,
			}},
			"demo": {},
			"fmt": {Flags: map[string]complete.Predictor{
				"c": predict.Files("*.jsonl"),
			}},
			"topic": {},
		},
		Flags: map[string]complete.Predictor{
			"catalog": predict.Files("*.jsonl"),
		},
	}
}
