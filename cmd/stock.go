package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dealership/renderer"
	"github.com/google/subcommands"
)

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "list the available stock" }
func (*stockCmd) Usage() string {
	return `dlr stock

  Lists the vehicles of the catalog that have no recorded sale, in catalog
  order, with their total value.
`
}

func (*stockCmd) SetFlags(f *flag.FlagSet) {}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Stock(ledger.AvailableStock()))
	return subcommands.ExitSuccess
}
