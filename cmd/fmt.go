package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dealership"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	catalog string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats a catalog file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `dlr fmt -c <catalog_file>

  Validates and formats a catalog file. This command reads all records,
  validates them, and writes them back in canonical JSONL form: vehicles
  first, then sellers, each in catalog order.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.catalog, "c", "", "Catalog file to format.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.catalog == "" {
		fmt.Fprintln(os.Stderr, "Error: -c <catalog_file> is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open catalog %q: %v\n", c.catalog, err)
		return subcommands.ExitFailure
	}
	ledger, err := dealership.DecodeCatalog(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid catalog %q: %v\n", c.catalog, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write catalog %q: %v\n", c.catalog, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := dealership.EncodeCatalog(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not encode catalog %q: %v\n", c.catalog, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted catalog %q.\n", c.catalog)
	return subcommands.ExitSuccess
}
