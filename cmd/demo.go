package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/dealership"
	"github.com/etnz/dealership/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the demonstration sequence" }
func (*demoCmd) Usage() string {
	return `dlr demo

  Runs the demonstration sequence against the built-in reference catalog:
  prints the initial stock, records the sale of the VW Golf by Marina, then
  prints the updated stock, all sales, and Marina's sales. Ignores -catalog.
`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := dealership.DecodeCatalog(strings.NewReader(referenceCatalog))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	applyTestingClock(ledger)

	md, err := demoMarkdown(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// demoMarkdown runs the demonstration sequence on the given ledger and
// returns the whole report as one markdown document.
func demoMarkdown(ledger *dealership.Ledger) (string, error) {
	var b strings.Builder

	b.WriteString(renderer.Stock(ledger.AvailableStock()))
	b.WriteString("\n")

	sale, err := ledger.RecordSale("CC-20-DD", "S001")
	if err != nil {
		return "", fmt.Errorf("demo sale failed: %w", err)
	}
	b.WriteString(renderer.Receipt(ledger, sale))
	b.WriteString("\n")

	b.WriteString(renderer.Stock(ledger.AvailableStock()))
	b.WriteString("\n")

	b.WriteString(renderer.Sales(ledger, ledger.Sales()))
	b.WriteString("\n")

	seller := ledger.FindSeller(sale.SellerID)
	b.WriteString(renderer.SellerSales(ledger, *seller, ledger.SalesBySeller(sale.SellerID)))

	return b.String(), nil
}
