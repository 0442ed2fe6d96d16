package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dealership"
	"github.com/etnz/dealership/renderer"
	"github.com/google/subcommands"
)

type sellCmd struct {
	plate  string
	seller string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a vehicle" }
func (*sellCmd) Usage() string {
	return `dlr sell -plate <plate> -seller <seller_id>

  Records the sale of the vehicle with that plate by that seller, then prints
  the receipt and the updated stock. The ledger is in-memory only: the sale
  lasts for this invocation and is not written anywhere.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plate, "plate", "", "Plate of the vehicle to sell.")
	f.StringVar(&c.seller, "seller", "", "Id of the seller recording the sale.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.plate == "" || c.seller == "" {
		fmt.Fprintln(os.Stderr, "Error: both -plate and -seller are required.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sale, err := ledger.RecordSale(c.plate, c.seller)
	if err != nil {
		switch {
		case dealership.IsUnknownVehicle(err):
			fmt.Fprintf(os.Stderr, "Error: no vehicle with plate %q in the catalog.\n", c.plate)
		case dealership.IsAlreadySold(err):
			fmt.Fprintf(os.Stderr, "Error: vehicle %q is already sold.\n", c.plate)
		case dealership.IsUnknownSeller(err):
			fmt.Fprintf(os.Stderr, "Error: no seller with id %q in the catalog.\n", c.seller)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Receipt(ledger, sale))
	printMarkdown(renderer.Stock(ledger.AvailableStock()))
	return subcommands.ExitSuccess
}
