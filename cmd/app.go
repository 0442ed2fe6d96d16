// Package cmd implements the CLI application over the dealership ledger.
// A main package calls Register() on a commander and Execute() on the
// user-selected command.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dealership"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var catalogFile = flag.String("catalog", "", "Path to a JSONL catalog file. Uses the built-in reference catalog when empty.")

// Commands lists the dlr subcommands in registration order.
var Commands = []subcommands.Command{
	&stockCmd{},
	&sellCmd{},
	&demoCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// referenceCatalog is the built-in demonstration catalog, used whenever no
// catalog file is given.
const referenceCatalog = `{"record":"vehicle","plate":"AA-10-BB","model":"Fiat Panda","color":"White","price":7500,"currency":"EUR"}
{"record":"vehicle","plate":"CC-20-DD","model":"VW Golf","color":"Black","price":14500,"currency":"EUR"}
{"record":"vehicle","plate":"EE-30-FF","model":"Renault Clio","color":"Blue","price":9800,"currency":"EUR"}
{"record":"seller","id":"S001","name":"Marina"}
{"record":"seller","id":"S002","name":"Carlos"}
`

// openLedger builds the session ledger from the -catalog file, or from the
// built-in reference catalog when the flag is empty. The ledger is in-memory
// only; nothing a command records outlives the process.
func openLedger() (*dealership.Ledger, error) {
	var l *dealership.Ledger
	if *catalogFile == "" {
		var err error
		l, err = dealership.DecodeCatalog(strings.NewReader(referenceCatalog))
		if err != nil {
			return nil, fmt.Errorf("invalid built-in catalog: %w", err)
		}
	} else {
		f, err := os.Open(*catalogFile)
		if err != nil {
			return nil, fmt.Errorf("could not open catalog %q: %w", *catalogFile, err)
		}
		defer f.Close()
		l, err = dealership.DecodeCatalog(f)
		if err != nil {
			return nil, fmt.Errorf("could not load catalog %q: %w", *catalogFile, err)
		}
	}
	applyTestingClock(l)
	return l, nil
}

// applyTestingClock freezes the ledger clock when DEALERSHIP_TESTING_NOW is
// set ("2006-01-02 15:04:05"), so documented scenarios are reproducible.
func applyTestingClock(l *dealership.Ledger) {
	v := os.Getenv("DEALERSHIP_TESTING_NOW")
	if v == "" {
		return
	}
	at, err := time.ParseInLocation(time.DateTime, v, time.Local)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring invalid DEALERSHIP_TESTING_NOW %q: %v\n", v, err)
		return
	}
	l.SetClock(func() time.Time { return at })
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
