package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartviews/pos"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the sales ledger as CSV" }
func (*exportCmd) Usage() string {
	return `svpos export [-o <file>]

  Writes the whole sales ledger as CSV, one row per sale, most recent
  first. No file is written when there are no sales. The default file name
  carries today's date.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.out, "o", "", "Output file. Defaults to a dated name in the current directory.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := OpenTerminal()
	if t.Sales.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No sales to export.")
		return subcommands.ExitSuccess
	}

	name := p.out
	if name == "" {
		name = pos.ExportFilename(pos.Today())
	}
	file, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := t.Sales.ExportCSV(file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d sales to %s\n", t.Sales.Len(), name)
	return subcommands.ExitSuccess
}
