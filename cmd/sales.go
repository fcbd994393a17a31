package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/google/subcommands"
	"github.com/smartviews/pos/renderer"
)

type salesCmd struct {
	head int
	tail int
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list recorded sales" }
func (*salesCmd) Usage() string {
	return `svpos sales [-head <n> | -tail <n>]

  Lists recorded sales, most recent first. Use -head to keep only the n
  most recent sales, -tail to keep only the n oldest.
`
}

func (p *salesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Keep only the 'n' most recent sales.")
	f.IntVar(&p.tail, "tail", 0, "Keep only the 'n' oldest sales.")
}

func (p *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := OpenTerminal()
	sales := slices.Collect(t.Sales.Sales())
	if p.head > 0 && p.head < len(sales) {
		sales = sales[:p.head]
	}
	if p.tail > 0 && p.tail < len(sales) {
		sales = sales[len(sales)-p.tail:]
	}
	printMarkdown(renderer.Sales(sales))
	return subcommands.ExitSuccess
}
