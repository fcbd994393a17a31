package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartviews/pos/renderer"
)

type revenueCmd struct {
	days int
}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "show daily revenue for the last days" }
func (*revenueCmd) Usage() string {
	return `svpos revenue [-days <n>]

  Shows one revenue bucket per calendar day for the last n days, ending
  today. Days without sales show a zero total.
`
}

func (p *revenueCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.days, "days", 7, "Number of trailing days to bucket, today included.")
}

func (p *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.days < 1 {
		fmt.Fprintln(os.Stderr, "Error: -days must be at least 1")
		return subcommands.ExitUsageError
	}
	t := OpenTerminal()
	printMarkdown(renderer.Revenue(t.Sales.RecentRevenue(p.days)))
	return subcommands.ExitSuccess
}
