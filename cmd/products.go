package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/google/subcommands"
	"github.com/smartviews/pos/renderer"
)

type productsCmd struct {
	query string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list products in the catalog" }
func (*productsCmd) Usage() string {
	return `svpos products [-q <query>]

  Lists catalog products. The query matches name, SKU and category,
  case-insensitively. Products with zero stock are marked out of stock.
`
}

func (p *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Filter products by name, SKU or category.")
}

func (p *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := OpenTerminal()
	products := slices.Collect(t.Catalog.Search(p.query))
	printMarkdown(renderer.Products(products))
	return subcommands.ExitSuccess
}
