package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	sku string
	n   int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "increase a product's stock" }
func (*restockCmd) Usage() string {
	return `svpos restock -sku <sku> -n <units>

  Adds units to a product's stock and persists the catalog.
`
}

func (p *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.sku, "sku", "", "SKU of the product to restock.")
	f.IntVar(&p.n, "n", 0, "Number of units to add.")
}

func (p *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := OpenTerminal()
	product, ok := t.Catalog.BySKU(p.sku)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no product with SKU %q\n", p.sku)
		return subcommands.ExitFailure
	}
	if err := t.Catalog.Restock(product.ID, p.n); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	product, _ = t.Catalog.Product(product.ID)
	fmt.Printf("Restocked %s (%s): stock is now %d\n", product.Name, product.SKU, product.Stock)
	return subcommands.ExitSuccess
}
