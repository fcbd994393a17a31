package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/smartviews/pos"
)

type setPriceCmd struct {
	sku   string
	price string
}

func (*setPriceCmd) Name() string     { return "set-price" }
func (*setPriceCmd) Synopsis() string { return "change a product's unit price" }
func (*setPriceCmd) Usage() string {
	return `svpos set-price -sku <sku> -price <price>

  Changes a product's unit price and persists the catalog. Recorded sales
  keep the price they were made at.
`
}

func (p *setPriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.sku, "sku", "", "SKU of the product to reprice.")
	f.StringVar(&p.price, "price", "", "New unit price in major units.")
}

func (p *setPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", p.price, err)
		return subcommands.ExitUsageError
	}

	t := OpenTerminal()
	product, ok := t.Catalog.BySKU(p.sku)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no product with SKU %q\n", p.sku)
		return subcommands.ExitFailure
	}
	if err := t.Catalog.SetPrice(product.ID, pos.M(price, "")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	product, _ = t.Catalog.Product(product.ID)
	fmt.Printf("Price of %s (%s) is now %s\n", product.Name, product.SKU, product.Price)
	return subcommands.ExitSuccess
}
