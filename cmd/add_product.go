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

type addProductCmd struct {
	name     string
	sku      string
	price    string
	stock    int
	category string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addProductCmd) Usage() string {
	return `svpos add-product -name <name> -sku <sku> -price <price> [-stock <n>] [-category <label>]

  Adds a product to the catalog and persists it.
`
}

func (p *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Product name.")
	f.StringVar(&p.sku, "sku", "", "Stock keeping unit, unique in practice.")
	f.StringVar(&p.price, "price", "", "Unit price in major units, e.g. 125000.")
	f.IntVar(&p.stock, "stock", 0, "Initial stock quantity.")
	f.StringVar(&p.category, "category", "", "Category label.")
}

func (p *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.sku == "" || p.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -sku and -price are required.")
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", p.price, err)
		return subcommands.ExitUsageError
	}

	t := OpenTerminal()
	product := pos.Product{
		Name:     p.name,
		SKU:      p.sku,
		Price:    pos.M(price, ""),
		Stock:    p.stock,
		Category: p.category,
	}
	if err := t.Catalog.Add(product); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s (%s) to the catalog\n", p.name, p.sku)
	return subcommands.ExitSuccess
}
