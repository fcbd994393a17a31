package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/smartviews/pos"
	"github.com/smartviews/pos/renderer"
)

// itemsFlag collects repeated -i flags of the form SKU or SKU:QTY.
type itemsFlag []string

func (i *itemsFlag) String() string { return strings.Join(*i, ",") }

func (i *itemsFlag) Set(value string) error {
	*i = append(*i, value)
	return nil
}

type sellCmd struct {
	items    itemsFlag
	customer string
	payment  string
	html     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "check out a cart against the catalog" }
func (*sellCmd) Usage() string {
	return `svpos sell -i <sku>[:<qty>] [-i ...] [-c <customer_id>] [-pay cash|pos|transfer] [-html <file>]

  Builds a cart from the -i flags and checks it out: stock is validated for
  every line first, and either the whole sale goes through or nothing
  changes. The receipt is printed on success; -html also writes it as a
  standalone printable document.
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&p.items, "i", "Cart line as SKU or SKU:QTY. Repeatable; repeated SKUs accumulate.")
	f.StringVar(&p.customer, "c", "", "Customer id. Defaults to the walk-in customer.")
	f.StringVar(&p.payment, "pay", "cash", "Payment method (cash, pos, transfer).")
	f.StringVar(&p.html, "html", "", "Also write the receipt to this file as printable HTML.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := pos.ParsePaymentMethod(p.payment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t := OpenTerminal()
	cart := pos.NewCart()
	for _, item := range p.items {
		sku, qty, err := parseItem(item)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		product, ok := t.Catalog.BySKU(sku)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no product with SKU %q\n", sku)
			return subcommands.ExitFailure
		}
		for range qty {
			cart.Add(product)
		}
	}

	sale, err := t.Checkout(cart, p.customer, method)
	if err != nil {
		var stockErr *pos.InsufficientStockError
		if errors.As(err, &stockErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", stockErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	if sale == nil {
		// Empty cart: checking out nothing is not an error.
		fmt.Fprintln(os.Stderr, "Cart is empty, nothing to sell.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Receipt(*sale))

	if p.html != "" {
		doc, err := renderer.ReceiptHTML(*sale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(p.html, []byte(doc), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot write receipt %q: %v\n", p.html, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote printable receipt to %s\n", p.html)
	}
	return subcommands.ExitSuccess
}

// parseItem splits a SKU or SKU:QTY cart line argument.
func parseItem(s string) (sku string, qty int, err error) {
	sku, qtyStr, found := strings.Cut(s, ":")
	if sku == "" {
		return "", 0, fmt.Errorf("invalid cart line %q: empty SKU", s)
	}
	if !found {
		return sku, 1, nil
	}
	qty, err = strconv.Atoi(qtyStr)
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("invalid cart line %q: quantity must be a positive integer", s)
	}
	return sku, qty, nil
}
