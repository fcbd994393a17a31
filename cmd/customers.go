package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/smartviews/pos/renderer"
)

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list customers" }
func (*customersCmd) Usage() string {
	return `svpos customers

  Lists all customers. The walk-in customer always exists.
`
}

func (*customersCmd) SetFlags(f *flag.FlagSet) {}

func (*customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := OpenTerminal()
	printMarkdown(renderer.Customers(slices.Collect(t.Customers.All())))
	return subcommands.ExitSuccess
}

type addCustomerCmd struct {
	name string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "add a new customer" }
func (*addCustomerCmd) Usage() string {
	return `svpos add-customer -name <name>

  Adds a customer and persists the list. Sales snapshot the customer name
  at checkout; later renames do not rewrite history.
`
}

func (p *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Customer display name.")
}

func (p *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := OpenTerminal()
	cust, err := t.Customers.Add(p.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added customer %s (%s)\n", cust.Name, cust.ID)
	return subcommands.ExitSuccess
}
