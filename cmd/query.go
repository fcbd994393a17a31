package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/smartviews/pos"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query over a stored collection" }
func (*queryCmd) Usage() string {
	return `svpos query <collection> <jsonpath>

  Runs a JSONPath expression against the raw JSON of a stored collection.
  Collections are 'products', 'customers' and 'sales'.

  Example: svpos query sales '$[?(@.paymentMethod == "cash")].total'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

// collectionKey maps the user-facing collection name to its store key.
func collectionKey(name string) (string, bool) {
	switch name {
	case "products":
		return pos.KeyProducts, true
	case "customers":
		return pos.KeyCustomers, true
	case "sales":
		return pos.KeySales, true
	}
	return "", false
}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a collection name and a JSONPath expression")
		return subcommands.ExitUsageError
	}
	key, ok := collectionKey(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown collection %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	path := f.Arg(1)

	data, err := OpenStore().Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read collection %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error: collection %q is not valid JSON: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot evaluate %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
