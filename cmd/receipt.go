package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartviews/pos/renderer"
)

type receiptCmd struct {
	html string
}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "reprint the receipt of a recorded sale" }
func (*receiptCmd) Usage() string {
	return `svpos receipt [-html <file>] <receipt_id>

  Renders the receipt of a recorded sale. With -html the receipt is also
  written as a standalone printable HTML document.
`
}

func (p *receiptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.html, "html", "", "Also write the receipt to this file as printable HTML.")
}

func (p *receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one receipt id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	t := OpenTerminal()
	sale, ok := t.Sales.Find(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no sale with receipt id %q\n", id)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Receipt(sale))

	if p.html != "" {
		doc, err := renderer.ReceiptHTML(sale)
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
