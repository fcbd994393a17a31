package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/smartviews/pos"
)

// Sales renders a sale listing, most recent first.
func Sales(sales []pos.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales")

	if len(sales) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Receipt", "Date", "Customer", "Payment", "Total", "Items"},
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.ID,
			s.Date.Format("2006-01-02 15:04:05"),
			s.CustomerName,
			string(s.PaymentMethod),
			s.Total.String(),
			s.ItemsSummary(),
		})
	}
	doc.Table(table)

	return doc.String()
}
