package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/smartviews/pos"
)

// Products renders a product listing. Products with zero stock are marked
// out of stock: they cannot be added to a cart.
func Products(products []pos.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")

	table := md.TableSet{
		Header: []string{"SKU", "Name", "Category", "Price", "Stock"},
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
	}
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.Stock)
		if !p.Available() {
			stock = "out of stock"
		}
		table.Rows = append(table.Rows, []string{p.SKU, p.Name, p.Category, p.Price.String(), stock})
	}
	doc.Table(table)

	return doc.String()
}

// Customers renders the customer listing.
func Customers(customers []pos.Customer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Customers")

	table := md.TableSet{
		Header: []string{"ID", "Name"},
	}
	for _, c := range customers {
		table.Rows = append(table.Rows, []string{c.ID, c.Name})
	}
	doc.Table(table)

	return doc.String()
}
