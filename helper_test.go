package pos

import (
	"testing"
	"time"
)

// testCurrency keeps test amounts readable; the formatter is exercised in
// the money tests only.
const testCurrency = "NGN"

// testCatalog returns a catalog over a fresh MemStore with a fixed set of
// products, so tests can reference stable ids.
func testCatalog(t *testing.T, store MemStore) *Catalog {
	t.Helper()
	c := &Catalog{store: store, currency: testCurrency}
	c.products = []Product{
		{ID: "p-panel", Name: "Solar Panel 550W", SKU: "SP-550", Price: M(125000, testCurrency), Stock: 20, Category: "Solar"},
		{ID: "p-inverter", Name: "Inverter 3.5kVA", SKU: "INV-35", Price: M(285000, testCurrency), Stock: 4, Category: "Solar"},
		{ID: "p-router", Name: "Router (Dual Band)", SKU: "RT-DB", Price: M(38000, testCurrency), Stock: 15, Category: "ICT"},
	}
	c.reindex()
	return c
}

func testCustomers(store MemStore) *Customers {
	return &Customers{store: store, customers: []Customer{
		{ID: "c-walkin", Name: WalkInName},
		{ID: "c-ada", Name: "Ada Obi"},
	}}
}

// testTerminal wires a terminal over in-memory collections with a frozen
// clock and a fixed receipt suffix.
func testTerminal(t *testing.T) (*Terminal, MemStore) {
	t.Helper()
	store := MemStore{}
	term := NewTerminal(testCatalog(t, store), testCustomers(store), &SalesLedger{store: store, currency: testCurrency})
	term.now = func() time.Time { return time.Date(2026, 8, 28, 14, 30, 55, 0, time.UTC) }
	term.suffix = func() string { return "a3f1" }
	return term, store
}

// mustProduct fetches a product by id and fails the test if absent.
func mustProduct(t *testing.T, c *Catalog, id string) Product {
	t.Helper()
	p, ok := c.Product(id)
	if !ok {
		t.Fatalf("product %q not in catalog", id)
	}
	return p
}
