package pos

import (
	"fmt"
	"iter"
	"strings"
)

// Product is a catalog record. Stock is decremented by checkout and is never
// allowed to go negative.
type Product struct {
	ID       string
	Name     string
	SKU      string
	Price    Money
	Stock    int
	Category string
}

// Available reports whether the product can currently be added to a cart.
func (p Product) Available() bool { return p.Stock > 0 }

// Catalog holds the product collection, mirrored whole to its store blob on
// every mutation.
type Catalog struct {
	store    Store
	currency string
	products []Product
	index    map[string]int // product id -> position in products
}

// OpenCatalog loads the catalog from the store. A missing or unreadable blob
// silently falls back to the seed catalog; this is never an error.
func OpenCatalog(store Store, currency string) *Catalog {
	c := &Catalog{store: store, currency: currency}
	data, err := store.Read(KeyProducts)
	if err == nil {
		c.products, err = decodeProducts(data, currency)
	}
	if err != nil {
		logFallback(KeyProducts, err)
		c.products = seedProducts(currency)
	}
	c.reindex()
	return c
}

// Save rewrites the whole product collection to the store.
func (c *Catalog) Save() error {
	data, err := encodeProducts(c.products)
	if err != nil {
		return fmt.Errorf("cannot encode products: %w", err)
	}
	return c.store.Write(KeyProducts, data)
}

func (c *Catalog) reindex() {
	c.index = make(map[string]int, len(c.products))
	for i, p := range c.products {
		c.index[p.ID] = i
	}
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }

// Product returns the product with this id.
func (c *Catalog) Product(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// BySKU returns the product with this SKU.
func (c *Catalog) BySKU(sku string) (Product, bool) {
	for _, p := range c.products {
		if p.SKU == sku {
			return p, true
		}
	}
	return Product{}, false
}

// Products returns an iterator over all products in catalog order.
func (c *Catalog) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Search returns an iterator over products whose name, SKU or category
// contains the query, case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) iter.Seq[Product] {
	query = strings.ToLower(query)
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			haystack := strings.ToLower(p.Name + " " + p.SKU + " " + p.Category)
			if !strings.Contains(haystack, query) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Add appends a new product to the catalog and persists it.
func (c *Catalog) Add(p Product) error {
	if p.ID == "" {
		p.ID = newID()
	}
	if _, exists := c.index[p.ID]; exists {
		return fmt.Errorf("product id %q already in catalog", p.ID)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product stock must not be negative, got %d", p.Stock)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product price must not be negative, got %s", p.Price.Number())
	}
	p.Price = p.Price.withCurrency(c.currency)
	c.products = append(c.products, p)
	c.index[p.ID] = len(c.products) - 1
	return c.Save()
}

// Restock increases a product's stock by n units and persists the catalog.
func (c *Catalog) Restock(id string, n int) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("restock %q: %w", id, ErrUnknownProduct)
	}
	if n <= 0 {
		return fmt.Errorf("restock quantity must be positive, got %d", n)
	}
	c.products[i].Stock += n
	return c.Save()
}

// SetPrice updates a product's unit price and persists the catalog. Sales
// already recorded keep their snapshot prices.
func (c *Catalog) SetPrice(id string, price Money) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("set price of %q: %w", id, ErrUnknownProduct)
	}
	if price.IsNegative() {
		return fmt.Errorf("price must not be negative, got %s", price.Number())
	}
	c.products[i].Price = price.withCurrency(c.currency)
	return c.Save()
}

// decrementStock removes qty units, flooring at zero. Callers must have
// validated availability beforehand; checkout relies on this.
func (c *Catalog) decrementStock(id string, qty int) {
	i, ok := c.index[id]
	if !ok {
		return
	}
	c.products[i].Stock -= qty
	if c.products[i].Stock < 0 {
		c.products[i].Stock = 0
	}
}

// seedProducts returns the initial demonstration catalog.
func seedProducts(currency string) []Product {
	return []Product{
		{ID: newID(), Name: "Solar Panel 550W", SKU: "SP-550", Price: M(125000, currency), Stock: 20, Category: "Solar"},
		{ID: newID(), Name: "Inverter 3.5kVA", SKU: "INV-35", Price: M(285000, currency), Stock: 4, Category: "Solar"},
		{ID: newID(), Name: "Router (Dual Band)", SKU: "RT-DB", Price: M(38000, currency), Stock: 15, Category: "ICT"},
	}
}
