package pos

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownProduct reports a cart line whose product id is not in the
// catalog. Cart lines must reference existing products for the whole life of
// the cart, so this is a caller error, not a stock condition.
var ErrUnknownProduct = errors.New("product not in catalog")

// InsufficientStockError reports the first cart line requesting more units
// than the catalog holds. Checkout applied no side effect.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Stock     int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: have %d, want %d", e.Name, e.Stock, e.Requested)
}

// Terminal wires the catalog, customer list and sales ledger into a single
// point of sale. The clock and receipt-suffix generator are injectable so
// tests can assert exact identifiers.
type Terminal struct {
	Catalog   *Catalog
	Customers *Customers
	Sales     *SalesLedger

	now    func() time.Time
	suffix func() string
}

// NewTerminal returns a terminal over the three collections, using the wall
// clock and a random receipt suffix.
func NewTerminal(catalog *Catalog, customers *Customers, sales *SalesLedger) *Terminal {
	return &Terminal{
		Catalog:   catalog,
		Customers: customers,
		Sales:     sales,
		now:       time.Now,
		suffix:    shortSuffix,
	}
}

// receiptID generates a human-readable sale identifier embedding the
// checkout timestamp and a short random suffix for uniqueness.
func (t *Terminal) receiptID(on time.Time) string {
	return fmt.Sprintf("SV-%s-%s", on.Format("20060102150405"), t.suffix())
}

// Checkout settles the cart against the catalog, all or nothing.
//
// Every line is validated against current stock first; if any line fails,
// no stock is decremented, no sale is recorded, and the error identifies the
// offending product. If all lines pass, stock is decremented, an immutable
// Sale snapshot is prepended to the ledger, both collections are persisted,
// and the cart is cleared.
//
// An empty cart is a silent no-op: Checkout returns (nil, nil).
func (t *Terminal) Checkout(cart *Cart, customerID string, method PaymentMethod) (*Sale, error) {
	if cart.IsEmpty() {
		return nil, nil
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return nil, err
	}

	// Validate everything before touching anything.
	for line := range cart.Lines() {
		p, ok := t.Catalog.Product(line.ProductID)
		if !ok {
			return nil, fmt.Errorf("cart references %q: %w", line.ProductID, ErrUnknownProduct)
		}
		if p.Stock < line.Qty {
			return nil, &InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Stock:     p.Stock,
				Requested: line.Qty,
			}
		}
	}

	for line := range cart.Lines() {
		t.Catalog.decrementStock(line.ProductID, line.Qty)
	}

	on := t.now()
	subtotal := cart.Subtotal()
	sale := Sale{
		ID:            t.receiptID(on),
		Date:          on,
		CustomerName:  t.Customers.DisplayName(customerID),
		Items:         snapshotItems(cart),
		Subtotal:      subtotal,
		Total:         subtotal,
		PaymentMethod: method,
	}
	t.Sales.Prepend(sale)

	if err := t.Catalog.Save(); err != nil {
		return &sale, fmt.Errorf("checkout recorded but catalog not persisted: %w", err)
	}
	if err := t.Sales.Save(); err != nil {
		return &sale, fmt.Errorf("checkout recorded but ledger not persisted: %w", err)
	}
	cart.Clear()
	return &sale, nil
}

// snapshotItems copies the cart lines into immutable sale items, decoupling
// the historical record from later catalog edits.
func snapshotItems(cart *Cart) []SaleItem {
	items := make([]SaleItem, 0, cart.Len())
	for line := range cart.Lines() {
		items = append(items, SaleItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Qty:       line.Qty,
		})
	}
	return items
}
