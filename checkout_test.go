package pos

import (
	"errors"
	"testing"
)

func TestCheckoutRecordsSale(t *testing.T) {
	term, store := testTerminal(t)

	cart := NewCart()
	panel := mustProduct(t, term.Catalog, "p-panel")
	router := mustProduct(t, term.Catalog, "p-router")
	cart.Add(panel)
	cart.Add(panel)
	cart.Add(router)

	sale, err := term.Checkout(cart, "c-ada", PayPOS)
	if err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}
	if sale == nil {
		t.Fatal("Checkout() returned no sale")
	}

	if want := "SV-20260828143055-a3f1"; sale.ID != want {
		t.Errorf("sale id = %q, want %q", sale.ID, want)
	}
	if sale.CustomerName != "Ada Obi" {
		t.Errorf("customer name = %q, want %q", sale.CustomerName, "Ada Obi")
	}
	if want := M(288000, testCurrency); !sale.Total.Equal(want) {
		t.Errorf("total = %s, want %s", sale.Total.Number(), want.Number())
	}
	if !sale.Subtotal.Equal(sale.Total) {
		t.Errorf("subtotal %s differs from total %s", sale.Subtotal.Number(), sale.Total.Number())
	}

	// Stock moved.
	if got := mustProduct(t, term.Catalog, "p-panel").Stock; got != 18 {
		t.Errorf("panel stock = %d, want 18", got)
	}
	if got := mustProduct(t, term.Catalog, "p-router").Stock; got != 14 {
		t.Errorf("router stock = %d, want 14", got)
	}

	// Ledger head holds the new sale.
	if term.Sales.Len() != 1 {
		t.Fatalf("ledger len = %d, want 1", term.Sales.Len())
	}
	if got, ok := term.Sales.Find(sale.ID); !ok || got.ID != sale.ID {
		t.Errorf("Find(%q) = %v, %v", sale.ID, got.ID, ok)
	}

	// Both collections hit the store.
	if _, err := store.Read(KeyProducts); err != nil {
		t.Errorf("products blob not written: %v", err)
	}
	if _, err := store.Read(KeySales); err != nil {
		t.Errorf("sales blob not written: %v", err)
	}

	if !cart.IsEmpty() {
		t.Error("cart not cleared after checkout")
	}
}

func TestCheckoutInsufficientStockIsAllOrNothing(t *testing.T) {
	term, store := testTerminal(t)

	cart := NewCart()
	inverter := mustProduct(t, term.Catalog, "p-inverter") // stock 4
	panel := mustProduct(t, term.Catalog, "p-panel")
	cart.Add(panel)
	cart.Add(inverter)
	cart.SetQuantity("p-inverter", 5)

	sale, err := term.Checkout(cart, "", PayCash)
	if sale != nil {
		t.Fatalf("Checkout() returned a sale despite stock failure: %v", sale.ID)
	}
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("Checkout() error = %v, want InsufficientStockError", err)
	}
	if stockErr.ProductID != "p-inverter" || stockErr.Stock != 4 || stockErr.Requested != 5 {
		t.Errorf("error = %+v, want p-inverter have 4 want 5", stockErr)
	}

	// Nothing moved, nothing recorded, nothing persisted.
	if got := mustProduct(t, term.Catalog, "p-panel").Stock; got != 20 {
		t.Errorf("panel stock = %d, want untouched 20", got)
	}
	if got := mustProduct(t, term.Catalog, "p-inverter").Stock; got != 4 {
		t.Errorf("inverter stock = %d, want untouched 4", got)
	}
	if term.Sales.Len() != 0 {
		t.Errorf("ledger len = %d, want 0", term.Sales.Len())
	}
	if len(store) != 0 {
		t.Errorf("store has %d blobs, want none written", len(store))
	}
	if cart.IsEmpty() {
		t.Error("cart was cleared despite failed checkout")
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	term, _ := testTerminal(t)

	cart := NewCart()
	cart.Add(Product{ID: "p-ghost", Name: "Ghost", Price: M(1, testCurrency)})

	_, err := term.Checkout(cart, "", PayCash)
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("Checkout() error = %v, want ErrUnknownProduct", err)
	}
	if term.Sales.Len() != 0 {
		t.Errorf("ledger len = %d, want 0", term.Sales.Len())
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	term, store := testTerminal(t)

	sale, err := term.Checkout(NewCart(), "", PayCash)
	if sale != nil || err != nil {
		t.Fatalf("Checkout(empty) = %v, %v, want nil, nil", sale, err)
	}
	if len(store) != 0 {
		t.Errorf("store has %d blobs, want none written", len(store))
	}
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	term, _ := testTerminal(t)

	cart := NewCart()
	cart.Add(mustProduct(t, term.Catalog, "p-panel"))

	if _, err := term.Checkout(cart, "", PaymentMethod("card")); err == nil {
		t.Fatal("Checkout() accepted an unknown payment method")
	}
	if got := mustProduct(t, term.Catalog, "p-panel").Stock; got != 20 {
		t.Errorf("panel stock = %d, want untouched 20", got)
	}
}

func TestCheckoutWalkInFallback(t *testing.T) {
	term, _ := testTerminal(t)

	tests := []struct {
		name       string
		customerID string
	}{
		{"empty id", ""},
		{"unknown id", "c-ghost"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cart := NewCart()
			cart.Add(mustProduct(t, term.Catalog, "p-router"))
			sale, err := term.Checkout(cart, tc.customerID, PayTransfer)
			if err != nil {
				t.Fatalf("Checkout() error: %v", err)
			}
			if sale.CustomerName != WalkInName {
				t.Errorf("customer name = %q, want %q", sale.CustomerName, WalkInName)
			}
		})
	}
}

func TestCheckoutSnapshotSurvivesCatalogEdits(t *testing.T) {
	term, _ := testTerminal(t)

	cart := NewCart()
	cart.Add(mustProduct(t, term.Catalog, "p-panel"))
	sale, err := term.Checkout(cart, "", PayCash)
	if err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}

	if err := term.Catalog.SetPrice("p-panel", M(999999, testCurrency)); err != nil {
		t.Fatalf("SetPrice() error: %v", err)
	}

	recorded, ok := term.Sales.Find(sale.ID)
	if !ok {
		t.Fatalf("sale %q lost", sale.ID)
	}
	if want := M(125000, testCurrency); !recorded.Items[0].Price.Equal(want) {
		t.Errorf("recorded item price = %s, want snapshot %s", recorded.Items[0].Price.Number(), want.Number())
	}
}
