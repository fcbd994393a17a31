package pos

import (
	"slices"
	"testing"
)

func TestCartAddMergesLines(t *testing.T) {
	panel := Product{ID: "p-panel", Name: "Solar Panel 550W", Price: M(125000, testCurrency), Stock: 20}
	router := Product{ID: "p-router", Name: "Router (Dual Band)", Price: M(38000, testCurrency), Stock: 15}

	cart := NewCart()
	cart.Add(panel)
	cart.Add(router)
	cart.Add(panel)

	if got := cart.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2 lines", got)
	}
	lines := slices.Collect(cart.Lines())
	if lines[0].ProductID != "p-panel" || lines[0].Qty != 2 {
		t.Errorf("first line = %q qty %d, want p-panel qty 2", lines[0].ProductID, lines[0].Qty)
	}
	if lines[1].ProductID != "p-router" || lines[1].Qty != 1 {
		t.Errorf("second line = %q qty %d, want p-router qty 1", lines[1].ProductID, lines[1].Qty)
	}
}

func TestCartSetQuantity(t *testing.T) {
	panel := Product{ID: "p-panel", Name: "Solar Panel 550W", Price: M(125000, testCurrency)}

	tests := []struct {
		name string
		id   string
		qty  int
		want int
	}{
		{"set", "p-panel", 5, 5},
		{"floor at one", "p-panel", 0, 1},
		{"negative floors too", "p-panel", -3, 1},
		{"unknown line is a no-op", "p-ghost", 7, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cart := NewCart()
			cart.Add(panel)
			cart.SetQuantity(tc.id, tc.qty)
			lines := slices.Collect(cart.Lines())
			if got := lines[0].Qty; got != tc.want {
				t.Errorf("qty = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	panel := Product{ID: "p-panel", Price: M(125000, testCurrency)}
	router := Product{ID: "p-router", Price: M(38000, testCurrency)}

	cart := NewCart()
	cart.Add(panel)
	cart.Add(router)

	cart.Remove("p-panel")
	if cart.Len() != 1 {
		t.Fatalf("Len() after Remove = %d, want 1", cart.Len())
	}
	cart.Remove("p-ghost") // unknown id must not panic
	if cart.Len() != 1 {
		t.Fatalf("Len() after removing unknown id = %d, want 1", cart.Len())
	}

	cart.Clear()
	if !cart.IsEmpty() {
		t.Error("cart not empty after Clear")
	}
}

func TestCartSubtotal(t *testing.T) {
	panel := Product{ID: "p-panel", Price: M(125000, testCurrency)}
	router := Product{ID: "p-router", Price: M(38000, testCurrency)}

	cart := NewCart()
	if got := cart.Subtotal(); !got.IsZero() {
		t.Errorf("empty cart subtotal = %s, want zero", got.Number())
	}

	cart.Add(panel)
	cart.Add(panel)
	cart.Add(router)
	want := M(288000, testCurrency)
	if got := cart.Subtotal(); !got.Equal(want) {
		t.Errorf("Subtotal() = %s, want %s", got.Number(), want.Number())
	}
}

func TestCartSnapshotsPriceAtAdd(t *testing.T) {
	panel := Product{ID: "p-panel", Price: M(125000, testCurrency)}

	cart := NewCart()
	cart.Add(panel)

	// A later catalog reprice must not touch the line already in the cart.
	panel.Price = M(999999, testCurrency)

	lines := slices.Collect(cart.Lines())
	if want := M(125000, testCurrency); !lines[0].Price.Equal(want) {
		t.Errorf("line price = %s, want snapshot %s", lines[0].Price.Number(), want.Number())
	}
}
