package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/smartviews/pos"
)

func sampleSale() pos.Sale {
	return pos.Sale{
		ID:           "SV-20260828143055-a3f1",
		Date:         time.Date(2026, 8, 28, 14, 30, 55, 0, time.UTC),
		CustomerName: "Ada Obi",
		Items: []pos.SaleItem{
			{ProductID: "p-panel", Name: "Solar Panel 550W", Price: pos.M(125000, "NGN"), Qty: 2},
			{ProductID: "p-router", Name: "Router (Dual Band)", Price: pos.M(38000, "NGN"), Qty: 1},
		},
		Subtotal:      pos.M(288000, "NGN"),
		Total:         pos.M(288000, "NGN"),
		PaymentMethod: pos.PayPOS,
	}
}

func TestReceipt(t *testing.T) {
	got := Receipt(sampleSale())

	for _, want := range []string{
		"SMARTVIEWS LTD",
		"SV-20260828143055-a3f1",
		"2026-08-28 14:30:55",
		"Ada Obi",
		"paid by pos",
		"Solar Panel 550W",
		"Router (Dual Band)",
		"Thank you for your business",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("receipt contains a template error:\n%s", got)
	}
}

func TestReceiptHTML(t *testing.T) {
	got, err := ReceiptHTML(sampleSale())
	if err != nil {
		t.Fatalf("ReceiptHTML() error: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Receipt SV-20260828143055-a3f1</title>",
		"<table>",
		"Solar Panel 550W",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML receipt missing %q", want)
		}
	}
}

func TestProducts(t *testing.T) {
	got := Products([]pos.Product{
		{SKU: "SP-550", Name: "Solar Panel 550W", Category: "Solar", Price: pos.M(125000, "NGN"), Stock: 20},
		{SKU: "INV-35", Name: "Inverter 3.5kVA", Category: "Solar", Price: pos.M(285000, "NGN"), Stock: 0},
	})

	if !strings.Contains(got, "SP-550") || !strings.Contains(got, "20") {
		t.Errorf("listing missing in-stock product:\n%s", got)
	}
	if !strings.Contains(got, "out of stock") {
		t.Errorf("zero stock product not marked out of stock:\n%s", got)
	}
}

func TestSalesEmpty(t *testing.T) {
	got := Sales(nil)
	if !strings.Contains(got, "No sales recorded.") {
		t.Errorf("empty listing = %q", got)
	}
}

func TestSales(t *testing.T) {
	got := Sales([]pos.Sale{sampleSale()})
	for _, want := range []string{"SV-20260828143055-a3f1", "Ada Obi", "pos", "Solar Panel 550W x2"} {
		if !strings.Contains(got, want) {
			t.Errorf("sale listing missing %q:\n%s", want, got)
		}
	}
}

func TestRevenue(t *testing.T) {
	buckets := []pos.RevenueBucket{
		{Day: pos.NewDate(2026, time.August, 27), Total: pos.M(100, "NGN")},
		{Day: pos.NewDate(2026, time.August, 28), Total: pos.M(200, "NGN")},
	}
	got := Revenue(buckets)

	if !strings.Contains(got, "Revenue (2 days)") {
		t.Errorf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "08-27") || !strings.Contains(got, "08-28") {
		t.Errorf("missing day labels:\n%s", got)
	}
	// The busiest day gets the full bar, the other is scaled to half.
	if !strings.Contains(got, strings.Repeat("█", 20)) {
		t.Errorf("busiest day has no full bar:\n%s", got)
	}
	if n := strings.Count(got, "█"); n != 30 {
		t.Errorf("drew %d bar cells, want 20 plus 10", n)
	}
}

func TestRevenueAllZero(t *testing.T) {
	buckets := []pos.RevenueBucket{
		{Day: pos.NewDate(2026, time.August, 28), Total: pos.M(0, "NGN")},
	}
	got := Revenue(buckets)
	if strings.Contains(got, "█") {
		t.Errorf("zero revenue drew a bar:\n%s", got)
	}
}
