package pos

import (
	"fmt"
	"strings"
	"time"
)

// PaymentMethod identifies how a sale was settled. The values are persisted
// as-is in the sales blob.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"     // cash over the counter
	PayPOS      PaymentMethod = "pos"      // point-of-sale terminal
	PayTransfer PaymentMethod = "transfer" // bank transfer
)

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PayCash:
		return PayCash, nil
	case PayPOS:
		return PayPOS, nil
	case PayTransfer:
		return PayTransfer, nil
	default:
		return "", fmt.Errorf("unknown payment method: %q (want cash, pos or transfer)", s)
	}
}

// SaleItem is the denormalized snapshot of a cart line at checkout time.
// It never changes, even if the referenced product is later edited.
type SaleItem struct {
	ProductID string
	Name      string
	Price     Money
	Qty       int
}

// LineTotal returns price times quantity for this item.
func (i SaleItem) LineTotal() Money { return i.Price.MulInt(i.Qty) }

// Sale is an immutable record of a completed checkout. Total is always equal
// to Subtotal; there is no tax or discount model.
type Sale struct {
	ID            string
	Date          time.Time
	CustomerName  string
	Items         []SaleItem
	Subtotal      Money
	Total         Money
	PaymentMethod PaymentMethod
}

// Day returns the calendar day the sale happened on.
func (s Sale) Day() Date { return DateOf(s.Date) }

// ItemsSummary flattens the sale's items into a "name x qty; ..." summary,
// as used in CSV exports and sale listings.
func (s Sale) ItemsSummary() string {
	parts := make([]string, len(s.Items))
	for i, it := range s.Items {
		parts[i] = fmt.Sprintf("%s x%d", it.Name, it.Qty)
	}
	return strings.Join(parts, "; ")
}
