package pos

import (
	"fmt"
	"iter"
)

// SalesLedger is the collection of completed sales, most recent first. New
// sales are only ever prepended; existing records never change.
type SalesLedger struct {
	store    Store
	currency string
	sales    []Sale
}

// OpenSalesLedger loads the ledger from the store. A missing or unreadable
// blob silently falls back to an empty ledger; this is never an error.
func OpenSalesLedger(store Store, currency string) *SalesLedger {
	l := &SalesLedger{store: store, currency: currency}
	data, err := store.Read(KeySales)
	if err == nil {
		l.sales, err = decodeSales(data, currency)
	}
	if err != nil {
		logFallback(KeySales, err)
		l.sales = nil
	}
	return l
}

// Save rewrites the whole sales collection to the store.
func (l *SalesLedger) Save() error {
	data, err := encodeSales(l.sales)
	if err != nil {
		return fmt.Errorf("cannot encode sales: %w", err)
	}
	return l.store.Write(KeySales, data)
}

// Prepend inserts a sale at the head of the ledger, keeping recency order.
func (l *SalesLedger) Prepend(s Sale) {
	l.sales = append([]Sale{s}, l.sales...)
}

// Len returns the number of recorded sales.
func (l *SalesLedger) Len() int { return len(l.sales) }

// Sales returns an iterator over all sales, most recent first.
func (l *SalesLedger) Sales() iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if !yield(s) {
				return
			}
		}
	}
}

// Find returns the sale with this receipt id.
func (l *SalesLedger) Find(id string) (Sale, bool) {
	for _, s := range l.sales {
		if s.ID == id {
			return s, true
		}
	}
	return Sale{}, false
}

// RevenueBucket is one calendar day of the revenue series.
type RevenueBucket struct {
	Day   Date
	Total Money
}

// RecentRevenue returns one bucket per calendar day for the trailing window
// of the given length ending today, oldest first. Days without sales carry a
// zero total; sales outside the window are ignored.
func (l *SalesLedger) RecentRevenue(days int) []RevenueBucket {
	return l.recentRevenue(Today(), days)
}

func (l *SalesLedger) recentRevenue(until Date, days int) []RevenueBucket {
	buckets := make([]RevenueBucket, days)
	byDay := make(map[Date]int, days)
	for i := range buckets {
		day := until.Add(i - days + 1)
		buckets[i] = RevenueBucket{Day: day, Total: M(0, l.currency)}
		byDay[day] = i
	}
	for _, s := range l.sales {
		if i, ok := byDay[s.Day()]; ok {
			buckets[i].Total = buckets[i].Total.Add(s.Total)
		}
	}
	return buckets
}
