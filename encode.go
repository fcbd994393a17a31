package pos

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"
)

// This file persists the three collections as JSON arrays. The field names
// are fixed by the storage format of the original deployment and must not
// change: blobs written by either implementation are interchangeable.

// jproduct is the object read from and written to the products blob.
type jproduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Price    Money  `json:"price"`
	Stock    int    `json:"stock"`
	Category string `json:"category"`
}

// jcustomer is the object read from and written to the customers blob.
type jcustomer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// jitem is a sale line item inside the sales blob.
type jitem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Qty       int    `json:"qty"`
}

// jsale is the object read from and written to the sales blob.
type jsale struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	CustomerName  string  `json:"customerName"`
	Items         []jitem `json:"items"`
	Subtotal      Money   `json:"subtotal"`
	Total         Money   `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
}

// logFallback records why a collection was reset to its seed value. The
// fallback itself is silent towards the user: it is never an error.
func logFallback(key string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("store blob %q does not exist, using seed data", key)
		return
	}
	log.Printf("store blob %q is unreadable (%v), using seed data", key, err)
}

func decodeProducts(data []byte, currency string) ([]Product, error) {
	var jps []jproduct
	if err := json.Unmarshal(data, &jps); err != nil {
		return nil, fmt.Errorf("format error in %q blob: %w", KeyProducts, err)
	}
	products := make([]Product, 0, len(jps))
	for _, jp := range jps {
		products = append(products, Product{
			ID:       jp.ID,
			Name:     jp.Name,
			SKU:      jp.SKU,
			Price:    jp.Price.withCurrency(currency),
			Stock:    jp.Stock,
			Category: jp.Category,
		})
	}
	return products, nil
}

func encodeProducts(products []Product) ([]byte, error) {
	jps := make([]jproduct, 0, len(products))
	for _, p := range products {
		jps = append(jps, jproduct{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Price:    p.Price,
			Stock:    p.Stock,
			Category: p.Category,
		})
	}
	return json.MarshalIndent(jps, "", "  ")
}

func decodeCustomers(data []byte) ([]Customer, error) {
	var jcs []jcustomer
	if err := json.Unmarshal(data, &jcs); err != nil {
		return nil, fmt.Errorf("format error in %q blob: %w", KeyCustomers, err)
	}
	customers := make([]Customer, 0, len(jcs))
	for _, jc := range jcs {
		customers = append(customers, Customer{ID: jc.ID, Name: jc.Name})
	}
	return customers, nil
}

func encodeCustomers(customers []Customer) ([]byte, error) {
	jcs := make([]jcustomer, 0, len(customers))
	for _, c := range customers {
		jcs = append(jcs, jcustomer{ID: c.ID, Name: c.Name})
	}
	return json.MarshalIndent(jcs, "", "  ")
}

func decodeSales(data []byte, currency string) ([]Sale, error) {
	var jss []jsale
	if err := json.Unmarshal(data, &jss); err != nil {
		return nil, fmt.Errorf("format error in %q blob: %w", KeySales, err)
	}
	sales := make([]Sale, 0, len(jss))
	for _, js := range jss {
		on, err := time.Parse(TimestampFormat, js.Date)
		if err != nil {
			return nil, fmt.Errorf("format error in %q blob: sale %q has invalid date %q: %w", KeySales, js.ID, js.Date, err)
		}
		method, err := ParsePaymentMethod(js.PaymentMethod)
		if err != nil {
			return nil, fmt.Errorf("format error in %q blob: sale %q: %w", KeySales, js.ID, err)
		}
		items := make([]SaleItem, 0, len(js.Items))
		for _, ji := range js.Items {
			items = append(items, SaleItem{
				ProductID: ji.ProductID,
				Name:      ji.Name,
				Price:     ji.Price.withCurrency(currency),
				Qty:       ji.Qty,
			})
		}
		sales = append(sales, Sale{
			ID:            js.ID,
			Date:          on,
			CustomerName:  js.CustomerName,
			Items:         items,
			Subtotal:      js.Subtotal.withCurrency(currency),
			Total:         js.Total.withCurrency(currency),
			PaymentMethod: method,
		})
	}
	return sales, nil
}

func encodeSales(sales []Sale) ([]byte, error) {
	jss := make([]jsale, 0, len(sales))
	for _, s := range sales {
		items := make([]jitem, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, jitem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Price:     it.Price,
				Qty:       it.Qty,
			})
		}
		jss = append(jss, jsale{
			ID:            s.ID,
			Date:          s.Date.Format(TimestampFormat),
			CustomerName:  s.CustomerName,
			Items:         items,
			Subtotal:      s.Subtotal,
			Total:         s.Total,
			PaymentMethod: string(s.PaymentMethod),
		})
	}
	return json.MarshalIndent(jss, "", "  ")
}
