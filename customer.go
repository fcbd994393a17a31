package pos

import (
	"fmt"
	"iter"
)

// WalkInName is the display name of the default customer used whenever no
// specific customer is selected at checkout.
const WalkInName = "Walk-in Customer"

// Customer is a named account a sale can be attributed to. The name is
// denormalized into the sale at checkout; the record itself is never
// referenced afterwards.
type Customer struct {
	ID   string
	Name string
}

// Customers holds the customer collection, mirrored whole to its store blob
// on every mutation.
type Customers struct {
	store     Store
	customers []Customer
}

// OpenCustomers loads the customer list from the store. A missing or
// unreadable blob silently falls back to the seed list (the walk-in
// customer); this is never an error.
func OpenCustomers(store Store) *Customers {
	c := &Customers{store: store}
	data, err := store.Read(KeyCustomers)
	if err == nil {
		c.customers, err = decodeCustomers(data)
	}
	if err != nil {
		logFallback(KeyCustomers, err)
		c.customers = seedCustomers()
	}
	return c
}

// Save rewrites the whole customer collection to the store.
func (c *Customers) Save() error {
	data, err := encodeCustomers(c.customers)
	if err != nil {
		return fmt.Errorf("cannot encode customers: %w", err)
	}
	return c.store.Write(KeyCustomers, data)
}

// Len returns the number of customers.
func (c *Customers) Len() int { return len(c.customers) }

// All returns an iterator over all customers in list order.
func (c *Customers) All() iter.Seq[Customer] {
	return func(yield func(Customer) bool) {
		for _, cust := range c.customers {
			if !yield(cust) {
				return
			}
		}
	}
}

// Customer returns the customer with this id.
func (c *Customers) Customer(id string) (Customer, bool) {
	for _, cust := range c.customers {
		if cust.ID == id {
			return cust, true
		}
	}
	return Customer{}, false
}

// DisplayName resolves a customer id to its display name, falling back to
// the walk-in customer when the id is empty or unknown.
func (c *Customers) DisplayName(id string) string {
	if cust, ok := c.Customer(id); ok {
		return cust.Name
	}
	return WalkInName
}

// Add appends a new customer and persists the collection.
func (c *Customers) Add(name string) (Customer, error) {
	if name == "" {
		return Customer{}, fmt.Errorf("customer name must not be empty")
	}
	cust := Customer{ID: newID(), Name: name}
	c.customers = append(c.customers, cust)
	return cust, c.Save()
}

// seedCustomers returns the initial customer list.
func seedCustomers() []Customer {
	return []Customer{{ID: newID(), Name: WalkInName}}
}
