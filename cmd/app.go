// Package cmd implements the svpos command line interface.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/smartviews/pos"
)

// Environment variables honored by the global flags. A .env file in the
// working directory can provide them; the main package loads it.
const (
	EnvStoreDir = "SVPOS_STORE_DIR"
	EnvCurrency = "SVPOS_CURRENCY"
)

// As a CLI application with a very short lifecycle, globals are fine here.
var (
	storeDirFlag = flag.String("store", "", "Path to the store directory (default $SVPOS_STORE_DIR or .svpos)")
	currencyFlag = flag.String("currency", "", "ISO currency code for prices (default $SVPOS_CURRENCY or NGN)")
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() runs the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&productsCmd{}, "catalog")
	c.Register(&addProductCmd{}, "catalog")
	c.Register(&restockCmd{}, "catalog")
	c.Register(&setPriceCmd{}, "catalog")

	c.Register(&customersCmd{}, "customers")
	c.Register(&addCustomerCmd{}, "customers")

	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")
	c.Register(&receiptCmd{}, "sales")

	c.Register(&revenueCmd{}, "reporting")
	c.Register(&exportCmd{}, "reporting")
	c.Register(&queryCmd{}, "reporting")

	c.Register(&topicCmd{}, "documentation")
}

func storeDir() string {
	if *storeDirFlag != "" {
		return *storeDirFlag
	}
	if v := os.Getenv(EnvStoreDir); v != "" {
		return v
	}
	return ".svpos"
}

func currency() string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		return v
	}
	return "NGN"
}

// OpenStore returns the blob store backing the collections.
func OpenStore() pos.Store { return pos.NewDirStore(storeDir()) }

// OpenTerminal loads the three collections and wires them into a terminal.
// Missing or unreadable blobs fall back to seed data, so this never fails.
func OpenTerminal() *pos.Terminal {
	store := OpenStore()
	cur := currency()
	catalog := pos.OpenCatalog(store, cur)
	customers := pos.OpenCustomers(store)
	sales := pos.OpenSalesLedger(store, cur)
	return pos.NewTerminal(catalog, customers, sales)
}
