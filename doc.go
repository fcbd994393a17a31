// Package pos implements a single-operator point of sale: a product
// catalog, a customer list and a sales ledger persisted as three
// human-inspectable JSON blobs, a transient cart, an all-or-nothing
// checkout, and simple reporting (receipts, CSV export, a trailing
// revenue series).
//
// There is no server and no database: every collection is loaded whole at
// startup and rewritten whole on every mutation, exactly like the browser
// deployment it replaces.
package pos
