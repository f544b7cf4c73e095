package orderstore

import "github.com/arthur-debert/modorder/pkg/loadorder"

// Store manages saved load orders.
type Store interface {
	// List returns the names of all saved orders, sorted.
	List() ([]string, error)

	// Load returns the saved order with the given name. A missing order
	// fails with ORDER_NOT_FOUND.
	Load(name string) (*loadorder.LoadOrder, error)

	// LoadAll returns every saved order, sorted by name.
	LoadAll() ([]*loadorder.LoadOrder, error)

	// Save writes the order, replacing any order with the same name.
	Save(order *loadorder.LoadOrder) error

	// Delete removes a saved order.
	Delete(name string) error
}
