// Package logic provides the shopping-cart domain: products, cart items,
// per-customer carts and the registry that owns them.
//
// The package has no I/O and is not safe for concurrent use.
package logic

// Product identifies something that can be put in a cart.
//
// Two products are the same product when their IDs match; the description is
// informational only.
type Product struct {
	id          string
	description string
}

// NewProduct returns a product with the given identifier and description.
func NewProduct(id, description string) Product {
	return Product{id: id, description: description}
}

func (p Product) ID() string {
	return p.id
}

func (p Product) Description() string {
	return p.description
}

// Equal reports whether p and other share the same ID.
func (p Product) Equal(other Product) bool {
	return p.id == other.id
}

// IsZero reports whether p carries no identifier, i.e. no product was given.
func (p Product) IsZero() bool {
	return p.id == ""
}

func (p Product) String() string {
	if p.description == "" {
		return p.id
	}
	return p.id + " (" + p.description + ")"
}
