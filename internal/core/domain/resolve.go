package domain

// A Resolved is an expanded reference. A nil Entity means the referenced
// record no longer exists.
type Resolved[T any] struct {
	ID     string
	Entity *T
}

func (r Resolved[T]) Unresolved() bool {
	return r.Entity == nil
}

// A Projection lists the fields to load for a referenced entity.
// An empty Projection loads the whole entity.
type Projection []string

var (
	CustomerContact = Projection{"firstName", "lastName", "email"}
	CustomerName    = Projection{"firstName", "lastName"}
	ProductName     = Projection{"name"}
	FullEntity      = Projection(nil)
)

type OrderView struct {
	Order    Order
	Customer Resolved[Customer]

	// Products is aligned with Order.Items. It is nil when line items
	// were not expanded.
	Products []Resolved[Product]
}

type ReviewView struct {
	Review Review

	// Product is nil when the product reference was not expanded.
	Product  *Resolved[Product]
	Customer Resolved[Customer]
}
