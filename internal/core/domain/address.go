package domain

// An Address is copied into the owning document, never referenced.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}
