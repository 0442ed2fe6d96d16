package dealership

// Seller is an immutable catalog record identifying a person allowed to
// record sales. Identity is the seller id.
type Seller struct {
	ID   string // unique identifier within the catalog
	Name string
}
