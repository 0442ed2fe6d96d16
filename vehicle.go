package dealership

// Vehicle is an immutable catalog record describing one vehicle for sale.
// A vehicle is identified by its plate; two vehicles with the same plate are
// the same catalog entry.
type Vehicle struct {
	Plate string // unique identifier within the catalog
	Model string
	Color string
	Price Money // non-negative
}
