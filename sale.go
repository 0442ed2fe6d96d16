package dealership

import (
	"fmt"
	"time"
)

// Sale records that one vehicle was sold by one seller. A Sale is created by
// Ledger.RecordSale and is immutable thereafter; there is at most one Sale
// per vehicle plate.
type Sale struct {
	ID           string // opaque receipt reference, assigned at creation
	VehiclePlate string // plate of the sold vehicle
	SellerID     string // seller who made the sale
	SoldAt       time.Time
}

// String returns a one-line summary of the sale.
func (s Sale) String() string {
	return fmt.Sprintf("Sale(plate=%s, seller=%s, at=%s)", s.VehiclePlate, s.SellerID, s.SoldAt.Format(time.DateTime))
}
