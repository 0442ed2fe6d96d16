package dealership

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// Ledger owns the dealership's three collections: the vehicle catalog, the
// seller catalog, and the recorded sales. It is the only component allowed
// to mutate them, and the only mutation is RecordSale.
//
// Go maps do not preserve insertion order, so each collection is a map keyed
// by identifier plus a parallel slice holding the identifiers in insertion
// order. Queries return copies of the records; the underlying storage is
// never aliased to callers.
//
// A Ledger is not safe for concurrent use; it is intended for single-process,
// single-caller use.
type Ledger struct {
	vehicles map[string]Vehicle
	plates   []string // catalog insertion order
	sellers  map[string]Seller
	ids      []string // catalog insertion order
	sales    map[string]Sale // key: vehicle plate
	sold     []string        // recording order

	now func() time.Time
}

// NewLedger creates a ledger over an initial vehicle and seller catalog.
//
// Duplicate identifiers among the inputs are not rejected: the last record
// wins and keeps the first occurrence's position in catalog order. This
// mirrors keying by identifier and is documented behavior, not an error.
func NewLedger(vehicles []Vehicle, sellers []Seller) *Ledger {
	l := &Ledger{
		vehicles: make(map[string]Vehicle, len(vehicles)),
		sellers:  make(map[string]Seller, len(sellers)),
		sales:    make(map[string]Sale),
		now:      time.Now,
	}
	for _, v := range vehicles {
		if _, seen := l.vehicles[v.Plate]; !seen {
			l.plates = append(l.plates, v.Plate)
		}
		l.vehicles[v.Plate] = v
	}
	for _, s := range sellers {
		if _, seen := l.sellers[s.ID]; !seen {
			l.ids = append(l.ids, s.ID)
		}
		l.sellers[s.ID] = s
	}
	return l
}

// SetClock replaces the wall clock used to timestamp sales. It exists so
// callers and tests can make SoldAt deterministic; the default is time.Now.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// FindVehicle returns the vehicle with that plate, or nil if unknown.
func (l *Ledger) FindVehicle(plate string) *Vehicle {
	v, ok := l.vehicles[plate]
	if !ok {
		return nil
	}
	return &v
}

// FindSeller returns the seller with that id, or nil if unknown.
func (l *Ledger) FindSeller(sellerID string) *Seller {
	s, ok := l.sellers[sellerID]
	if !ok {
		return nil
	}
	return &s
}

// AvailableStock returns the vehicles that have no recorded sale, in catalog
// insertion order.
func (l *Ledger) AvailableStock() []Vehicle {
	stock := make([]Vehicle, 0, len(l.plates)-len(l.sold))
	for _, plate := range l.plates {
		if _, sold := l.sales[plate]; sold {
			continue
		}
		stock = append(stock, l.vehicles[plate])
	}
	return stock
}

// Sales returns every recorded sale, in recording order.
func (l *Ledger) Sales() []Sale {
	sales := make([]Sale, 0, len(l.sold))
	for _, plate := range l.sold {
		sales = append(sales, l.sales[plate])
	}
	return sales
}

// SalesBySeller returns the sales recorded by that seller, in recording
// order. An unknown seller id, or a seller with no sales, yields an empty
// slice, never an error.
func (l *Ledger) SalesBySeller(sellerID string) []Sale {
	var sales []Sale
	for _, sale := range l.AllSales(BySeller(sellerID)) {
		sales = append(sales, sale)
	}
	return sales
}

// AllSales returns an iterator over recorded sales in recording order,
// yielding the sales accepted by at least one of the filters.
func (l *Ledger) AllSales(filters ...func(Sale) bool) iter.Seq2[int, Sale] {
	return func(yield func(int, Sale) bool) {
		for i, plate := range l.sold {
			sale := l.sales[plate]
			accept := false
			for _, filter := range filters {
				if filter(sale) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, sale) {
				return
			}
		}
	}
}

// Vehicles iterates over the whole catalog in insertion order, sold or not.
func (l *Ledger) Vehicles() iter.Seq[Vehicle] {
	return func(yield func(Vehicle) bool) {
		for _, plate := range l.plates {
			if !yield(l.vehicles[plate]) {
				return
			}
		}
	}
}

// Sellers iterates over the seller catalog in insertion order.
func (l *Ledger) Sellers() iter.Seq[Seller] {
	return func(yield func(Seller) bool) {
		for _, id := range l.ids {
			if !yield(l.sellers[id]) {
				return
			}
		}
	}
}

// RecordSale registers the sale of the vehicle with that plate by that
// seller, stamped with the current wall-clock time, and returns the created
// Sale by value.
//
// Validation is sequential and fails fast on the first violation:
// UnknownVehicle, then AlreadySold, then UnknownSeller (see errors.go).
// On any failure the ledger is unchanged and remains fully usable.
func (l *Ledger) RecordSale(plate, sellerID string) (Sale, error) {
	if _, ok := l.vehicles[plate]; !ok {
		return Sale{}, newUnknownVehicleError(plate)
	}
	if _, sold := l.sales[plate]; sold {
		return Sale{}, newAlreadySoldError(plate)
	}
	if _, ok := l.sellers[sellerID]; !ok {
		return Sale{}, newUnknownSellerError(sellerID)
	}

	sale := Sale{
		ID:           uuid.NewString(),
		VehiclePlate: plate,
		SellerID:     sellerID,
		SoldAt:       l.now(),
	}
	l.sales[plate] = sale
	l.sold = append(l.sold, plate)
	return sale, nil
}

// AcceptAll is a predicate that accepts every sale.
func AcceptAll(Sale) bool { return true }

// BySeller returns a predicate that filters sales by seller id.
func BySeller(sellerID string) func(Sale) bool {
	return func(s Sale) bool { return s.SellerID == sellerID }
}
