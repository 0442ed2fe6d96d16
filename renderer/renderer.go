// Package renderer produces markdown reports over the dealership ledger.
// It is a presentation collaborator: it only reads the ledger's query API
// and never holds state of its own.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/dealership"
)

// Stock renders the given vehicles as a markdown table with a total value.
func Stock(vehicles []dealership.Vehicle) string {
	var b strings.Builder
	b.WriteString("# Available Stock\n\n")
	if len(vehicles) == 0 {
		b.WriteString("No vehicles in stock.\n")
		return b.String()
	}

	b.WriteString("| Plate | Model | Color | Price |\n")
	b.WriteString("| --- | --- | --- | ---: |\n")
	var total dealership.Money
	for _, v := range vehicles {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", v.Plate, v.Model, v.Color, v.Price)
		total = total.Add(v.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %d vehicles worth %s\n", len(vehicles), total)
	return b.String()
}

// Receipt renders a single recorded sale, resolving the vehicle and seller
// from the ledger for display.
func Receipt(l *dealership.Ledger, s dealership.Sale) string {
	var b strings.Builder
	b.WriteString("# Sale Recorded\n\n")
	fmt.Fprintf(&b, "- Receipt: %s\n", s.ID)
	fmt.Fprintf(&b, "- Date: %s\n", s.SoldAt.Format(time.DateTime))
	if v := l.FindVehicle(s.VehiclePlate); v != nil {
		fmt.Fprintf(&b, "- Vehicle: %s (%s) for %s\n", v.Model, v.Plate, v.Price)
	} else {
		fmt.Fprintf(&b, "- Vehicle: %s\n", s.VehiclePlate)
	}
	if seller := l.FindSeller(s.SellerID); seller != nil {
		fmt.Fprintf(&b, "- Seller: %s (%s)\n", seller.Name, seller.ID)
	} else {
		fmt.Fprintf(&b, "- Seller: %s\n", s.SellerID)
	}
	return b.String()
}

// Sales renders recorded sales as a markdown table, in the order given.
func Sales(l *dealership.Ledger, sales []dealership.Sale) string {
	var b strings.Builder
	b.WriteString("# Sales\n\n")
	if len(sales) == 0 {
		b.WriteString("No sales recorded.\n")
		return b.String()
	}

	b.WriteString("| Date | Plate | Model | Seller |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, s := range sales {
		model := s.VehiclePlate
		if v := l.FindVehicle(s.VehiclePlate); v != nil {
			model = v.Model
		}
		seller := s.SellerID
		if sl := l.FindSeller(s.SellerID); sl != nil {
			seller = fmt.Sprintf("%s (%s)", sl.Name, sl.ID)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.SoldAt.Format(time.DateTime), s.VehiclePlate, model, seller)
	}
	return b.String()
}

// SellerSales renders the sales of one seller as a markdown list.
func SellerSales(l *dealership.Ledger, seller dealership.Seller, sales []dealership.Sale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales by %s (%s)\n\n", seller.Name, seller.ID)
	if len(sales) == 0 {
		b.WriteString("No sales recorded.\n")
		return b.String()
	}
	for _, s := range sales {
		if v := l.FindVehicle(s.VehiclePlate); v != nil {
			fmt.Fprintf(&b, "- %s: %s sold %s (%s) for %s\n",
				s.SoldAt.Format(time.DateTime), seller.Name, v.Model, v.Plate, v.Price)
		} else {
			fmt.Fprintf(&b, "- %s: %s sold %s\n", s.SoldAt.Format(time.DateTime), seller.Name, s.VehiclePlate)
		}
	}
	return b.String()
}
