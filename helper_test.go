package dealership

import "time"

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// testVehicles is the reference vehicle catalog used across tests.
func testVehicles() []Vehicle {
	return []Vehicle{
		{Plate: "AA-10-BB", Model: "Fiat Panda", Color: "White", Price: EUR(7500)},
		{Plate: "CC-20-DD", Model: "VW Golf", Color: "Black", Price: EUR(14500)},
		{Plate: "EE-30-FF", Model: "Renault Clio", Color: "Blue", Price: EUR(9800)},
	}
}

// testSellers is the reference seller catalog used across tests.
func testSellers() []Seller {
	return []Seller{
		{ID: "S001", Name: "Marina"},
		{ID: "S002", Name: "Carlos"},
	}
}

// testLedger creates a ledger over the reference catalog with a fixed clock
// that advances one minute per sale.
func testLedger() *Ledger {
	l := NewLedger(testVehicles(), testSellers())
	l.SetClock(testClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))
	return l
}

// testClock returns a clock that yields start and advances one minute per call.
func testClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(time.Minute)
		return now
	}
}
