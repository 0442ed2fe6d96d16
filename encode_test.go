package dealership

import (
	"strings"
	"testing"
)

const testCatalogJSONL = `{"record":"vehicle","plate":"AA-10-BB","model":"Fiat Panda","color":"White","price":7500,"currency":"EUR"}
{"record":"vehicle","plate":"CC-20-DD","model":"VW Golf","color":"Black","price":14500,"currency":"EUR"}
{"record":"vehicle","plate":"EE-30-FF","model":"Renault Clio","color":"Blue","price":9800,"currency":"EUR"}
{"record":"seller","id":"S001","name":"Marina"}
{"record":"seller","id":"S002","name":"Carlos"}
`

func TestDecodeCatalog(t *testing.T) {
	l, err := DecodeCatalog(strings.NewReader(testCatalogJSONL))
	if err != nil {
		t.Fatalf("DecodeCatalog() failed: %v", err)
	}

	got := plates(l.AvailableStock())
	want := []string{"AA-10-BB", "CC-20-DD", "EE-30-FF"}
	if !equalStrings(got, want) {
		t.Errorf("decoded stock = %v, want %v", got, want)
	}

	v := l.FindVehicle("CC-20-DD")
	if v == nil {
		t.Fatal("FindVehicle(CC-20-DD) = nil")
	}
	if v.Model != "VW Golf" || v.Color != "Black" || !v.Price.Equal(EUR(14500)) {
		t.Errorf("decoded vehicle = %+v", v)
	}

	s := l.FindSeller("S001")
	if s == nil || s.Name != "Marina" {
		t.Errorf("decoded seller = %+v, want Marina", s)
	}
}

func TestDecodeCatalog_SkipsEmptyLines(t *testing.T) {
	in := "\n" + testCatalogJSONL + "\n\n"
	l, err := DecodeCatalog(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeCatalog() failed: %v", err)
	}
	if got := len(l.AvailableStock()); got != 3 {
		t.Errorf("decoded %d vehicles, want 3", got)
	}
}

func TestDecodeCatalog_Errors(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{"not json", `not json at all`},
		{"unknown record type", `{"record":"sale","plate":"AA-10-BB"}`},
		{"vehicle without plate", `{"record":"vehicle","model":"Fiat Panda"}`},
		{"seller without id", `{"record":"seller","name":"Marina"}`},
		{"negative price", `{"record":"vehicle","plate":"AA-10-BB","model":"Fiat Panda","price":-1,"currency":"EUR"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeCatalog(strings.NewReader(tc.line + "\n")); err == nil {
				t.Errorf("DecodeCatalog(%q) succeeded, want error", tc.line)
			}
		})
	}
}

func TestEncodeCatalog_RoundTrip(t *testing.T) {
	l := testLedger()

	var b strings.Builder
	if err := EncodeCatalog(&b, l); err != nil {
		t.Fatalf("EncodeCatalog() failed: %v", err)
	}
	if got := b.String(); got != testCatalogJSONL {
		t.Errorf("EncodeCatalog() =\n%s\nwant\n%s", got, testCatalogJSONL)
	}

	back, err := DecodeCatalog(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeCatalog(EncodeCatalog()) failed: %v", err)
	}
	if got := plates(back.AvailableStock()); !equalStrings(got, plates(l.AvailableStock())) {
		t.Errorf("round trip stock = %v", got)
	}
}

func TestEncodeCatalog_IgnoresSales(t *testing.T) {
	l := testLedger()
	if _, err := l.RecordSale("CC-20-DD", "S001"); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := EncodeCatalog(&b, l); err != nil {
		t.Fatal(err)
	}
	// The whole catalog is written, sold vehicles included, and no sale line.
	if got := b.String(); got != testCatalogJSONL {
		t.Errorf("EncodeCatalog() after a sale =\n%s\nwant the untouched catalog", got)
	}
}
