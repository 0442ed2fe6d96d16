package dealership

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordType is a typed string identifying a catalog record line.
type RecordType string

// Record types used in catalog files.
const (
	RecVehicle RecordType = "vehicle"
	RecSeller  RecordType = "seller"
)

// vehicleRec is a specialized struct for the JSONL form of a Vehicle, with
// the price split into an exact decimal amount and a currency code.
type vehicleRec struct {
	Record   RecordType      `json:"record"`
	Plate    string          `json:"plate"`
	Model    string          `json:"model"`
	Color    string          `json:"color"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

func (r vehicleRec) Vehicle() Vehicle {
	return Vehicle{Plate: r.Plate, Model: r.Model, Color: r.Color, Price: M(r.Price, r.Currency)}
}

// sellerRec is a specialized struct for the JSONL form of a Seller.
type sellerRec struct {
	Record RecordType `json:"record"`
	ID     string     `json:"id"`
	Name   string     `json:"name"`
}

func (r sellerRec) Seller() Seller {
	return Seller{ID: r.ID, Name: r.Name}
}

// DecodeCatalog reads a stream of JSONL catalog records, one vehicle or
// seller per line, and returns a fresh Ledger over them. Line order defines
// catalog order. A vehicle with a negative price is rejected.
func DecodeCatalog(r io.Reader) (*Ledger, error) {
	var vehicles []Vehicle
	var sellers []Seller

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case RecVehicle:
			var rec vehicleRec
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("invalid vehicle record %q: %w", string(lineBytes), err)
			}
			if rec.Plate == "" {
				return nil, fmt.Errorf("vehicle record %q has no plate", string(lineBytes))
			}
			if rec.Price.IsNegative() {
				return nil, fmt.Errorf("vehicle %q has a negative price %s", rec.Plate, rec.Price)
			}
			vehicles = append(vehicles, rec.Vehicle())
		case RecSeller:
			var rec sellerRec
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("invalid seller record %q: %w", string(lineBytes), err)
			}
			if rec.ID == "" {
				return nil, fmt.Errorf("seller record %q has no id", string(lineBytes))
			}
			sellers = append(sellers, rec.Seller())
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read catalog: %w", err)
	}

	return NewLedger(vehicles, sellers), nil
}

// EncodeCatalog writes the ledger's catalog in canonical JSONL form:
// vehicles first, then sellers, each in catalog order, one record per line.
// Recorded sales are deliberately not written; the ledger has no durability.
func EncodeCatalog(w io.Writer, l *Ledger) error {
	for v := range l.Vehicles() {
		rec := vehicleRec{
			Record:   RecVehicle,
			Plate:    v.Plate,
			Model:    v.Model,
			Color:    v.Color,
			Price:    v.Price.value,
			Currency: v.Price.cur,
		}
		if err := encodeLine(w, rec); err != nil {
			return fmt.Errorf("could not encode vehicle %q: %w", v.Plate, err)
		}
	}
	for s := range l.Sellers() {
		rec := sellerRec{Record: RecSeller, ID: s.ID, Name: s.Name}
		if err := encodeLine(w, rec); err != nil {
			return fmt.Errorf("could not encode seller %q: %w", s.ID, err)
		}
	}
	return nil
}

func encodeLine(w io.Writer, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
