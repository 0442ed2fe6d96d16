package dealership

import (
	"errors"
	"fmt"
)

// SaleErrorCode categorizes the ways RecordSale can fail.
type SaleErrorCode string

const (
	// ErrCodeUnknownVehicle indicates the plate does not exist in the catalog.
	ErrCodeUnknownVehicle SaleErrorCode = "UNKNOWN_VEHICLE"

	// ErrCodeAlreadySold indicates the plate already has a recorded sale.
	ErrCodeAlreadySold SaleErrorCode = "ALREADY_SOLD"

	// ErrCodeUnknownSeller indicates the seller id does not exist.
	ErrCodeUnknownSeller SaleErrorCode = "UNKNOWN_SELLER"
)

// SaleError is the only error kind raised by the ledger, and only from
// RecordSale. It carries the offending identifiers so a caller can branch on
// the cause and report it without re-parsing the message.
type SaleError struct {
	Code     SaleErrorCode
	Plate    string
	SellerID string
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	switch e.Code {
	case ErrCodeUnknownVehicle:
		return fmt.Sprintf("%s: vehicle with plate %q does not exist", e.Code, e.Plate)
	case ErrCodeAlreadySold:
		return fmt.Sprintf("%s: vehicle %q is already sold", e.Code, e.Plate)
	case ErrCodeUnknownSeller:
		return fmt.Sprintf("%s: seller %q does not exist", e.Code, e.SellerID)
	default:
		return fmt.Sprintf("%s: plate=%q seller=%q", e.Code, e.Plate, e.SellerID)
	}
}

// IsUnknownVehicle reports whether err is a SaleError for a plate missing
// from the catalog. Uses errors.As to handle wrapped errors.
func IsUnknownVehicle(err error) bool { return hasCode(err, ErrCodeUnknownVehicle) }

// IsAlreadySold reports whether err is a SaleError for a plate that already
// has a recorded sale. Uses errors.As to handle wrapped errors.
func IsAlreadySold(err error) bool { return hasCode(err, ErrCodeAlreadySold) }

// IsUnknownSeller reports whether err is a SaleError for an unknown seller
// id. Uses errors.As to handle wrapped errors.
func IsUnknownSeller(err error) bool { return hasCode(err, ErrCodeUnknownSeller) }

func hasCode(err error, code SaleErrorCode) bool {
	var se *SaleError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

func newUnknownVehicleError(plate string) *SaleError {
	return &SaleError{Code: ErrCodeUnknownVehicle, Plate: plate}
}

func newAlreadySoldError(plate string) *SaleError {
	return &SaleError{Code: ErrCodeAlreadySold, Plate: plate}
}

func newUnknownSellerError(sellerID string) *SaleError {
	return &SaleError{Code: ErrCodeUnknownSeller, SellerID: sellerID}
}
