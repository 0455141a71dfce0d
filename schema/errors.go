package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for every schema failure mode. Match with errors.Is; the
// error returned by Compile additionally carries the offending record.
var (
	ErrMissingReturnArrow        = errors.New("expected a return declaration after '->'")
	ErrUnterminatedArgumentList  = errors.New("expected closing ')' for argument list")
	ErrDeprecatedLiteral         = errors.New("deprecated boolean literal, use True/False")
	ErrDuplicateKeywordMarker    = errors.New("keyword-only marker '*' appears more than once")
	ErrInPlaceSelfMissing        = errors.New("in-place operator needs a Tensor argument named self annotated as mutable")
	ErrInPlaceAnnotationMismatch = errors.New("in-place operator annotations must match between self and the corresponding return")
	ErrOutVariantWrongVariant    = errors.New("operators suffixed with _out must declare only the function variant")
)

// Error is the failure reported by Compile. It wraps the underlying parse or
// validation error with the raw record text and whatever declaration fields
// had been assembled before the failure, for diagnosis.
type Error struct {
	// Record is the offending record's signature text.
	Record string

	// Partial holds the declaration fields accumulated before the failure.
	Partial *Declaration

	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("schema record %q: %v", e.Record, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// recordError wraps err with the record context unless it already is one.
func recordError(record string, partial *Declaration, err error) error {
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Record: record, Partial: partial, Err: err}
}
