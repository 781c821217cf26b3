package fsmbin

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedModel marks structural violations: table length mismatch,
	// out of range state or initial state, unparsable fields.
	ErrMalformedModel = errors.New("malformed model")

	// ErrInvalidBit marks a bit source symbol other than 0 or 1.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrIncompatibleComparison marks comparisons of machines whose
	// probability scales differ. Compare reports it as a Different result.
	ErrIncompatibleComparison = errors.New("incompatible comparison")
)

func malformedf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrMalformedModel)
}

func invalidBitf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidBit)
}
