package mlut

import "errors"

var (
	// ErrMalformedColor is returned for colours that are not 6 or 8 hex digits
	// (after an optional '#'), or numeric colours without 3 or 4 channels.
	ErrMalformedColor = errors.New("malformed color")

	// ErrDimensionMismatch is returned when colour pairs and segments differ in length.
	ErrDimensionMismatch = errors.New("color pairs and segments differ in length")

	// ErrDegenerateSegment is returned for a segment whose start is not below its end.
	ErrDegenerateSegment = errors.New("degenerate segment")

	// ErrInvalidResolution is returned for a resolution below 1.
	ErrInvalidResolution = errors.New("resolution must be greater than zero")
)
