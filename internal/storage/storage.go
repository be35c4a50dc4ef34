package storage

import "errors"

// DateLayout is the zero-padded form reservation dates are stored in. Records
// compare lexicographically in this layout.
const DateLayout = "2006-01-02"

var (
	ErrReservationNotFound = errors.New("reservation not found")
)
