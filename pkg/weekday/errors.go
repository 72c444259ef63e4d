package weekday

import "errors"

// ErrInvalidOrdinal is returned when an ordinal outside 1..7 is given to FromOrdinal.
var ErrInvalidOrdinal = errors.New("weekday: ordinal out of range")
