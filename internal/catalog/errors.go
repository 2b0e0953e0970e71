package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when a position falls outside the catalog.
var ErrInvalidIndex = errors.New("invalid catalog index")

// IndexError reports the rejected position and the catalog length at the
// time of the call. It unwraps to ErrInvalidIndex.
type IndexError struct {
	Position int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: position %d, catalog has %d books", ErrInvalidIndex, e.Position, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}
