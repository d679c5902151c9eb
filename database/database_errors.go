package database

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks a persistence failure that is safe to retry:
// the failed operation rolled back and left no partial writes.
var ErrStoreUnavailable = errors.New("store unavailable")

func Unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
