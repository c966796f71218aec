package parsearch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrNilCompare is returned by NewFunc when no comparison function is given.
	ErrNilCompare = errors.New("compare function must not be nil")
)

// ErrInvalidVariant indicates an unknown search variant.
type ErrInvalidVariant struct {
	Variant string
}

func (e *ErrInvalidVariant) Error() string {
	return fmt.Sprintf("invalid variant: %q", e.Variant)
}
