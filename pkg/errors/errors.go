package errors

import "fmt"

// ErrNotFound indicates a record is absent upstream, as opposed to a
// transport or backend failure.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// NewNotFound creates a not-found error for the given resource
func NewNotFound(resource, id string) *ErrNotFound {
	return &ErrNotFound{Resource: resource, ID: id}
}

// IsNotFound reports whether err is an ErrNotFound
func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
