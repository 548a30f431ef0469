package booking

import (
	"errors"
	"fmt"
)

// ErrNotAuthorized wraps a permission-denied response from the backend; the
// handlers map it to the localized "not authorized to complete booking"
// message.
var ErrNotAuthorized = errors.New("not authorized to complete booking")

// ErrInvalidStatus is returned when a status outside the three-value enum is
// submitted to the update path.
var ErrInvalidStatus = errors.New("invalid booking status")

// ValidationError is a field-level checkout rejection. Key names the
// localized message; Max is set only for the max-party-size violation so the
// message can carry the limit.
type ValidationError struct {
	Field string
	Key   string
	Max   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s", e.Field)
}
