package consultation

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("required field is missing")

// MissingField wraps ErrMissingField with the offending field name.
func MissingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
