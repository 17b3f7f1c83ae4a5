package usecase

import (
	"errors"
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors carries every failing field at once so the storefront can
// render the whole form feedback in a single round trip.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	ok := errors.As(err, &ve)
	return ve, ok
}

var (
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrInvalidLeadStatus   = errors.New("invalid lead status")
)
