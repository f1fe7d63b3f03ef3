package prediction

import (
	"errors"
	"fmt"

	"fraudcheck/internal/services/ml"
)

// Service errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// InputError reports missing or malformed form fields.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Kind classifies err for metrics.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return ErrorKindInput
	case errors.Is(err, ml.ErrUnknownCategory):
		return ErrorKindUnknownCategory
	case errors.Is(err, ml.ErrFeatureShape):
		return ErrorKindFeatureShape
	default:
		return ErrorKindInternal
	}
}

// Message converts err into the single line shown on the page.
func Message(err error) string {
	var unknown *ml.UnknownCategoryError
	switch {
	case errors.As(err, &unknown):
		return fmt.Sprintf("Error: %q is not a known %s", unknown.Value, unknown.Feature)
	case errors.Is(err, ml.ErrFeatureShape):
		return "Error: the scoring model could not process this transaction"
	default:
		return "Error: " + err.Error()
	}
}
