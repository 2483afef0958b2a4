package instance

import "fmt"

// MissingFieldError reports a scalar or array that the instance does not declare
type MissingFieldError struct {
	Field string
}

func (err MissingFieldError) Error() string {
	return fmt.Sprintf("field \"%v\" is missing from instance", err.Field)
}

// ShapeMismatchError reports an array whose dimensions disagree with the declared counts.
// Path locates the offending sub-array (e.g. "[2][0]"), Expected and Actual are its lengths
type ShapeMismatchError struct {
	Field    string
	Path     string
	Expected int
	Actual   int
}

func (err ShapeMismatchError) Error() string {
	return fmt.Sprintf("field \"%v%v\" has length %d, expected %d", err.Field, err.Path, err.Actual, err.Expected)
}

// InvalidValueError reports a value outside of its admissible range
type InvalidValueError struct {
	Field  string
	Path   string
	Value  int
	Reason string
}

func (err InvalidValueError) Error() string {
	return fmt.Sprintf("field \"%v%v\" has invalid value %d: %v", err.Field, err.Path, err.Value, err.Reason)
}
