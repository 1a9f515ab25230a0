package filter

import "fmt"

// InvalidParameterError is returned when a range-suffixed parameter carries
// a value that does not parse as a number. The parameter name is surfaced to
// the client so it can correct the exact input.
type InvalidParameterError struct {
	Parameter string
	Value     string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q", e.Value, e.Parameter)
}

// InvalidPaginationError is returned when page or page_size is not a
// positive integer.
type InvalidPaginationError struct {
	Parameter string
	Value     string
}

func (e *InvalidPaginationError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q", e.Value, e.Parameter)
}
