package ipadata

import "fmt"

// DataError is raised only while loading the static tables, when a table is
// malformed or internally ambiguous (spec.md §7). It is fatal for the
// process: callers are not expected to recover from it.
type DataError struct {
	Message string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("ipadata: %s", e.Message)
}

func newDataError(format string, args ...any) *DataError {
	return &DataError{Message: fmt.Sprintf(format, args...)}
}
