package ipaparser

import "fmt"

// IncompatibleTypesError reports that two transcriptions of different
// bracket types were concatenated. Grounded on danmysak/ipa-parser's
// _code/exceptions/incompatible_types.py.
type IncompatibleTypesError struct {
	Left, Right string
}

func (e *IncompatibleTypesError) Error() string {
	return fmt.Sprintf("%q and %q have incompatible types and cannot be concatenated", e.Left, e.Right)
}
