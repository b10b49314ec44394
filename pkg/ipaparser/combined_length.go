package ipaparser

import "fmt"

// CombinedLengthError reports that a requested combined sound sequence
// contained fewer than two members. Grounded on danmysak/ipa-parser's
// _code/exceptions/combined_length.py.
type CombinedLengthError struct {
	Sequence []string
}

func (e *CombinedLengthError) Error() string {
	if len(e.Sequence) == 0 {
		return "a sound sequence to be combined must contain at least 2 elements (got 0)"
	}
	return fmt.Sprintf("a sound sequence to be combined must contain at least 2 elements (got %d: %q)", len(e.Sequence), e.Sequence[0])
}
