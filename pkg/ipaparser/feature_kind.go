package ipaparser

import "fmt"

// FeatureKindError reports that a caller supplied a string that does not
// name a known feature kind. Grounded on danmysak/ipa-parser's
// _code/exceptions/feature_kind.py.
type FeatureKindError struct {
	Value string
}

func (e *FeatureKindError) Error() string {
	return fmt.Sprintf("invalid feature kind: %q", e.Value)
}
