package ipaparser

import "fmt"

// FeatureError reports that a caller supplied a string that does not name a
// known feature. Grounded on danmysak/ipa-parser's
// _code/exceptions/feature.py.
type FeatureError struct {
	Value string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("invalid feature: %q", e.Value)
}
