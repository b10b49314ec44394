package ipaparser

import (
	"fmt"
	"strings"
)

// BracketStrategyError reports that a Config's Brackets value does not name
// a recognized strategy. Grounded on danmysak/ipa-parser's
// _code/exceptions/bracket_strategy.py.
type BracketStrategyError struct {
	Value string
	Valid []string
}

func (e *BracketStrategyError) Error() string {
	return fmt.Sprintf("%q is not a valid strategy; use one of the following: %s", e.Value, strings.Join(e.Valid, "/"))
}
