package strutil

import (
	"strings"

	"github.com/danmysak/ipaparser/internal/ipadata"
)

// Substitute applies every (from, to) replacement in table order, matching
// the teacher's preference for explicit ordered passes over its data.
func Substitute(s string, substitutions []ipadata.Substitution) string {
	for _, sub := range substitutions {
		s = strings.ReplaceAll(s, sub.From, sub.To)
	}
	return s
}
