package strutil

import (
	"strings"
	"unicode/utf8"
)

// CombineTies inserts mainTie between the members of every sequence found
// (as a literal concatenation) in s, skipping an occurrence whose final
// component is itself followed by a further (non-tie) combining codepoint,
// per spec.md §4.1: such a codepoint would belong to, and shift the
// meaning of, that final base letter.
func CombineTies(s string, sequences [][]string, mainTie string, ties map[string]struct{}) string {
	for _, members := range sequences {
		s = combineOne(s, members, mainTie, ties)
	}
	return s
}

func combineOne(s string, members []string, mainTie string, ties map[string]struct{}) string {
	concat := strings.Join(members, "")
	if concat == "" {
		return s
	}
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(s[i:], concat)
		if idx < 0 {
			b.WriteString(s[i:])
			break
		}
		start := i + idx
		b.WriteString(s[i:start])
		end := start + len(concat)
		blocked := false
		if end < len(s) {
			r, _ := utf8.DecodeRuneInString(s[end:])
			if IsCombiningRune(r) {
				if _, isTie := ties[string(r)]; !isTie {
					blocked = true
				}
			}
		}
		if blocked {
			b.WriteString(concat)
		} else {
			for mi, member := range members {
				b.WriteString(member)
				if mi < len(members)-1 {
					b.WriteString(mainTie)
				}
			}
		}
		i = end
	}
	return b.String()
}
