package strutil

import (
	"fmt"
	"strings"

	"github.com/danmysak/ipaparser/internal/ipadata"
)

// BracketStrategy controls how inner (optional-pronunciation) brackets are
// handled before parsing, per spec.md §4.1.
type BracketStrategy string

const (
	Keep   BracketStrategy = "keep"
	Expand BracketStrategy = "expand"
	Strip  BracketStrategy = "strip"
)

// ApplyBracketStrategy rewrites s according to strategy using the catalog's
// inner bracket pairs. Strip leaves s untouched if its brackets are not
// well-balanced, per spec.md §4.1.
func ApplyBracketStrategy(s string, strategy BracketStrategy, inner []ipadata.InnerBracket) (string, error) {
	switch strategy {
	case Keep:
		return s, nil
	case Expand:
		return expandBrackets(s, inner), nil
	case Strip:
		return stripBrackets(s, inner), nil
	default:
		return "", fmt.Errorf("strutil: unrecognized bracket strategy: %q", strategy)
	}
}

func expandBrackets(s string, inner []ipadata.InnerBracket) string {
	drop := make(map[rune]bool, len(inner)*2)
	for _, b := range inner {
		drop[firstRune(b.Open)] = true
		drop[firstRune(b.Close)] = true
	}
	var b strings.Builder
	for _, r := range s {
		if !drop[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripBrackets(s string, inner []ipadata.InnerBracket) string {
	openFor := make(map[rune]rune, len(inner)) // close -> open
	isOpen := make(map[rune]bool, len(inner))
	for _, b := range inner {
		o, c := firstRune(b.Open), firstRune(b.Close)
		openFor[c] = o
		isOpen[o] = true
	}
	runes := []rune(s)
	type frame struct {
		open rune
		idx  int
	}
	var stack []frame
	remove := make([]bool, len(runes))
	balanced := true
loop:
	for i, r := range runes {
		switch {
		case isOpen[r]:
			stack = append(stack, frame{open: r, idx: i})
		default:
			if want, isClose := openFor[r]; isClose {
				if len(stack) == 0 || stack[len(stack)-1].open != want {
					balanced = false
					break loop
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for j := top.idx; j <= i; j++ {
					remove[j] = true
				}
			}
		}
	}
	if !balanced || len(stack) != 0 {
		return s
	}
	var b strings.Builder
	for i, r := range runes {
		if !remove[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
