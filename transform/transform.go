// Package transform provides string value transforms applied to field input
// before validation rules run.
package transform

import (
	"regexp"
	"strings"
)

// TrimSpace removes leading and trailing whitespace.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// Lower lowercases the string.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper uppercases the string.
func Upper(s string) string {
	return strings.ToUpper(s)
}

var innerSpaceRegexp = regexp.MustCompile(`\s+`)

// CollapseSpaces trims the string and collapses runs of inner whitespace to
// a single space.
func CollapseSpaces(s string) string {
	return innerSpaceRegexp.ReplaceAllString(strings.TrimSpace(s), " ")
}

var nonDigitRegexp = regexp.MustCompile(`[^0-9]`)

// Digits strips everything but digits, keeping a leading plus if present.
func Digits(s string) string {
	s = strings.TrimSpace(s)
	plus := strings.HasPrefix(s, "+")
	s = nonDigitRegexp.ReplaceAllString(s, "")
	if plus {
		return "+" + s
	}
	return s
}

// Chain composes transforms left to right.
func Chain(fns ...func(string) string) func(string) string {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}
