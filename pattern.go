package formvalidation

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MinLength returns a rule that checks if a string's rune length is at least
// n. Empty input is vacuously valid so the rule composes with [Required].
func MinLength(n int) Rule {
	inner := validation.RuneLength(n, 0)
	return Rule{
		Name:    fmt.Sprintf("minLength:%d", n),
		Message: fmt.Sprintf("Must be at least %d characters", n),
		Check:   func(value any) bool { return inner.Validate(value) == nil },
		hint:    schemaHint{minLen: &n},
	}
}

// MaxLength returns a rule that checks if a string's rune length is at most n.
func MaxLength(n int) Rule {
	inner := validation.RuneLength(0, n)
	return Rule{
		Name:    fmt.Sprintf("maxLength:%d", n),
		Message: fmt.Sprintf("Must be no more than %d characters", n),
		Check:   func(value any) bool { return inner.Validate(value) == nil },
		hint:    schemaHint{maxLen: &n},
	}
}

// Pattern returns a rule that checks a string against re, failing with
// message. Empty input is vacuously valid.
func Pattern(name string, re *regexp.Regexp, message string) Rule {
	inner := validation.Match(re)
	return Rule{
		Name:    name,
		Message: message,
		Check:   func(value any) bool { return inner.Validate(value) == nil },
		hint:    schemaHint{pattern: re.String()},
	}
}
