package formvalidation

import (
	"regexp"
	"unicode/utf8"
)

const minPasswordLength = 8

var (
	uppercaseRegexp = regexp.MustCompile(`[A-Z]`)
	lowercaseRegexp = regexp.MustCompile(`[a-z]`)
	digitRegexp     = regexp.MustCompile(`[0-9]`)
	specialRegexp   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// StrongPassword is a validation rule that checks if a password has at least
// 8 characters with at least one uppercase letter, one lowercase letter, one
// digit, and one special character. Empty input is vacuously valid.
var StrongPassword = Rule{
	Name:    "strongPassword",
	Message: "Password must be at least 8 characters with uppercase, lowercase, number and special character",
	Check:   strongPasswordCheck,
	hint: schemaHint{
		format: "password",
		desc:   "At least 8 characters with uppercase, lowercase, number and special character.",
	},
}

func strongPasswordCheck(value any) bool {
	s, ok := value.(string)
	if !ok {
		return value == nil
	}
	if s == "" {
		return true
	}
	return utf8.RuneCountInString(s) >= minPasswordLength &&
		uppercaseRegexp.MatchString(s) &&
		lowercaseRegexp.MatchString(s) &&
		digitRegexp.MatchString(s) &&
		specialRegexp.MatchString(s)
}
