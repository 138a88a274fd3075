package formvalidation

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// emailRegexp requires a local part, an @, and a dotted domain. Deliberately
// simple: it rejects obvious typos ("a@b", "a.com") without chasing the full
// RFC grammar, which over-accepts for form input.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var emailMatch = validation.Match(emailRegexp)

// Email is a validation rule that checks if a value looks like an email
// address. Empty input is vacuously valid; [Required] owns emptiness.
var Email = Rule{
	Name:    "email",
	Message: "Please enter a valid email address",
	Check:   func(value any) bool { return emailMatch.Validate(value) == nil },
	hint:    schemaHint{format: "email", pattern: emailRegexp.String()},
}
