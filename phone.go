package formvalidation

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// phoneRegexp is tolerant by design: an optional leading plus, then digits
// mixed with the separators people actually type (spaces, dots, dashes,
// parentheses). Strict E.164 would reject most hand-entered numbers.
var phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9\s().-]{4,}$`)

var phoneMatch = validation.Match(phoneRegexp)

// Phone is a validation rule that checks if a value looks like a phone
// number. Empty input is vacuously valid.
var Phone = Rule{
	Name:    "phone",
	Message: "Please enter a valid phone number",
	Check:   func(value any) bool { return phoneMatch.Validate(value) == nil },
	hint:    schemaHint{pattern: phoneRegexp.String()},
}
