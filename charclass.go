package formvalidation

import (
	"regexp"

	"github.com/asaskevich/govalidator"
)

var (
	nameRegexp         = regexp.MustCompile(`^[\p{L}][\p{L} '-]*$`)
	streetRegexp       = regexp.MustCompile(`^[0-9\p{L} '/.-]+$`)
	containsNumRegexp  = regexp.MustCompile(`[0-9]`)
	startsWithNumRegex = regexp.MustCompile(`^[0-9]`)
)

// Name is a validation rule for person and place names: letters, spaces,
// hyphens, and apostrophes. Empty input is vacuously valid.
var Name = Rule{
	Name:    "name",
	Message: "Only letters, spaces, hyphens and apostrophes are allowed",
	Check:   stringCheck(nameRegexp.MatchString),
	hint:    schemaHint{pattern: nameRegexp.String()},
}

// Numeric is a validation rule that checks if a string contains only digits.
var Numeric = Rule{
	Name:    "numeric",
	Message: "Must contain only numbers",
	Check:   stringCheck(govalidator.IsNumeric),
	hint:    schemaHint{pattern: "^[0-9]*$"},
}

// Alphanumeric is a validation rule that checks if a string contains only
// letters and digits.
var Alphanumeric = Rule{
	Name:    "alphanumeric",
	Message: "Only letters and numbers are allowed",
	Check:   stringCheck(govalidator.IsAlphanumeric),
	hint:    schemaHint{pattern: "^[a-zA-Z0-9]*$"},
}

// ContainsNumber is a validation rule that checks if a string contains at
// least one digit. Used with [StartsWithNumber] for street-number fields;
// both messages are reported when both fail.
var ContainsNumber = Rule{
	Name:    "containsNumber",
	Message: "Must contain a number",
	Check:   stringCheck(containsNumRegexp.MatchString),
	hint:    schemaHint{desc: "Must contain a number."},
}

// StartsWithNumber is a validation rule that checks if a string starts with
// a digit.
var StartsWithNumber = Rule{
	Name:    "startsWithNumber",
	Message: "Should start with a number",
	Check:   stringCheck(startsWithNumRegex.MatchString),
	hint:    schemaHint{desc: "Should start with a number."},
}

// stringCheck lifts a string predicate into a rule predicate that is
// vacuously true on blank input and false for non-string values.
func stringCheck(f func(string) bool) func(any) bool {
	return func(value any) bool {
		if isBlank(value) {
			return true
		}
		s, ok := value.(string)
		if !ok {
			return false
		}
		return f(s)
	}
}
