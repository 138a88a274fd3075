package formvalidation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Required is a validation rule that checks if a value is present. Strings
// are trimmed first, so whitespace-only input does not count as filled.
// Every other rule in this package is vacuously true on empty input so that
// Required alone owns emptiness and the rules compose without duplicating
// the check.
var Required = Rule{
	Name:    "required",
	Message: "This field is required",
	Check:   requiredCheck,
	hint:    schemaHint{required: true},
}

func requiredCheck(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	v, isNil := validation.Indirect(value)
	return !isNil && !validation.IsEmpty(v)
}

// isBlank reports whether a value is absent for the purpose of the vacuous
// checks: nil, an empty or whitespace-only string, or an ozzo-empty value.
func isBlank(value any) bool {
	return !requiredCheck(value)
}
