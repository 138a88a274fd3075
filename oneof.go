package formvalidation

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OneOf returns a rule that checks if a value is one of the allowed values.
// Empty input is vacuously valid.
func OneOf(name string, values ...any) Rule {
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	inner := validation.In(values...)
	return Rule{
		Name:    name,
		Message: fmt.Sprintf("Must be one of %s", strings.Join(want, ", ")),
		Check:   func(value any) bool { return inner.Validate(value) == nil },
		hint:    schemaHint{enum: values},
	}
}
