package formvalidation

import (
	"regexp"
	"time"
)

// FieldType tags a field configuration with the kind of input it validates.
// The type selects default autofill content patterns and the schema format
// used by the openapi sub-package.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeEmail    FieldType = "email"
	TypePassword FieldType = "password"
	TypePhone    FieldType = "phone"
	TypeName     FieldType = "name"
	TypeStreet   FieldType = "street"
	TypeUnit     FieldType = "unit"
	TypeCity     FieldType = "city"
	TypePostcode FieldType = "postcode"
	TypeState    FieldType = "state"
)

// FieldConfig bundles everything needed to validate one logical input:
// an ordered rule list, an optional value transform applied before the rules
// run, and an optional autofill detection override. Configurations are
// registered once and read-only afterward.
type FieldConfig struct {
	Name      string
	Type      FieldType
	Required  bool
	Rules     []Rule
	Transform func(value any) any

	// Autofill overrides the detection defaults derived from Type.
	Autofill *AutofillConfig
}

// StringTransform adapts a string transform for use as a [FieldConfig]
// transform. Non-string values pass through unchanged.
func StringTransform(f func(string) string) func(any) any {
	return func(value any) any {
		if s, ok := value.(string); ok {
			return f(s)
		}
		return value
	}
}

// Autofill detection defaults: a bulk fill grows the value by more than the
// threshold into a never-focused field, and must still look like content for
// the field's type.
const (
	DefaultMinChangeThreshold = 2
	DefaultTouchedDelay       = 1500 * time.Millisecond
)

// AutofillConfig tunes the heuristic that distinguishes a bulk external fill
// from manual keystrokes. When a field configuration carries none, defaults
// are derived from its FieldType via [DefaultAutofillConfig].
type AutofillConfig struct {
	// MinChangeThreshold is the length growth a change must exceed to be
	// considered a bulk fill.
	MinChangeThreshold int

	// TouchedDelay is how long after detection the field is deemed touched,
	// equivalent to a manual blur.
	TouchedDelay time.Duration

	// ContentPatterns must all match the new value for detection to fire.
	// Empty means any content matches.
	ContentPatterns []*regexp.Regexp
}

var autofillPatterns = map[FieldType][]*regexp.Regexp{
	TypeEmail:    {regexp.MustCompile(`@`), regexp.MustCompile(`\.`)},
	TypePassword: {uppercaseRegexp, lowercaseRegexp, digitRegexp},
	TypePhone:    {phoneRegexp},
	TypeName:     {nameRegexp},
}

// DefaultAutofillConfig returns the autofill detection settings for a field
// type. Types without specific content patterns accept any content.
func DefaultAutofillConfig(ft FieldType) AutofillConfig {
	return AutofillConfig{
		MinChangeThreshold: DefaultMinChangeThreshold,
		TouchedDelay:       DefaultTouchedDelay,
		ContentPatterns:    autofillPatterns[ft],
	}
}
