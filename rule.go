package formvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Rule is a named validation predicate with a fixed failure message.
// Check reports whether a value passes; it must be free of side effects.
// Rules are immutable value objects: use [Rule.WithMessage] to derive a
// variant rather than mutating a registered rule in place.
type Rule struct {
	Name    string
	Message string
	Check   func(value any) bool

	hint schemaHint
}

// schemaHint carries the OpenAPI annotations a rule contributes when a
// registry is exported as a schema document.
type schemaHint struct {
	required bool
	minLen   *int
	maxLen   *int
	pattern  string
	format   string
	enum     []any
	desc     string
}

// Custom returns a rule that uses check as its predicate and message as both
// its failure message and its schema description.
func Custom(name, message string, check func(value any) bool) Rule {
	return Rule{
		Name:    name,
		Message: message,
		Check:   check,
		hint:    schemaHint{desc: message},
	}
}

// WithMessage returns a copy of the rule with a different failure message.
// Built-in field configurations use this to attach field-specific wording
// ("Email is required") to shared rules.
func (r Rule) WithMessage(message string) Rule {
	r.Message = message
	return r
}

// run invokes the predicate under a panic barrier so a faulty rule cannot
// abort evaluation of its siblings. A nil predicate passes.
func (r Rule) run(value any) (failed bool, msg string) {
	defer func() {
		if recover() != nil {
			failed = true
			msg = "Validation error: " + r.Message
		}
	}()
	if r.Check == nil || r.Check(value) {
		return false, ""
	}
	return true, r.Message
}

// Describe writes the rule's schema annotations onto ref, appending name to
// schema.Required when the rule marks the field required. Rules without
// annotations write nothing.
func (r Rule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) {
	h := r.hint
	if h.required {
		schema.Required = append(schema.Required, name)
	}
	if h.minLen != nil {
		f := float64(*h.minLen)
		ref.Value.Min = &f
	}
	if h.maxLen != nil {
		f := float64(*h.maxLen)
		ref.Value.Max = &f
	}
	if h.pattern != "" {
		ref.Value.Pattern = h.pattern
	}
	if h.format != "" {
		ref.Value.Format = h.format
	}
	if len(h.enum) > 0 {
		ref.Value.Enum = h.enum
	}
	if h.desc != "" {
		if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
			ref.Value.Description += " "
		}
		ref.Value.Description += h.desc
	}
}
