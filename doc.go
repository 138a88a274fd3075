// Package formvalidation is a field-level validation engine for forms.
//
// Validation is driven by two read-mostly registries: a rule registry
// mapping names to [Rule] predicates, and a field-configuration registry
// mapping field names to [FieldConfig] bundles. Both come pre-seeded with
// built-ins for common identity, contact, and address fields, and both can
// be extended or overridden by registration:
//
//	formvalidation.RegisterRule(formvalidation.Custom(
//	    "abn", "Must be a valid ABN", isABN))
//
// Validate a value against a registered configuration with a single call:
//
//	res := formvalidation.ValidateField("email", "user@example.com")
//	if !res.Valid {
//	    fmt.Println(res.Errors)
//	}
//
// A field name with no registered configuration is always valid; absence of
// configuration is a legal state, not an error.
//
// Sub-packages:
//   - field – per-input interaction state machine: touch/focus tracking,
//     autofill detection with delayed confirmation, and error display gating
//   - transform – string value transforms wired into field configurations
//   - openapi – exports a registry's field configurations as an OpenAPI 3
//     object schema
package formvalidation
