package formvalidation

import (
	"github.com/Gobd/formvalidation/transform"
)

// builtinRules returns the rules every new registry is seeded with.
func builtinRules() []Rule {
	return []Rule{
		Required,
		Email,
		Phone,
		StrongPassword,
		Name,
		Numeric,
		Alphanumeric,
		ContainsNumber,
		StartsWithNumber,
	}
}

// builtinConfigs returns the field configurations every new registry is
// seeded with: common identity, contact, and address fields. Each declares
// its required rule first so the emptiness message surfaces before format
// messages.
func builtinConfigs() []FieldConfig {
	trim := StringTransform(transform.TrimSpace)
	trimCollapse := StringTransform(transform.CollapseSpaces)

	return []FieldConfig{
		{
			Name:     "email",
			Type:     TypeEmail,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("Email is required"),
				Email,
				MaxLength(254),
			},
			Transform: StringTransform(transform.Chain(transform.TrimSpace, transform.Lower)),
		},
		{
			Name:     "password",
			Type:     TypePassword,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("Password is required"),
				StrongPassword,
			},
		},
		{
			Name: "phone",
			Type: TypePhone,
			Rules: []Rule{
				Phone,
				MaxLength(20),
			},
			Transform: trim,
		},
		{
			Name:     "firstName",
			Type:     TypeName,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("First name is required"),
				Name,
				MaxLength(50),
			},
			Transform: trimCollapse,
		},
		{
			Name:     "lastName",
			Type:     TypeName,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("Last name is required"),
				Name,
				MaxLength(50),
			},
			Transform: trimCollapse,
		},
		{
			Name:     "streetName",
			Type:     TypeStreet,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("Street name is required"),
				Pattern("streetChars", streetRegexp, "Contains invalid characters"),
				MaxLength(100),
			},
			Transform: trimCollapse,
		},
		{
			Name:     "streetNumber",
			Type:     TypeStreet,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("Street number is required"),
				// Both messages fire together for input like "abc"; every
				// failing rule reports, there is no short-circuit.
				ContainsNumber,
				StartsWithNumber,
				MaxLength(10),
			},
			Transform: trim,
		},
		{
			Name: "unitNumber",
			Type: TypeUnit,
			Rules: []Rule{
				Alphanumeric,
				MaxLength(10),
			},
			Transform: trim,
		},
		{
			Name:     "city",
			Type:     TypeCity,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("City is required"),
				Name,
				MaxLength(50),
			},
			Transform: trimCollapse,
		},
		{
			Name:     "postcode",
			Type:     TypePostcode,
			Required: true,
			Rules: []Rule{
				Required.WithMessage("Postcode is required"),
				Numeric.WithMessage("Postcode must contain only numbers"),
				MinLength(4),
				MaxLength(4),
			},
			Transform: trim,
		},
		{
			Name: "state",
			Type: TypeState,
			Rules: []Rule{
				OneOf("state", "ACT", "NSW", "NT", "QLD", "SA", "TAS", "VIC", "WA"),
			},
			Transform: StringTransform(transform.Chain(transform.TrimSpace, transform.Upper)),
		},
	}
}
