// Command example demonstrates the field validation engine: two field
// instances driven by simulated UI events, plus the schema export.
//
// Run:
//
//	go run ./_example
package main

import (
	"fmt"
	"time"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/field"
	"github.com/Gobd/formvalidation/openapi"
)

func main() {
	// Aggregate true validity the way a form-level submit gate would.
	valid := map[string]bool{}

	email := field.New(field.Options{
		Config:           v.FieldConfig{Name: "email", Type: v.TypeEmail},
		EnableValidation: true,
		OnValidationChange: func(r v.Result) {
			valid["email"] = r.Valid
		},
	})
	defer email.Close()

	password := field.New(field.Options{
		Config:           v.FieldConfig{Name: "password", Type: v.TypePassword},
		EnableValidation: true,
		OnValidationChange: func(r v.Result) {
			valid["password"] = r.Valid
		},
	})
	defer password.Close()

	// The user focuses and blurs the email field without typing: the
	// required error becomes visible, and the submit gate already knew.
	email.HandleFocus()
	email.HandleBlur()
	fmt.Println("email display errors:", email.DisplayErrors())
	fmt.Println("form valid:", valid["email"] && valid["password"])

	// A password manager bulk-fills both fields; no focus events arrive.
	email.HandleChange("user@example.com", "")
	password.HandleChange("SecurePass123!", "")
	fmt.Println("password autofilled:", password.State().WasAutofilled)

	// After the confirmation delay the fields count as touched.
	time.Sleep(v.DefaultTouchedDelay + 100*time.Millisecond)
	fmt.Println("password touched:", password.State().HasBeenTouched)
	fmt.Println("form valid:", valid["email"] && valid["password"])

	// Export the built-in field catalog as an OpenAPI schema.
	b, err := openapi.MarshalDocument(openapi.Document(v.Default()))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
}
