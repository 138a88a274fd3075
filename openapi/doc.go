// Package openapi exports a registry's field configurations as an OpenAPI 3
// object schema, one property per configured field with the constraints the
// rules declare.
//
//	schema := openapi.Document(formvalidation.Default())
//	b, err := openapi.MarshalDocument(schema)
package openapi
