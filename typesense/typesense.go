// Package typesense declares the Typesense schema field type for wiremap
// values.
//
// A map serializes as a JSON object, so Typesense indexes it as an "object"
// field regardless of its key and value types. This is a static capability
// query with no runtime data dependency; it cannot fail.
package typesense

import (
	"github.com/typesense/typesense-go/typesense/api"

	"github.com/zoobzio/wiremap"
)

// FieldType is the Typesense field type declared for any wiremap value.
const FieldType = "object"

// FieldTypeOf reports the declared field type for a map instantiation.
// The answer is the same for every key, value and strategy type.
func FieldTypeOf[W, D, V any, S wiremap.Strategy[W, D]]() string {
	return FieldType
}

// Field builds a collection schema field of the declared type.
func Field(name string) api.Field {
	return api.Field{Name: name, Type: FieldType}
}
