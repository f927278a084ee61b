package router

import (
	"encoding/json"
	"reflect"
	"slices"
	"strings"
	"time"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	rawMessageType = reflect.TypeOf(json.RawMessage{})
)

// schemaRegistry collects named component schemas
type schemaRegistry struct {
	schemas map[string]map[string]any
}

func newSchemaRegistry() *schemaRegistry {
	return &schemaRegistry{
		schemas: make(map[string]map[string]any),
	}
}

// ref returns a $ref to the component schema of a named struct type,
// generating and registering it on first use.
func (r *schemaRegistry) ref(typ reflect.Type) map[string]any {
	name := typ.Name()
	if _, exists := r.schemas[name]; !exists {
		// placeholder first so self references terminate
		r.schemas[name] = map[string]any{}
		r.schemas[name] = r.structSchema(typ)
	}

	return map[string]any{
		"$ref": "#/components/schemas/" + name,
	}
}

// schemaOf converts a Go value's type to a JSON Schema
func (r *schemaRegistry) schemaOf(v any) map[string]any {
	if v == nil {
		return nil
	}
	return r.typeSchema(reflect.TypeOf(v))
}

func (r *schemaRegistry) typeSchema(typ reflect.Type) map[string]any {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	switch {
	case typ == timeType:
		return map[string]any{"type": "string", "format": "date-time"}
	case typ == rawMessageType:
		return map[string]any{"type": "object"}
	}

	if schema := basicTypeSchema(typ.Kind()); schema != nil {
		return schema
	}

	switch typ.Kind() {
	case reflect.Struct:
		if typ.Name() == "" {
			return r.structSchema(typ)
		}
		return r.ref(typ)
	case reflect.Slice, reflect.Array:
		return map[string]any{
			"type":  "array",
			"items": r.typeSchema(typ.Elem()),
		}
	case reflect.Map:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": r.typeSchema(typ.Elem()),
		}
	default:
		return map[string]any{"type": "object"}
	}
}

// structSchema converts a struct type to an object schema
func (r *schemaRegistry) structSchema(typ reflect.Type) map[string]any {
	properties := make(map[string]any)
	required := []string{}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, isRequired := parseJSONTag(jsonTag, field.Name)
		if isRequired {
			required = append(required, name)
		}

		schema := r.typeSchema(field.Type)
		if _, isRef := schema["$ref"]; !isRef {
			addFieldMetadata(schema, field)
		}
		properties[name] = schema
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// parseJSONTag extracts name and required status from a json tag
func parseJSONTag(jsonTag, fieldName string) (string, bool) {
	if jsonTag == "" {
		return fieldName, true
	}

	parts := strings.Split(jsonTag, ",")
	name := parts[0]
	if name == "" {
		name = fieldName
	}

	return name, !slices.Contains(parts[1:], "omitempty")
}

// addFieldMetadata adds documentation from struct tags to a schema
func addFieldMetadata(schema map[string]any, field reflect.StructField) {
	if doc := field.Tag.Get("doc"); doc != "" {
		schema["description"] = doc
	}
	if example := field.Tag.Get("example"); example != "" {
		schema["example"] = example
	}
	if enum := field.Tag.Get("enum"); enum != "" {
		schema["enum"] = strings.Split(enum, ",")
	}
}

// basicTypeSchema creates a schema for a basic Go type
func basicTypeSchema(kind reflect.Kind) map[string]any {
	switch kind {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.String:
		return map[string]any{"type": "string"}
	default:
		return nil
	}
}

// components returns the registered schemas keyed by type name
func (r *schemaRegistry) components() map[string]any {
	out := make(map[string]any, len(r.schemas))
	for name, schema := range r.schemas {
		out[name] = schema
	}
	return out
}
