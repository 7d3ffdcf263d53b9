package format

import (
	"fmt"
	"reflect"
	"strings"
)

// field is one top-level record field in declaration order
type field struct {
	name     string
	value    any
	isObject bool
}

// recordFields extracts a record's top-level fields using its json tags.
// Nil pointers under omitempty behave like absent keys; nil pointers
// without omitempty surface as nil values.
func recordFields(rec any) []field {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		name, omitempty := parseTag(sf)
		if name == "-" {
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				if omitempty {
					continue
				}
				fields = append(fields, field{name: name})
				continue
			}
			fv = fv.Elem()
		}
		if omitempty && fv.IsZero() {
			continue
		}

		isObject := false
		switch fv.Kind() {
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			isObject = true
		}
		fields = append(fields, field{name: name, value: fv.Interface(), isObject: isObject})
	}
	return fields
}

func parseTag(sf reflect.StructField) (name string, omitempty bool) {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = sf.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}

// ScalarKeys returns a record's scalar field names in declaration order.
// Object-valued fields (maps, slices, structs) are excluded: they cannot
// be flattened into CSV columns.
func ScalarKeys(rec any) []string {
	var keys []string
	for _, f := range recordFields(rec) {
		if f.isObject {
			continue
		}
		keys = append(keys, f.name)
	}
	return keys
}

// ScalarValues returns a record's scalar values aligned to keys. Keys the
// record does not carry produce empty strings.
func ScalarValues(rec any, keys []string) []string {
	byName := make(map[string]string)
	for _, f := range recordFields(rec) {
		if f.isObject {
			continue
		}
		byName[f.name] = scalarString(f.value)
	}
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = byName[k]
	}
	return values
}

func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
