// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var errNeedsValue = errors.New("requires a value")

// flagField is a struct field bound to an option.
type flagField struct {
	Index    int
	Name     string
	Short    string
	Type     Type
	Multiple bool
}

// extractFlagFields reads the `flag` and `short` tags of a struct type.
// Fields without a `flag` tag use the lower-cased field name; `flag:"-"`
// skips the field.
func extractFlagFields(t reflect.Type) []flagField {
	var fields []flagField
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}

		fieldType := field.Type
		multiple := fieldType.Kind() == reflect.Slice
		if multiple {
			fieldType = fieldType.Elem()
		}
		for fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		typ := String
		if fieldType.Kind() == reflect.Bool {
			typ = Boolean
		}

		fields = append(fields, flagField{
			Index:    i,
			Name:     name,
			Short:    field.Tag.Get("short"),
			Type:     typ,
			Multiple: multiple,
		})
	}
	return fields
}

func structType(v any) (reflect.Type, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("parseargs: %T is not a struct", v)
	}
	return t, nil
}

// SchemaOf derives a schema from the `flag` and `short` tags of a struct.
// Bool fields (and pointers or slices of bool) become Boolean options, all
// other fields String options. Slice fields set Multiple.
func SchemaOf(v any) (Schema, error) {
	t, err := structType(v)
	if err != nil {
		return nil, err
	}
	schema := make(Schema)
	for _, f := range extractFlagFields(t) {
		if _, dup := schema[f.Name]; dup {
			return nil, &ConfigError{Option: f.Name, Msg: "declared by more than one field"}
		}
		schema[f.Name] = Option{Type: f.Type, Short: f.Short, Multiple: f.Multiple}
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

// Decode stores the parsed values into the struct pointed to by dst, matching
// fields the same way SchemaOf does. Fields of options that were not given
// are left untouched. On error dst is not modified at all.
func (r *Result) Decode(dst any) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("parseargs: Decode requires a non-nil struct pointer, got %T", dst)
	}
	t := ptr.Elem().Type()
	v := reflect.New(t).Elem()
	v.Set(ptr.Elem())

	for _, f := range extractFlagFields(t) {
		vals, ok := r.Lookup(f.Name)
		if !ok {
			continue
		}
		field := v.Field(f.Index)
		if field.Kind() == reflect.Slice {
			slice := reflect.MakeSlice(field.Type(), 0, len(vals))
			for _, val := range vals {
				elem := reflect.New(field.Type().Elem()).Elem()
				if err := setFieldValue(elem, val); err != nil {
					return &DecodeError{Option: f.Name, Field: t.Field(f.Index).Name, Value: val.String(), Err: err}
				}
				slice = reflect.Append(slice, elem)
			}
			field.Set(slice)
			continue
		}
		val := vals[len(vals)-1]
		if err := setFieldValue(field, val); err != nil {
			return &DecodeError{Option: f.Name, Field: t.Field(f.Index).Name, Value: val.String(), Err: err}
		}
	}
	ptr.Elem().Set(v)
	return nil
}

// setFieldValue sets a struct field from a stored value.
func setFieldValue(field reflect.Value, val Value) error {
	if field.Kind() == reflect.Ptr {
		elem := reflect.New(field.Type().Elem())
		if err := setFieldValue(elem.Elem(), val); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	s, isStr := val.Str()
	if !isStr {
		if field.Kind() != reflect.Bool {
			return errNeedsValue
		}
		field.SetBool(true)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
		return nil

	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", s, err)
		}
		field.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(s)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", s, err)
			}
			field.SetInt(int64(d))
			return nil
		}

		i, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", s, err)
		}
		field.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q: %w", s, err)
		}
		field.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q: %w", s, err)
		}
		field.SetFloat(f)
		return nil

	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
}
