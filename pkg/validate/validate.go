// Package validate provides struct-tag validation plus the domain predicates
// used by signup and cart requests.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	email               valid email address
//	phone               exactly 10 digits (see Phone)
//	age                 15..99 (see Age)
//	password            complexity rule and bcrypt length cap (see Password)
//	quantity            1..15 (see Quantity)
//
// Example:
//
//	type SignupInput struct {
//	    Phone    string `json:"phone"    validate:"required,phone"`
//	    Age      int    `json:"age"      validate:"age"`
//	    Password string `json:"password" validate:"required,password"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		for _, rule := range strings.Split(tag, ",") {
			if msg := applyRule(strings.TrimSpace(rule), name, rv.Field(i)); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// First returns the message of the first failing field in declaration order,
// or "" when v is valid.
func First(v interface{}) string {
	errs := Struct(v)
	if len(errs) == 0 {
		return ""
	}
	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	for i := 0; i < rt.NumField(); i++ {
		if msg, ok := errs[jsonFieldName(rt.Field(i))]; ok {
			return msg
		}
	}
	return ""
}

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())

	switch rule {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "phone":
		if !Phone(raw) {
			return ErrInvalidPhone.Error()
		}
	case "age":
		n, ok := wholeNumber(v)
		if !ok || !Age(n) {
			return ErrInvalidAge.Error()
		}
	case "password":
		if !Password(raw) {
			return ErrWeakPassword.Error()
		}
		if !PasswordFits(raw) {
			return ErrPasswordTooLong.Error()
		}
	case "quantity":
		n, ok := wholeNumber(v)
		if !ok || !Quantity(n) {
			return ErrInvalidQuantity.Error()
		}
	}

	return ""
}

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

// wholeNumber reports v as an int when it is numeric with no fractional part.
func wholeNumber(v reflect.Value) (int, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != float64(int(f)) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}
