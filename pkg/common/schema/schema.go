// Package schema validates decoded request bodies and reports every violated field.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate   = newValidator()
	oneOfParam = regexp.MustCompile(`'[^']*'|\S+`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return v
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Struct runs the validate tags of obj. The returned error is a *ValidationError.
func Struct(obj any) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
			Value:   offending(fe),
		})
	}
	return out
}

// BindJSON decodes the request body into obj and validates it. A mistyped
// field is reported next to every other violation instead of hiding them.
func BindJSON(ctx *gin.Context, obj any) error {
	err := ctx.ShouldBindBodyWith(obj, binding.JSON)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return decodeError(err)
	}

	var mistyped []FieldError
	if typeErr != nil {
		raw, _ := ctx.Get(gin.BodyBytesKey)
		body, _ := raw.([]byte)
		mistyped = typeErrors(body, obj)
		if len(mistyped) == 0 {
			mistyped = []FieldError{{Field: typeErr.Field, Message: fmt.Sprintf("%s has an invalid type", typeErr.Field)}}
		}
		if mistyped[0].Field == "body" {
			return &ValidationError{Fields: mistyped}
		}
	}

	verr := Struct(obj)
	if len(mistyped) == 0 {
		return verr
	}

	out := &ValidationError{Fields: mistyped}
	var rest *ValidationError
	if errors.As(verr, &rest) {
		for _, f := range rest.Fields {
			if !underAny(f.Field, mistyped) {
				out.Fields = append(out.Fields, f)
			}
		}
	}
	return out
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "request body is not valid JSON"}}}
	default:
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
}

// underAny reports whether field is, or sits below, one of the mistyped paths.
// Those were left unset by the decoder and would only repeat as "required".
func underAny(field string, mistyped []FieldError) bool {
	for _, m := range mistyped {
		if field == m.Field || strings.HasPrefix(field, m.Field+".") || strings.HasPrefix(field, m.Field+"[") {
			return true
		}
	}
	return false
}

// typeErrors walks the raw body against the Go type of obj and reports every
// value whose JSON type does not fit, with indexed paths and JSON type names.
func typeErrors(body []byte, obj any) []FieldError {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil
	}

	var out []FieldError
	walkTypes(raw, reflect.TypeOf(obj), "", &out)
	return out
}

func walkTypes(v any, t reflect.Type, path string, out *[]FieldError) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if v == nil {
		return
	}

	mismatch := func() {
		if path == "" {
			*out = append(*out, FieldError{Field: "body", Message: "request body must be a JSON " + jsonType(t)})
			return
		}
		*out = append(*out, FieldError{
			Field:   path,
			Message: fmt.Sprintf("%s must be of type %s, got %s", path, jsonType(t), jsonKind(v)),
			Value:   v,
		})
	}

	switch t.Kind() {
	case reflect.Struct:
		m, ok := v.(map[string]any)
		if !ok {
			mismatch()
			return
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || !f.IsExported() {
				continue
			}
			if name == "" {
				name = f.Name
			}
			if fv, ok := m[name]; ok {
				walkTypes(fv, f.Type, joinPath(path, name), out)
			}
		}
	case reflect.Slice, reflect.Array:
		arr, ok := v.([]any)
		if !ok {
			mismatch()
			return
		}
		for i, e := range arr {
			walkTypes(e, t.Elem(), fmt.Sprintf("%s[%d]", path, i), out)
		}
	case reflect.String:
		if _, ok := v.(string); !ok {
			mismatch()
		}
	case reflect.Bool:
		if _, ok := v.(bool); !ok {
			mismatch()
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := v.(json.Number)
		if !ok {
			mismatch()
			return
		}
		if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
			mismatch()
		}
	case reflect.Float32, reflect.Float64:
		if _, ok := v.(json.Number); !ok {
			mismatch()
		}
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func jsonType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	default:
		return "value"
	}
}

func jsonKind(v any) string {
	switch n := v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		if _, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return "integer"
		}
		return "number"
	default:
		return "null"
	}
}

// fieldPath drops the root struct name: "learning_objectives[0].header".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: %q is not a valid %s, permitted values: %s",
			field, fmt.Sprint(offending(fe)), enumName(fe), strings.Join(OneOfValues(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s failed on the %q rule", field, fe.Tag())
	}
}

func offending(fe validator.FieldError) any {
	v := fe.Value()
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func enumName(fe validator.FieldError) string {
	t := fe.Type()
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "value"
	}
	return t.Name()
}

// OneOfValues splits a oneof parameter, honouring single quoted values such as 'Type 1'.
func OneOfValues(param string) []string {
	raw := oneOfParam.FindAllString(param, -1)
	vals := make([]string, 0, len(raw))
	for _, v := range raw {
		vals = append(vals, strings.Trim(v, "'"))
	}
	return vals
}
