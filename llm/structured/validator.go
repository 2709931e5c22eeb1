package structured

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// SchemaValidator validates JSON data against a JSONSchema.
type SchemaValidator interface {
	Validate(data []byte, schema *JSONSchema) error
}

// ParseError represents a validation error with field path.
type ParseError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors struct {
	Errors []ParseError `json:"errors"`
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed with %d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// DefaultValidator is the default implementation of SchemaValidator.
type DefaultValidator struct{}

// NewValidator creates a new DefaultValidator.
func NewValidator() *DefaultValidator {
	return &DefaultValidator{}
}

// Validate validates JSON data against a schema.
func (v *DefaultValidator) Validate(data []byte, schema *JSONSchema) error {
	if schema == nil {
		return nil
	}

	// UseNumber 保留原始数值，避免整数判断受 float64 精度影响
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return &ValidationErrors{
			Errors: []ParseError{{Path: "", Message: fmt.Sprintf("invalid JSON: %v", err)}},
		}
	}

	var errs []ParseError
	v.validateValue(value, schema, "", &errs)
	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func (v *DefaultValidator) validateValue(value any, schema *JSONSchema, path string, errs *[]ParseError) {
	if schema == nil {
		return
	}

	if schema.Type != "" && !matchesType(value, schema.Type) {
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("expected %s, got %s", schema.Type, typeName(value)),
		})
		return
	}

	switch val := value.(type) {
	case map[string]any:
		v.validateObject(val, schema, path, errs)
	case []any:
		v.validateArray(val, schema, path, errs)
	case string:
		v.validateString(val, schema, path, errs)
	case json.Number:
		v.validateNumber(val, schema, path, errs)
	}
}

func (v *DefaultValidator) validateObject(obj map[string]any, schema *JSONSchema, path string, errs *[]ParseError) {
	for _, name := range schema.Required {
		if _, ok := obj[name]; !ok {
			*errs = append(*errs, ParseError{
				Path:    joinPath(path, name),
				Message: "required field is missing",
			})
		}
	}

	// 按键排序保证错误顺序稳定
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if prop, ok := schema.Properties[k]; ok {
			v.validateValue(obj[k], prop, joinPath(path, k), errs)
		}
	}
}

func (v *DefaultValidator) validateArray(arr []any, schema *JSONSchema, path string, errs *[]ParseError) {
	if schema.MinItems != nil && len(arr) < *schema.MinItems {
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("array must have at least %d items", *schema.MinItems),
		})
	}
	if schema.MaxItems != nil && len(arr) > *schema.MaxItems {
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("array must have at most %d items", *schema.MaxItems),
		})
	}
	if schema.Items == nil {
		return
	}
	for i, item := range arr {
		v.validateValue(item, schema.Items, fmt.Sprintf("%s[%d]", path, i), errs)
	}
}

func (v *DefaultValidator) validateString(s string, schema *JSONSchema, path string, errs *[]ParseError) {
	n := utf8.RuneCountInString(s)
	if schema.MinLength != nil && n < *schema.MinLength {
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("string length must be at least %d", *schema.MinLength),
		})
	}
	if schema.MaxLength != nil && n > *schema.MaxLength {
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("string length must be at most %d", *schema.MaxLength),
		})
	}
	if len(schema.Enum) > 0 {
		for _, e := range schema.Enum {
			if e == s {
				return
			}
		}
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("value must be one of: %s", strings.Join(schema.Enum, ", ")),
		})
	}
}

func (v *DefaultValidator) validateNumber(n json.Number, schema *JSONSchema, path string, errs *[]ParseError) {
	f, err := n.Float64()
	if err != nil {
		*errs = append(*errs, ParseError{Path: path, Message: "invalid number"})
		return
	}
	if schema.Minimum != nil && f < *schema.Minimum {
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("value must be >= %v", *schema.Minimum),
		})
	}
	if schema.Maximum != nil && f > *schema.Maximum {
		*errs = append(*errs, ParseError{
			Path:    path,
			Message: fmt.Sprintf("value must be <= %v", *schema.Maximum),
		})
	}
}

func matchesType(value any, t SchemaType) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeNumber:
		_, ok := value.(json.Number)
		return ok
	case TypeInteger:
		n, ok := value.(json.Number)
		if !ok {
			return false
		}
		f, err := n.Float64()
		return err == nil && f == math.Trunc(f)
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	case TypeObject:
		_, ok := value.(map[string]any)
		return ok
	case TypeArray:
		_, ok := value.([]any)
		return ok
	default:
		return true
	}
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
