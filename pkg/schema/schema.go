package schema

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/treespec/pkg/spec"
)

// kindFields declares the option keys each variant recognizes. Every variant
// also accepts the universal type and nullable keys.
var kindFields = map[string]map[string]bool{
	"bool": {},
	"int": {
		"gt": true, "gte": true, "lt": true, "lte": true,
	},
	"decimal": {
		"gt": true, "gte": true, "lt": true, "lte": true,
		"max_decimal_places": true, "message": true,
	},
	"string": {
		"pattern": true, "one_of": true, "one_of_fold": true,
	},
	"map": {
		"required": true, "optional": true, "exclusive": true,
	},
	"list": {
		"of": true, "min_len": true, "max_len": true,
	},
}

// Parse unmarshals a YAML schema document and compiles it into a spec tree.
func Parse(data []byte) (*spec.Spec, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return Compile(doc)
}

// ParseFile reads and parses a YAML schema file.
func ParseFile(path string) (*spec.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Compile builds a spec tree from an already-decoded schema document. Every
// node must be a map carrying a type key plus that variant's option keys;
// errors name the schema path of the offending node.
func Compile(doc any) (*spec.Spec, error) {
	return compile(doc, "$")
}

func compile(doc any, at string) (*spec.Spec, error) {
	fields, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: node must be a map", ErrInvalidSchema, at)
	}

	rawKind, present := fields["type"]
	if !present {
		return nil, fmt.Errorf("%w: %s: type is required", ErrInvalidSchema, at)
	}
	kind, ok := rawKind.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: type must be a string", ErrInvalidSchema, at)
	}
	allowed, ok := kindFields[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown type %q", ErrInvalidSchema, at, kind)
	}

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if key == "type" || key == "nullable" || allowed[key] {
			continue
		}
		return nil, fmt.Errorf("%w: %s: %q is not a field of %s", ErrInvalidSchema, at, key, kind)
	}

	nullable, err := boolField(fields, "nullable", at)
	if err != nil {
		return nil, err
	}

	var s *spec.Spec
	switch kind {
	case "bool":
		s, err = spec.Bool(spec.BoolOptions{Nullable: nullable})
	case "int":
		s, err = compileInt(fields, nullable, at)
	case "decimal":
		s, err = compileDecimal(fields, nullable, at)
	case "string":
		s, err = compileString(fields, nullable, at)
	case "map":
		s, err = compileMap(fields, nullable, at)
	case "list":
		s, err = compileList(fields, nullable, at)
	}
	if err != nil {
		if errors.Is(err, ErrInvalidSchema) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	return s, nil
}

func compileInt(fields map[string]any, nullable bool, at string) (*spec.Spec, error) {
	opts := spec.IntOptions{Nullable: nullable}

	var err error
	if opts.GT, err = int64Field(fields, "gt", at); err != nil {
		return nil, err
	}
	if opts.GTE, err = int64Field(fields, "gte", at); err != nil {
		return nil, err
	}
	if opts.LT, err = int64Field(fields, "lt", at); err != nil {
		return nil, err
	}
	if opts.LTE, err = int64Field(fields, "lte", at); err != nil {
		return nil, err
	}
	return spec.Int(opts)
}

func compileDecimal(fields map[string]any, nullable bool, at string) (*spec.Spec, error) {
	opts := spec.DecimalOptions{Nullable: nullable}

	var err error
	if opts.GT, err = decimalField(fields, "gt", at); err != nil {
		return nil, err
	}
	if opts.GTE, err = decimalField(fields, "gte", at); err != nil {
		return nil, err
	}
	if opts.LT, err = decimalField(fields, "lt", at); err != nil {
		return nil, err
	}
	if opts.LTE, err = decimalField(fields, "lte", at); err != nil {
		return nil, err
	}
	if opts.MaxDecimalPlaces, err = intField(fields, "max_decimal_places", at); err != nil {
		return nil, err
	}
	if opts.Message, err = stringField(fields, "message", at); err != nil {
		return nil, err
	}
	return spec.Decimal(opts)
}

func compileString(fields map[string]any, nullable bool, at string) (*spec.Spec, error) {
	opts := spec.StringOptions{Nullable: nullable}

	var err error
	if opts.Pattern, err = stringField(fields, "pattern", at); err != nil {
		return nil, err
	}
	if opts.OneOf, err = stringListField(fields, "one_of", at); err != nil {
		return nil, err
	}
	if opts.OneOfFold, err = stringListField(fields, "one_of_fold", at); err != nil {
		return nil, err
	}
	return spec.String(opts)
}

func compileMap(fields map[string]any, nullable bool, at string) (*spec.Spec, error) {
	opts := spec.MapOptions{Nullable: nullable}

	var err error
	if opts.Required, err = childSpecsField(fields, "required", at); err != nil {
		return nil, err
	}
	if opts.Optional, err = childSpecsField(fields, "optional", at); err != nil {
		return nil, err
	}
	if opts.Exclusive, err = boolField(fields, "exclusive", at); err != nil {
		return nil, err
	}
	return spec.Map(opts)
}

func compileList(fields map[string]any, nullable bool, at string) (*spec.Spec, error) {
	opts := spec.ListOptions{Nullable: nullable}

	if raw, present := fields["of"]; present {
		of, err := compile(raw, at+".of")
		if err != nil {
			return nil, err
		}
		opts.Of = of
	}

	var err error
	if opts.MinLen, err = intField(fields, "min_len", at); err != nil {
		return nil, err
	}
	if opts.MaxLen, err = intField(fields, "max_len", at); err != nil {
		return nil, err
	}
	return spec.List(opts)
}

func childSpecsField(fields map[string]any, key, at string) (map[string]*spec.Spec, error) {
	raw, present := fields[key]
	if !present {
		return nil, nil
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %s must be a map of field specs", ErrInvalidSchema, at, key)
	}

	out := make(map[string]*spec.Spec, len(entries))
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		child, err := compile(entries[name], at+"."+key+"."+name)
		if err != nil {
			return nil, err
		}
		out[name] = child
	}
	return out, nil
}

func boolField(fields map[string]any, key, at string) (bool, error) {
	raw, present := fields[key]
	if !present {
		return false, nil
	}
	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: %s must be a boolean", ErrInvalidSchema, at, key)
	}
	return v, nil
}

func stringField(fields map[string]any, key, at string) (string, error) {
	raw, present := fields[key]
	if !present {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: %s must be a string", ErrInvalidSchema, at, key)
	}
	return v, nil
}

func stringListField(fields map[string]any, key, at string) ([]string, error) {
	raw, present := fields[key]
	if !present {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %s must be a list of strings", ErrInvalidSchema, at, key)
	}

	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s[%d] must be a string", ErrInvalidSchema, at, key, i)
		}
		out[i] = s
	}
	return out, nil
}

func intField(fields map[string]any, key, at string) (*int, error) {
	raw, present := fields[key]
	if !present {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		return &v, nil
	default:
		return nil, fmt.Errorf("%w: %s: %s must be an integer", ErrInvalidSchema, at, key)
	}
}

func int64Field(fields map[string]any, key, at string) (*int64, error) {
	raw, present := fields[key]
	if !present {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		n := int64(v)
		return &n, nil
	case int64:
		return &v, nil
	default:
		return nil, fmt.Errorf("%w: %s: %s must be an integer", ErrInvalidSchema, at, key)
	}
}

// decimalField accepts a decimal-formatted string or an integer, returning
// the spec-level string form.
func decimalField(fields map[string]any, key, at string) (string, error) {
	raw, present := fields[key]
	if !present {
		return "", nil
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("%w: %s: %s must be a decimal-formatted string or an integer", ErrInvalidSchema, at, key)
	}
}
