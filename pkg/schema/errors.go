package schema

import "errors"

// Package-specific errors
var (
	// ErrInvalidSchema is returned when a schema document violates the node
	// grammar: a non-map node, a missing or unknown type, an option key the
	// variant does not declare, or an option value of the wrong type.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrFailedToParseYAML is returned when the schema document is not valid
	// YAML.
	ErrFailedToParseYAML = errors.New("failed to parse schema YAML")
)
