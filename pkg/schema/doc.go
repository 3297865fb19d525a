// Package schema compiles declarative schema documents into spec trees.
//
// While the spec package offers typed per-variant options checked at compile
// time, schema is the dynamic construction surface: a schema arrives as YAML
// (or any already-decoded map) and is validated key by key at runtime, so a
// schema file can live next to the payloads it describes and be edited
// without recompiling.
//
// # Schema Grammar
//
// Every node is a map with a type key naming the variant (bool, int,
// decimal, string, map, list) plus that variant's option keys; nullable is
// accepted everywhere. Composite variants nest child nodes under
// required/optional (map) or of (list):
//
//	type: map
//	exclusive: true
//	required:
//	  name:
//	    type: string
//	  age:
//	    type: int
//	    gte: 0
//	optional:
//	  balance:
//	    type: decimal
//	    gte: 0
//	    max_decimal_places: 2
//
// # Usage
//
//	s, err := schema.ParseFile("order.yaml")
//	if err != nil {
//	    // the schema itself is malformed
//	}
//	if err := s.Validate(decoded); err != nil {
//	    // the payload violates the schema
//	}
//
// # Error Handling
//
// Compilation errors wrap ErrInvalidSchema (grammar violations, with the
// schema path of the offending node, e.g. "$.required.age") or
// ErrFailedToParseYAML, alongside the spec package's construction sentinels
// for option-level violations. They are build-time errors: a schema that
// compiled successfully never produces them during validation.
package schema
