// Package spec provides a declarative validator for tree-shaped runtime
// values: the decoded form of JSON-like payloads built from scalars, ordered
// lists, and string-keyed maps.
//
// A caller builds an immutable Spec describing the expected shape of a value,
// then evaluates arbitrary values against it, receiving either success or a
// Violations error describing every failing location within the value.
//
// # Architecture
//
// Six spec variants cover the tree grammar: Bool, Int, Decimal, and String
// are atomic; Map and List are composite and own child specs. Every variant
// follows the same two-phase contract: its constructor validates and
// normalizes the supplied options exactly once (parsing decimal bounds,
// compiling patterns, case-folding value sets, composing failure messages),
// and the resulting Spec checks values any number of times with no further
// work. Composite variants recurse through the shared validation entry point
// and merge child failures into a single path-keyed Violations value, one
// entry per offending location.
//
// Core building blocks:
//   - Spec        – immutable, normalized description of an expected shape
//   - *Options    – typed per-variant construction options
//   - Predicate   – optional extra check applied after a spec's own rules
//   - Violations  – path-keyed failure collection implementing error
//   - Path        – ordered field-name/index segments locating a failure
//
// # Usage
//
//	userSpec := spec.MustMap(spec.MapOptions{
//	    Required: map[string]*spec.Spec{
//	        "name": spec.MustString(spec.StringOptions{}),
//	        "age":  spec.MustInt(spec.IntOptions{GTE: &minAge}),
//	    },
//	    Optional: map[string]*spec.Spec{
//	        "balance": spec.MustDecimal(spec.DecimalOptions{GTE: "0"}),
//	    },
//	    Exclusive: true,
//	})
//
//	if err := userSpec.Validate(decoded); err != nil {
//	    for _, v := range spec.ExtractViolations(err) {
//	        // v.Path locates the failure, v.Message describes it
//	    }
//	}
//
// # Error Handling
//
// Construction and validation use two disjoint error channels. Constructors
// return wrapped sentinel errors (ErrInvalidOption, ErrMissingOption,
// ErrInvalidBounds, ErrInvalidChildSpec) for malformed configuration; these
// are programmer errors expected to surface immediately during setup.
// Validate returns Violations — as data, never a panic — for every value
// that fails a correctly-constructed spec, and nil is the only success
// signal. Use errors.As, ExtractViolations, or IsViolation to inspect
// failures.
//
// # Concurrency
//
// Specs are immutable once constructed and validation is a pure function of
// (value, spec) with no shared state or I/O, so specs may be shared and
// validated from any number of goroutines without synchronization. Nesting
// depth is bounded internally so hostile deeply-nested input cannot exhaust
// the call stack.
package spec
