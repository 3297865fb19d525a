package spec

import "errors"

// Construction errors, returned by the spec constructors when the supplied
// options are malformed. They surface at the call site that builds the spec
// and are never returned from Validate.
var (
	// ErrInvalidOption is returned when a variant option holds a value the
	// variant cannot accept.
	ErrInvalidOption = errors.New("invalid option")

	// ErrMissingOption is returned when a mandatory variant option is absent.
	ErrMissingOption = errors.New("missing option")

	// ErrInvalidBounds is returned when gt/gte/lt/lte options conflict or
	// describe an unsatisfiable range.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrInvalidChildSpec is returned when a composite spec receives a child
	// that was not produced by one of the package constructors.
	ErrInvalidChildSpec = errors.New("invalid child spec")
)
