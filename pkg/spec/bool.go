package spec

// BoolOptions configures a boolean spec. Booleans carry only the universal
// options.
type BoolOptions struct {
	// Nullable makes the spec accept nil values.
	Nullable bool
	// Check is an optional extra predicate applied after the base check.
	Check Predicate
}

type boolSpec struct {
	msg string
}

// Bool builds a spec that accepts boolean values.
func Bool(opts BoolOptions) (*Spec, error) {
	return &Spec{
		nullable: opts.Nullable,
		pred:     opts.Check,
		v:        &boolSpec{msg: typeMessage("must be a boolean", opts.Nullable)},
	}, nil
}

// MustBool is like Bool but panics on a construction error, for package-level
// spec declarations.
func MustBool(opts BoolOptions) *Spec {
	return must(Bool(opts))
}

func (b *boolSpec) kind() Kind { return KindBool }

func (b *boolSpec) check(value any, _ int) error {
	if _, ok := value.(bool); !ok {
		return Violations{{Message: b.msg}}
	}
	return nil
}
