package spec

import "fmt"

// ListOptions configures a list-of-items spec. Of is mandatory; MinLen and
// MaxLen, when set, must be non-negative with MinLen not exceeding MaxLen.
type ListOptions struct {
	// Nullable makes the spec accept nil values.
	Nullable bool
	// Check is an optional extra predicate applied after the base check.
	Check Predicate

	// Of is the spec every item must conform to.
	Of *Spec
	// MinLen and MaxLen bound the accepted list length when non-nil.
	MinLen, MaxLen *int
}

type listSpec struct {
	of     *Spec
	minLen *int
	maxLen *int
	msg    string
}

// List builds a spec that accepts lists whose every item conforms to Of.
// Length bounds are checked first; when a bound fails, item checks are
// skipped and a single flat message is reported.
func List(opts ListOptions) (*Spec, error) {
	if opts.Of == nil {
		return nil, fmt.Errorf("%w: of is required in list", ErrMissingOption)
	}
	if !probeChild(opts.Of) {
		return nil, fmt.Errorf("%w: of", ErrInvalidChildSpec)
	}
	if opts.MinLen != nil && *opts.MinLen < 0 {
		return nil, fmt.Errorf("%w: min_len must not be negative", ErrInvalidOption)
	}
	if opts.MaxLen != nil && *opts.MaxLen < 0 {
		return nil, fmt.Errorf("%w: max_len must not be negative", ErrInvalidOption)
	}
	if opts.MinLen != nil && opts.MaxLen != nil && *opts.MinLen > *opts.MaxLen {
		return nil, fmt.Errorf("%w: min_len must not exceed max_len", ErrInvalidBounds)
	}

	return &Spec{
		nullable: opts.Nullable,
		pred:     opts.Check,
		v: &listSpec{
			of:     opts.Of,
			minLen: copyInt(opts.MinLen),
			maxLen: copyInt(opts.MaxLen),
			msg:    typeMessage("must be a list", opts.Nullable),
		},
	}, nil
}

// MustList is like List but panics on a construction error.
func MustList(opts ListOptions) *Spec {
	return must(List(opts))
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (l *listSpec) kind() Kind { return KindList }

func (l *listSpec) check(value any, depth int) error {
	items, ok := asSlice(value)
	if !ok {
		return Violations{{Message: l.msg}}
	}

	if l.minLen != nil && len(items) < *l.minLen {
		return Violations{{Message: fmt.Sprintf("length must be at least %d", *l.minLen)}}
	}
	if l.maxLen != nil && len(items) > *l.maxLen {
		return Violations{{Message: fmt.Sprintf("length must be at most %d", *l.maxLen)}}
	}

	var vs Violations
	for i, item := range items {
		vs = recurse(vs, Index(i), l.of, item, depth)
	}

	if len(vs) == 0 {
		return nil
	}
	return vs
}
