package spec

import (
	"cmp"
	"strconv"
)

// IntOptions configures an integer spec. At most one of GT/GTE and one of
// LT/LTE may be set, and the effective lower bound must sit strictly below
// the effective upper bound.
type IntOptions struct {
	// Nullable makes the spec accept nil values.
	Nullable bool
	// Check is an optional extra predicate applied after the base check.
	Check Predicate

	// GT, GTE, LT, LTE bound the accepted values when non-nil.
	GT, GTE, LT, LTE *int64
}

type intSpec struct {
	b   bounds[int64]
	msg string
}

// Int builds a spec that accepts integral numbers satisfying the configured
// bounds.
func Int(opts IntOptions) (*Spec, error) {
	b := bounds[int64]{
		gt:     opts.GT,
		gte:    opts.GTE,
		lt:     opts.LT,
		lte:    opts.LTE,
		cmp:    cmp.Compare[int64],
		format: func(v int64) string { return strconv.FormatInt(v, 10) },
	}
	if err := b.normalize(); err != nil {
		return nil, err
	}

	msg := "must be an integer"
	if clauses := b.clauses(); len(clauses) > 0 {
		msg += " " + joinClauses(clauses)
	}

	return &Spec{
		nullable: opts.Nullable,
		pred:     opts.Check,
		v:        &intSpec{b: b, msg: typeMessage(msg, opts.Nullable)},
	}, nil
}

// MustInt is like Int but panics on a construction error.
func MustInt(opts IntOptions) *Spec {
	return must(Int(opts))
}

func (s *intSpec) kind() Kind { return KindInt }

func (s *intSpec) check(value any, _ int) error {
	n, ok := asInt64(value)
	if !ok || !s.b.holds(n) {
		return Violations{{Message: s.msg}}
	}
	return nil
}
