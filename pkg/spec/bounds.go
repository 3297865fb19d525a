package spec

import (
	"fmt"
	"strings"
)

// bounds holds the normalized gt/gte/lt/lte constraints for a totally
// ordered value type. cmp follows the usual negative/zero/positive contract;
// format renders a bound for clause composition.
type bounds[T any] struct {
	gt, gte, lt, lte *T

	cmp    func(a, b T) int
	format func(v T) string
}

// normalize rejects conflicting or unsatisfiable bound combinations: gt/gte
// and lt/lte are mutually exclusive pairs, and the effective lower bound must
// sit strictly below the effective upper bound. Equal bounds are rejected as
// well since they make gt/lt ranges unsatisfiable.
func (b bounds[T]) normalize() error {
	if b.gt != nil && b.gte != nil {
		return fmt.Errorf("%w: gt and gte are mutually exclusive", ErrInvalidBounds)
	}
	if b.lt != nil && b.lte != nil {
		return fmt.Errorf("%w: lt and lte are mutually exclusive", ErrInvalidBounds)
	}

	lo, loName := b.lower()
	hi, hiName := b.upper()
	if lo != nil && hi != nil && b.cmp(*lo, *hi) >= 0 {
		return fmt.Errorf("%w: %s must be strictly less than %s", ErrInvalidBounds, loName, hiName)
	}
	return nil
}

func (b bounds[T]) lower() (*T, string) {
	if b.gt != nil {
		return b.gt, "gt"
	}
	if b.gte != nil {
		return b.gte, "gte"
	}
	return nil, ""
}

func (b bounds[T]) upper() (*T, string) {
	if b.lt != nil {
		return b.lt, "lt"
	}
	if b.lte != nil {
		return b.lte, "lte"
	}
	return nil, ""
}

// holds reports whether v satisfies every configured bound.
func (b bounds[T]) holds(v T) bool {
	if b.gt != nil && b.cmp(v, *b.gt) <= 0 {
		return false
	}
	if b.gte != nil && b.cmp(v, *b.gte) < 0 {
		return false
	}
	if b.lt != nil && b.cmp(v, *b.lt) >= 0 {
		return false
	}
	if b.lte != nil && b.cmp(v, *b.lte) > 0 {
		return false
	}
	return true
}

// clauses lists the configured bounds as message fragments, lower bound
// before upper bound.
func (b bounds[T]) clauses() []string {
	var out []string
	if b.gt != nil {
		out = append(out, "greater than "+b.format(*b.gt))
	}
	if b.gte != nil {
		out = append(out, "greater than or equal to "+b.format(*b.gte))
	}
	if b.lt != nil {
		out = append(out, "less than "+b.format(*b.lt))
	}
	if b.lte != nil {
		out = append(out, "less than or equal to "+b.format(*b.lte))
	}
	return out
}

// joinClauses renders a clause list: a single clause stands alone, two are
// joined with "and", three or more get an Oxford-comma join.
func joinClauses(clauses []string) string {
	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	case 2:
		return clauses[0] + " and " + clauses[1]
	default:
		return strings.Join(clauses[:len(clauses)-1], ", ") + ", and " + clauses[len(clauses)-1]
	}
}
