package spec

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// StringOptions configures a string spec. Pattern, OneOf, and OneOfFold are
// mutually exclusive: a spec either matches a regular expression, an exact
// value set, or a case-insensitive value set.
type StringOptions struct {
	// Nullable makes the spec accept nil values.
	Nullable bool
	// Check is an optional extra predicate applied after the base check.
	Check Predicate

	// Pattern is a regular expression the value must match, compiled at
	// construction.
	Pattern string
	// OneOf is a non-empty set of accepted values, matched case-sensitively.
	OneOf []string
	// OneOfFold is a non-empty set of accepted values, matched
	// case-insensitively via Unicode case folding.
	OneOfFold []string
}

type stringSpec struct {
	re      *regexp.Regexp
	oneOf   []string
	folded  []string
	typeMsg string
	ruleMsg string
}

// String builds a spec that accepts string values, optionally constrained by
// exactly one of Pattern, OneOf, or OneOfFold.
func String(opts StringOptions) (*Spec, error) {
	set := 0
	if opts.Pattern != "" {
		set++
	}
	if opts.OneOf != nil {
		set++
	}
	if opts.OneOfFold != nil {
		set++
	}
	if set > 1 {
		return nil, fmt.Errorf("%w: pattern, one_of, and one_of_fold are mutually exclusive", ErrInvalidOption)
	}

	s := &stringSpec{typeMsg: typeMessage("must be a string", opts.Nullable)}

	switch {
	case opts.Pattern != "":
		re, err := regexp.Compile(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern: %v", ErrInvalidOption, err)
		}
		s.re = re
		s.ruleMsg = fmt.Sprintf("must match the pattern %s", opts.Pattern)
	case opts.OneOf != nil:
		if len(opts.OneOf) == 0 {
			return nil, fmt.Errorf("%w: one_of must not be empty", ErrInvalidOption)
		}
		s.oneOf = slices.Clone(opts.OneOf)
		s.ruleMsg = "must be one of: " + strings.Join(s.oneOf, ", ")
	case opts.OneOfFold != nil:
		if len(opts.OneOfFold) == 0 {
			return nil, fmt.Errorf("%w: one_of_fold must not be empty", ErrInvalidOption)
		}
		caser := cases.Fold()
		s.folded = make([]string, len(opts.OneOfFold))
		for i, v := range opts.OneOfFold {
			s.folded[i] = caser.String(v)
		}
		s.ruleMsg = "must be one of (case-insensitive): " + strings.Join(opts.OneOfFold, ", ")
	}

	return &Spec{
		nullable: opts.Nullable,
		pred:     opts.Check,
		v:        s,
	}, nil
}

// MustString is like String but panics on a construction error.
func MustString(opts StringOptions) *Spec {
	return must(String(opts))
}

func (s *stringSpec) kind() Kind { return KindString }

func (s *stringSpec) check(value any, _ int) error {
	str, ok := value.(string)
	if !ok {
		return Violations{{Message: s.typeMsg}}
	}

	switch {
	case s.re != nil:
		if !s.re.MatchString(str) {
			return Violations{{Message: s.ruleMsg}}
		}
	case s.oneOf != nil:
		if !slices.Contains(s.oneOf, str) {
			return Violations{{Message: s.ruleMsg}}
		}
	case s.folded != nil:
		// cases.Caser carries internal state, so a fresh one is used per call
		// to keep validation concurrency-safe.
		if !slices.Contains(s.folded, cases.Fold().String(str)) {
			return Violations{{Message: s.ruleMsg}}
		}
	}
	return nil
}
