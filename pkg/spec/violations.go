package spec

import (
	"errors"
	"fmt"
	"strings"
)

// Violation describes a single failed check and where in the value it
// happened. An empty Path means the failure applies to the value as a whole.
type Violation struct {
	Path    Path
	Message string
}

// Violations is a collection of violations that satisfies the error
// interface. Validate returns values of this type for every failing value;
// it never returns any other error kind.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		if len(v.Path) == 0 {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

// Flat reports whether the failure is a single whole-value message rather
// than a per-location breakdown.
func (vs Violations) Flat() bool {
	return len(vs) == 1 && len(vs[0].Path) == 0
}

// Has reports whether any violation was recorded at the given path.
func (vs Violations) Has(p Path) bool {
	for _, v := range vs {
		if v.Path.Equal(p) {
			return true
		}
	}
	return false
}

// Get returns the messages recorded at the given path.
func (vs Violations) Get(p Path) []string {
	var messages []string
	for _, v := range vs {
		if v.Path.Equal(p) {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Paths returns the distinct offending paths in the order they were
// recorded.
func (vs Violations) Paths() []Path {
	var paths []Path
	seen := make(map[string]bool)
	for _, v := range vs {
		key := v.Path.String()
		if !seen[key] {
			paths = append(paths, v.Path)
			seen[key] = true
		}
	}
	return paths
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// ExtractViolations extracts a Violations value from an error, or nil when
// the error carries none.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	return nil
}

// IsViolation reports whether the error carries validation violations.
func IsViolation(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
