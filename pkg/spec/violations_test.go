package spec_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/treespec/pkg/spec"
)

func TestViolations_Error(t *testing.T) {
	t.Run("returns default message when empty", func(t *testing.T) {
		var vs spec.Violations
		assert.Equal(t, "validation failed", vs.Error())
	})

	t.Run("renders a flat violation without a path", func(t *testing.T) {
		vs := spec.Violations{{Message: "must be a boolean"}}
		assert.Equal(t, "validation failed: must be a boolean", vs.Error())
	})

	t.Run("renders paths before messages", func(t *testing.T) {
		vs := spec.Violations{
			{Path: spec.Path{spec.Field("a")}, Message: "is required"},
			{Path: spec.Path{spec.Field("items"), spec.Index(2)}, Message: "must be a string"},
		}
		assert.Equal(t, "validation failed: a: is required; items[2]: must be a string", vs.Error())
	})
}

func TestViolations_Add(t *testing.T) {
	t.Run("appends to the collection", func(t *testing.T) {
		var vs spec.Violations
		vs.Add(spec.Violation{Path: spec.Path{spec.Field("a")}, Message: "is required"})

		assert.True(t, vs.Has(spec.Path{spec.Field("a")}))
		assert.Equal(t, []string{"is required"}, vs.Get(spec.Path{spec.Field("a")}))
	})
}

func TestViolations_Flat(t *testing.T) {
	t.Run("single pathless violation is flat", func(t *testing.T) {
		vs := spec.Violations{{Message: "cannot be nil"}}
		assert.True(t, vs.Flat())
	})

	t.Run("pathed violations are not flat", func(t *testing.T) {
		vs := spec.Violations{{Path: spec.Path{spec.Field("a")}, Message: "is required"}}
		assert.False(t, vs.Flat())
	})
}

func TestViolations_Paths(t *testing.T) {
	t.Run("returns distinct paths in recorded order", func(t *testing.T) {
		vs := spec.Violations{
			{Path: spec.Path{spec.Field("b")}, Message: "one"},
			{Path: spec.Path{spec.Field("a")}, Message: "two"},
			{Path: spec.Path{spec.Field("b")}, Message: "three"},
		}

		paths := vs.Paths()
		require.Len(t, paths, 2)
		assert.True(t, paths[0].Equal(spec.Path{spec.Field("b")}))
		assert.True(t, paths[1].Equal(spec.Path{spec.Field("a")}))
	})
}

func TestExtractViolations(t *testing.T) {
	t.Run("extracts violations from a validation error", func(t *testing.T) {
		s := spec.MustBool(spec.BoolOptions{})

		err := s.Validate("nope")
		require.Error(t, err)

		vs := spec.ExtractViolations(err)
		require.NotNil(t, vs)
		assert.False(t, vs.IsEmpty())
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("request rejected: %w", spec.Violations{{Message: "cannot be nil"}})

		vs := spec.ExtractViolations(wrapped)
		require.Len(t, vs, 1)
		assert.Equal(t, "cannot be nil", vs[0].Message)
	})

	t.Run("returns nil for nil and foreign errors", func(t *testing.T) {
		assert.Nil(t, spec.ExtractViolations(nil))
		assert.Nil(t, spec.ExtractViolations(errors.New("boom")))
	})
}

func TestIsViolation(t *testing.T) {
	t.Run("detects validation errors", func(t *testing.T) {
		s := spec.MustBool(spec.BoolOptions{})

		assert.True(t, spec.IsViolation(s.Validate(1)))
		assert.False(t, spec.IsViolation(errors.New("boom")))
		assert.False(t, spec.IsViolation(nil))
	})
}
