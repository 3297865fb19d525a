package spec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/treespec/pkg/spec"
)

func TestBool(t *testing.T) {
	t.Run("accepts booleans", func(t *testing.T) {
		s := spec.MustBool(spec.BoolOptions{})

		assert.NoError(t, s.Validate(true))
		assert.NoError(t, s.Validate(false))
	})

	t.Run("rejects everything else", func(t *testing.T) {
		s := spec.MustBool(spec.BoolOptions{})

		for _, value := range []any{0, 1, "true", []any{}, map[string]any{}} {
			err := s.Validate(value)
			require.Error(t, err, "value %v", value)

			vs := spec.ExtractViolations(err)
			require.Len(t, vs, 1)
			assert.Equal(t, "must be a boolean", vs[0].Message)
		}
	})

	t.Run("nullable spec prefixes the failure message", func(t *testing.T) {
		s := spec.MustBool(spec.BoolOptions{Nullable: true})

		err := s.Validate("nope")
		require.Error(t, err)
		assert.Equal(t, []string{"if not nil, must be a boolean"}, spec.ExtractViolations(err).Get(nil))
	})
}
