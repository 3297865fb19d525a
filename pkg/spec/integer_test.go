package spec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/treespec/pkg/spec"
)

func TestInt_Construction(t *testing.T) {
	t.Run("rejects gt together with gte", func(t *testing.T) {
		_, err := spec.Int(spec.IntOptions{GT: ptr(int64(5)), GTE: ptr(int64(3))})

		require.Error(t, err)
		require.ErrorIs(t, err, spec.ErrInvalidBounds)
		assert.Contains(t, err.Error(), "gt and gte are mutually exclusive")
	})

	t.Run("rejects lt together with lte", func(t *testing.T) {
		_, err := spec.Int(spec.IntOptions{LT: ptr(int64(5)), LTE: ptr(int64(7))})

		require.Error(t, err)
		require.ErrorIs(t, err, spec.ErrInvalidBounds)
		assert.Contains(t, err.Error(), "lt and lte are mutually exclusive")
	})

	t.Run("rejects a lower bound above the upper bound", func(t *testing.T) {
		_, err := spec.Int(spec.IntOptions{GT: ptr(int64(5)), LT: ptr(int64(4))})

		require.Error(t, err)
		require.ErrorIs(t, err, spec.ErrInvalidBounds)
		assert.Contains(t, err.Error(), "gt must be strictly less than lt")
	})

	t.Run("rejects equal bounds", func(t *testing.T) {
		_, err := spec.Int(spec.IntOptions{GT: ptr(int64(5)), LT: ptr(int64(5))})

		require.Error(t, err)
		require.ErrorIs(t, err, spec.ErrInvalidBounds)
	})

	t.Run("names the configured bound pair", func(t *testing.T) {
		_, err := spec.Int(spec.IntOptions{GTE: ptr(int64(9)), LTE: ptr(int64(2))})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "gte must be strictly less than lte")
	})
}

func TestInt_Validate(t *testing.T) {
	t.Run("accepts integers without bounds", func(t *testing.T) {
		s := spec.MustInt(spec.IntOptions{})

		assert.NoError(t, s.Validate(0))
		assert.NoError(t, s.Validate(-14))
		assert.NoError(t, s.Validate(int64(1<<40)))
	})

	t.Run("accepts decoded JSON number forms", func(t *testing.T) {
		s := spec.MustInt(spec.IntOptions{})

		assert.NoError(t, s.Validate(float64(4)))
		assert.NoError(t, s.Validate(json.Number("4")))
	})

	t.Run("rejects fractional and non-numeric values", func(t *testing.T) {
		s := spec.MustInt(spec.IntOptions{})

		for _, value := range []any{4.5, "4", true, json.Number("4.5"), []any{4}} {
			err := s.Validate(value)
			require.Error(t, err, "value %v", value)
			assert.Equal(t, []string{"must be an integer"}, spec.ExtractViolations(err).Get(nil))
		}
	})

	t.Run("strict bounds exclude their boundary", func(t *testing.T) {
		s := spec.MustInt(spec.IntOptions{GT: ptr(int64(5)), LT: ptr(int64(10))})

		assert.Error(t, s.Validate(5))
		assert.NoError(t, s.Validate(6))
		assert.NoError(t, s.Validate(9))
		assert.Error(t, s.Validate(10))
	})

	t.Run("inclusive bounds admit their boundary", func(t *testing.T) {
		s := spec.MustInt(spec.IntOptions{GTE: ptr(int64(5)), LTE: ptr(int64(10))})

		assert.Error(t, s.Validate(4))
		assert.NoError(t, s.Validate(5))
		assert.NoError(t, s.Validate(10))
		assert.Error(t, s.Validate(11))
	})

	t.Run("composes the failure message from the configured bounds", func(t *testing.T) {
		tests := []struct {
			name string
			opts spec.IntOptions
			want string
		}{
			{
				name: "no bounds",
				opts: spec.IntOptions{},
				want: "must be an integer",
			},
			{
				name: "single lower bound",
				opts: spec.IntOptions{GT: ptr(int64(5))},
				want: "must be an integer greater than 5",
			},
			{
				name: "single inclusive upper bound",
				opts: spec.IntOptions{LTE: ptr(int64(9))},
				want: "must be an integer less than or equal to 9",
			},
			{
				name: "both bounds join with and",
				opts: spec.IntOptions{GT: ptr(int64(5)), LT: ptr(int64(10))},
				want: "must be an integer greater than 5 and less than 10",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := spec.MustInt(tt.opts)

				err := s.Validate("nope")
				require.Error(t, err)
				assert.Equal(t, []string{tt.want}, spec.ExtractViolations(err).Get(nil))
			})
		}
	})
}
