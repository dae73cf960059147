package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns_Reorder(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		to         string
		want       []string
		wantErr    error
		wantManual bool
	}{
		{name: "swap ends", from: "a", to: "d", want: []string{"d", "b", "c", "a"}, wantManual: true},
		{name: "swap neighbours", from: "c", to: "b", want: []string{"a", "c", "b", "d"}, wantManual: true},
		{name: "same label", from: "b", to: "b", want: []string{"a", "b", "c", "d"}},
		{name: "unknown from", from: "x", to: "a", want: []string{"a", "b", "c", "d"}, wantErr: ErrUnknownLabel},
		{name: "unknown to", from: "a", to: "x", want: []string{"a", "b", "c", "d"}, wantErr: ErrUnknownLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New([]string{"a", "b", "c", "d"})

			err := c.Reorder(tt.from, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, c.Labels())
			assert.Equal(t, tt.wantManual, c.Manual())
		})
	}
}

func TestColumns_NewCopiesInput(t *testing.T) {
	seed := []string{"a", "b"}
	c := New(seed)

	require.NoError(t, c.Reorder("a", "b"))

	assert.Equal(t, []string{"a", "b"}, seed)
	labels := c.Labels()
	labels[0] = "z"
	assert.Equal(t, []string{"b", "a"}, c.Labels())
}

func TestColumns_Move(t *testing.T) {
	c := New([]string{"a", "b", "c"})

	require.NoError(t, c.Move("a", 1))
	assert.Equal(t, []string{"b", "a", "c"}, c.Labels())

	require.NoError(t, c.Move("c", -1))
	assert.Equal(t, []string{"b", "c", "a"}, c.Labels())

	assert.ErrorIs(t, c.Move("b", -1), ErrOutOfRange)
	assert.ErrorIs(t, c.Move("a", 1), ErrOutOfRange)
	assert.ErrorIs(t, c.Move("q", 1), ErrUnknownLabel)
	assert.Equal(t, 3, c.Len())
}

func TestColumns_Rebase(t *testing.T) {
	t.Run("untouched order adopts the new default", func(t *testing.T) {
		c := New([]string{"a", "b", "c"})

		rebased := c.Rebase([]string{"c", "a"})

		assert.Equal(t, []string{"c", "a"}, rebased.Labels())
		assert.False(t, rebased.Manual())
	})

	t.Run("manual order survives", func(t *testing.T) {
		c := New([]string{"a", "b", "c"})
		require.NoError(t, c.Reorder("a", "c"))

		rebased := c.Rebase([]string{"a", "d", "b", "c"})

		assert.Equal(t, []string{"c", "b", "a", "d"}, rebased.Labels())
		assert.True(t, rebased.Manual())
	})

	t.Run("vanished labels are dropped", func(t *testing.T) {
		c := New([]string{"a", "b", "c"})
		require.NoError(t, c.Reorder("a", "b"))

		rebased := c.Rebase([]string{"c", "a"})

		assert.Equal(t, []string{"a", "c"}, rebased.Labels())
	})
}
