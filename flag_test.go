package clitree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	t.Parallel()

	t.Run("set is idempotent", func(t *testing.T) {
		t.Parallel()
		f := NewFlag("loud", 'l', "Shout")

		assert.Equal(t, "loud", f.Name())
		assert.Equal(t, 'l', f.Short())
		assert.Equal(t, "Shout", f.Description())
		assert.False(t, f.IsSet())
		f.Set()
		f.Set()
		assert.True(t, f.IsSet())
	})
	t.Run("match", func(t *testing.T) {
		t.Parallel()

		withShort := NewFlag("loud", 'l', "")
		noShort := NewFlag("quiet", 0, "")
		tests := []struct {
			token string
			flag  *Flag
			want  bool
		}{
			{"--loud", withShort, true},
			{"-l", withShort, true},
			{"--l", withShort, false},
			{"-loud", withShort, false},
			{"-L", withShort, false},
			{"--loud=true", withShort, false},
			{"--", withShort, false},
			{"-", withShort, false},
			{"loud", withShort, false},
			{"--quiet", noShort, true},
			{"-q", noShort, false},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, tt.flag.match(tt.token), "token %q against %q", tt.token, tt.flag.Name())
		}
	})
	t.Run("multibyte short form", func(t *testing.T) {
		t.Parallel()
		f := NewFlag("lambda", 'λ', "")

		assert.True(t, f.match("-λ"))
	})
}
