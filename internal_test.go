package htmlkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGroupIDShape(t *testing.T) {
	t.Parallel()
	id := newGroupID()
	assert.True(t, strings.HasPrefix(id, groupPrefix))
	suffix := strings.TrimPrefix(id, groupPrefix)
	assert.Len(t, suffix, 16)
	for _, r := range suffix {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestNewGroupIDUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for range 100 {
		id := newGroupID()
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestStyleClass(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "accordion-bordered", StyleBordered.class())
	assert.Equal(t, "accordion-flush", StyleFlush.class())
	assert.Equal(t, "accordion-plain", StylePlain.class())
	assert.Empty(t, Style(99).class())
}

func TestStatePairLastOpenColorWins(t *testing.T) {
	t.Parallel()
	a, b, c := MustHex("#111111"), MustHex("#222222"), MustHex("#333333")
	acc := Accordion{}.statePair(a, []Color{b, c}, "--base", "--hover", "--active", "--open")
	style, ok := acc.Render().Attrs().Get("style")
	assert.True(t, ok)
	assert.Contains(t, style, "--open: #333333")
	assert.Contains(t, style, "--base: #111111")
}
