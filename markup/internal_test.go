package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadRightUsesDisplayWidth(t *testing.T) {
	t.Parallel()
	// "你" occupies two columns, so only two spaces of padding are needed
	// to reach a width of four.
	assert.Equal(t, "你  ", padRight("你", 4))
}

func TestPadRightNoPadWhenWide(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello", padRight("hello", 3))
}

func TestQuoteTruncated(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `"short"`, quoteTruncated("short"))

	long := quoteTruncated(strings.Repeat("x", maxDumpText+10))
	assert.Contains(t, long, "...")
	assert.LessOrEqual(t, len(long), maxDumpText+2)
}

func TestJoinStyles(t *testing.T) {
	t.Parallel()
	got := joinStyles([]StyleProp{
		{Name: "--a", Value: "1"},
		{Name: "color", Value: "red"},
	})
	assert.Equal(t, "--a: 1; color: red", got)
}

func TestJoinClasses(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b c", joinClasses([]string{"a", "b", "c"}))
}
