package markup_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loseth/htmlkit/markup"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestWriteNodes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		node markup.Node
		want string
	}{
		"empty element": {
			node: markup.Element("div"),
			want: "<div></div>",
		},
		"nested elements": {
			node: markup.Element("ul",
				markup.Element("li", markup.Text("one")),
				markup.Element("li", markup.Text("two")),
			),
			want: "<ul><li>one</li><li>two</li></ul>",
		},
		"text is escaped": {
			node: markup.Element("p", markup.Text(`a < b & "c"`)),
			want: "<p>a &lt; b &amp; &#34;c&#34;</p>",
		},
		"raw is verbatim": {
			node: markup.Element("p", markup.Raw("<em>hi</em>")),
			want: "<p><em>hi</em></p>",
		},
		"void element has no closing tag": {
			node: markup.Element("hr"),
			want: "<hr>",
		},
		"fragment renders children only": {
			node: markup.Fragment(markup.Element("i"), markup.Text("x")),
			want: "<i></i>x",
		},
		"zero value renders nothing": {
			node: markup.Node{},
			want: "",
		},
		"empty text renders nothing": {
			node: markup.Text(""),
			want: "",
		},
		"attribute order is id class style extras": {
			node: markup.Element("section").
				Attr("data-kind", "demo").
				Style("--x", "1").
				Class("a", "b").
				ID("main"),
			want: `<section id="main" class="a b" style="--x: 1" data-kind="demo"></section>`,
		},
		"attribute values are escaped": {
			node: markup.Element("div").Attr("title", `say "hi" & go`),
			want: `<div title="say &#34;hi&#34; &amp; go"></div>`,
		},
		"boolean attribute renders bare": {
			node: markup.Element("details").Flag("open").Attr("name", "grp"),
			want: `<details open name="grp"></details>`,
		},
		"textf formats": {
			node: markup.Element("span", markup.Textf("%d items", 3)),
			want: "<span>3 items</span>",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markup.String(tt.node))
		})
	}
}

func TestWriteMultipleNodes(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	err := markup.Write(&sb, markup.Element("br"), markup.Text("x"))
	require.NoError(t, err)
	assert.Equal(t, "<br>x", sb.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	err := markup.Write(&errWriter{}, markup.Element("div", markup.Text("x")))
	require.ErrorIs(t, err, errWriteFailed)
}

func TestNodeStringMatchesWrite(t *testing.T) {
	t.Parallel()
	n := markup.Element("p", markup.Text("hi")).Class("lead")
	assert.Equal(t, markup.String(n), n.String())
}

func TestNodeAccessors(t *testing.T) {
	t.Parallel()
	n := markup.Element("section",
		markup.Element("h1"),
		markup.Text("t"),
	).ID("top").Class("a", "b").Style("--pad", "1rem").Attr("role", "region")

	assert.Equal(t, markup.KindElement, n.Kind())
	assert.Equal(t, "section", n.Tag())
	assert.Equal(t, 2, n.ChildCount())
	assert.Equal(t, []string{"a", "b"}, n.Classes())

	id, ok := n.AttrValue("id")
	require.True(t, ok)
	assert.Equal(t, "top", id)

	class, ok := n.AttrValue("class")
	require.True(t, ok)
	assert.Equal(t, "a b", class)

	style, ok := n.AttrValue("style")
	require.True(t, ok)
	assert.Equal(t, "--pad: 1rem", style)

	role, ok := n.AttrValue("role")
	require.True(t, ok)
	assert.Equal(t, "region", role)

	_, ok = n.AttrValue("missing")
	assert.False(t, ok)

	kids := n.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "h1", kids[0].Tag())
	assert.Equal(t, markup.KindText, kids[1].Kind())
}

func TestNodeWithAppendsInOrder(t *testing.T) {
	t.Parallel()
	n := markup.Element("ol", markup.Element("li", markup.Text("1")))
	n = n.With(markup.Element("li", markup.Text("2")), markup.Element("li", markup.Text("3")))
	assert.Equal(t, "<ol><li>1</li><li>2</li><li>3</li></ol>", markup.String(n))
}

func TestNodeWithOnTextIsNoop(t *testing.T) {
	t.Parallel()
	n := markup.Text("x").With(markup.Element("b"))
	assert.Equal(t, "x", markup.String(n))
}

// Derived copies must never share a writable backing array with the value
// they were derived from, even when the original has spare capacity.
func TestNodeCopiesDoNotAlias(t *testing.T) {
	t.Parallel()

	base := markup.Element("div").Class("a")
	left := base.Class("left")
	right := base.Class("right")

	assert.Equal(t, []string{"a"}, base.Classes())
	assert.Equal(t, []string{"a", "left"}, left.Classes())
	assert.Equal(t, []string{"a", "right"}, right.Classes())

	parent := markup.Element("ul", markup.Element("li"))
	one := parent.With(markup.Element("li", markup.Text("one")))
	two := parent.With(markup.Element("li", markup.Text("two")))

	assert.Equal(t, 1, parent.ChildCount())
	assert.Equal(t, "<ul><li></li><li>one</li></ul>", markup.String(one))
	assert.Equal(t, "<ul><li></li><li>two</li></ul>", markup.String(two))
}

func TestNodeAccessorResultsAreCopies(t *testing.T) {
	t.Parallel()
	n := markup.Element("div", markup.Element("i")).Class("a")

	n.Classes()[0] = "mutated"
	assert.Equal(t, []string{"a"}, n.Classes())

	n.Children()[0] = markup.Text("mutated")
	assert.Equal(t, "i", n.Children()[0].Tag())
}

func TestAttrsClassDedupes(t *testing.T) {
	t.Parallel()
	a := markup.Attrs{}.Class("a", "b").Class("b", "", "c").Class("a")
	assert.Equal(t, []string{"a", "b", "c"}, a.Classes())
}

func TestAttrsStyleLastWriteWinsKeepsPosition(t *testing.T) {
	t.Parallel()
	a := markup.Attrs{}.
		Style("--first", "1").
		Style("--second", "2").
		Style("--first", "10")
	assert.Equal(t, []markup.StyleProp{
		{Name: "--first", Value: "10"},
		{Name: "--second", Value: "2"},
	}, a.Styles())
}

func TestAttrsSetOverwrites(t *testing.T) {
	t.Parallel()
	a := markup.Attrs{}.Set("name", "x").Set("name", "y")
	got, ok := a.Get("name")
	require.True(t, ok)
	assert.Equal(t, "y", got)
}

func TestAttrsFlagPresentWithEmptyValue(t *testing.T) {
	t.Parallel()
	a := markup.Attrs{}.Flag("open")
	got, ok := a.Get("open")
	require.True(t, ok)
	assert.Equal(t, "", got)
}

func TestAttrsMerge(t *testing.T) {
	t.Parallel()
	base := markup.Attrs{}.
		ID("old").
		Class("a").
		Style("--x", "1").
		Set("role", "region")
	over := markup.Attrs{}.
		ID("new").
		Class("a", "b").
		Style("--x", "2").
		Set("data-k", "v")

	got := base.Merge(over)

	assert.Equal(t, "new", got.GetID())
	assert.Equal(t, []string{"a", "b"}, got.Classes())
	assert.Equal(t, []markup.StyleProp{{Name: "--x", Value: "2"}}, got.Styles())

	role, ok := got.Get("role")
	require.True(t, ok)
	assert.Equal(t, "region", role)
	dk, ok := got.Get("data-k")
	require.True(t, ok)
	assert.Equal(t, "v", dk)

	// Merge with an unset id keeps the original.
	kept := base.Merge(markup.Attrs{}.Class("c"))
	assert.Equal(t, "old", kept.GetID())
}

func TestAttrsMergeLeavesOperandsUnchanged(t *testing.T) {
	t.Parallel()
	a := markup.Attrs{}.Class("a")
	b := markup.Attrs{}.Class("b")
	_ = a.Merge(b)
	assert.Equal(t, []string{"a"}, a.Classes())
	assert.Equal(t, []string{"b"}, b.Classes())
}

func TestAttrsEmpty(t *testing.T) {
	t.Parallel()
	assert.True(t, markup.Attrs{}.Empty())
	assert.False(t, markup.Attrs{}.Class("x").Empty())
	assert.False(t, markup.Attrs{}.ID("x").Empty())
	assert.False(t, markup.Attrs{}.Flag("open").Empty())
}

func TestDumpOutline(t *testing.T) {
	t.Parallel()
	n := markup.Element("section",
		markup.Element("details",
			markup.Element("summary", markup.Text("Overview")),
		).Class("accordion-item"),
		markup.Raw("<b>x</b>"),
	).ID("grp").Class("accordion")

	out := markup.Dump(n)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.True(t, strings.HasPrefix(lines[0], "section"))
	assert.Contains(t, lines[0], `id="grp" class="accordion"`)
	assert.True(t, strings.HasPrefix(lines[1], "  details"))
	assert.True(t, strings.HasPrefix(lines[2], "    summary"))
	assert.Equal(t, `      "Overview"`, lines[3])
	assert.Equal(t, `  raw "<b>x</b>"`, lines[4])

	// Attribute columns start at the same offset.
	assert.Equal(t, strings.Index(lines[0], `id="grp"`), strings.Index(lines[1], `class=`))
}

func TestDumpTruncatesLongText(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 100)
	out := markup.Dump(markup.Element("p", markup.Text(long)))
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, long)
}
