package attrlist

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdslides/pkg/etree"
)

// node builds an element with text and tail in one call.
func node(tag, text, tail string, children ...*etree.Element) *etree.Element {
	el := etree.New(tag)
	el.Text = text
	el.Tail = tail
	el.Append(children...)
	return el
}

func doc(children ...*etree.Element) *etree.Element {
	return node(etree.RootTag, "", "", children...)
}

func TestWalker_Header(t *testing.T) {
	h2 := node("h2", "Title {: #intro .big }", "\n")
	NewWalker().Run(doc(h2))

	assert.Equal(t, "Title", h2.Text)
	assert.Equal(t, map[string]string{"id": "intro", "class": "big"}, h2.AttrMap())
}

func TestWalker_HeaderClosingHashes(t *testing.T) {
	h2 := node("h2", "Title ## {: .x}", "")
	NewWalker().Run(doc(h2))

	assert.Equal(t, "Title", h2.Text)
	assert.Equal(t, map[string]string{"class": "x"}, h2.AttrMap())
}

func TestWalker_HeaderWithInlineChild(t *testing.T) {
	em := node("em", "big", " title ## {: .x}")
	h1 := node("h1", "A ", "", em)
	NewWalker().Run(doc(h1))

	assert.Equal(t, " title", em.Tail)
	assert.Equal(t, map[string]string{"class": "x"}, h1.AttrMap())
	assert.Empty(t, em.AttrMap())
}

func TestWalker_HeaderIgnoresBlockMarker(t *testing.T) {
	h3 := node("h3", "Title\n{: .x}", "")
	NewWalker().Run(doc(h3))

	// a header's marker must be on the same line
	assert.Equal(t, "Title\n{: .x}", h3.Text)
	assert.Empty(t, h3.AttrMap())
}

func TestWalker_DefinitionTerm(t *testing.T) {
	dt := node("dt", "Term {: .term}", "\n")
	dd := node("dd", "Definition", "\n")
	dl := node("dl", "\n", "", dt, dd)
	NewWalker().Run(doc(dl))

	assert.Equal(t, "Term", dt.Text)
	assert.Equal(t, map[string]string{"class": "term"}, dt.AttrMap())
	assert.Empty(t, dl.AttrMap())
}

func TestWalker_Paragraph(t *testing.T) {
	p := node("p", "Some text\nmore\n{: .lead data-x=1}", "\n")
	NewWalker().Run(doc(p))

	assert.Equal(t, "Some text\nmore", p.Text)
	assert.Equal(t, map[string]string{"class": "lead", "data-x": "1"}, p.AttrMap())
}

func TestWalker_ParagraphWithChildren(t *testing.T) {
	strong := node("strong", "bold", " end\n{: #p1}")
	p := node("p", "Start ", "", strong)
	NewWalker().Run(doc(p))

	assert.Equal(t, " end", strong.Tail)
	assert.Equal(t, map[string]string{"id": "p1"}, p.AttrMap())
	assert.Empty(t, strong.AttrMap())
}

func TestWalker_ParagraphEmptyLastTailFallsBackToText(t *testing.T) {
	br := node("br", "", "")
	p := node("p", "Text\n{: .x}", "", br)
	NewWalker().Run(doc(p))

	assert.Equal(t, "Text", p.Text)
	assert.Equal(t, map[string]string{"class": "x"}, p.AttrMap())
}

func TestWalker_Inline(t *testing.T) {
	em := node("em", "emphasis", "{: .highlight}more text")
	p := node("p", "Some ", "", em)
	NewWalker().Run(doc(p))

	assert.Equal(t, "more text", em.Tail)
	assert.Equal(t, map[string]string{"class": "highlight"}, em.AttrMap())
	assert.Empty(t, p.AttrMap())
}

func TestWalker_InlineAndBlockInSameTail(t *testing.T) {
	em := node("em", "x", "{: .hl} rest\n{: .para}")
	p := node("p", "", "", em)
	NewWalker().Run(doc(p))

	assert.Equal(t, " rest", em.Tail)
	assert.Equal(t, map[string]string{"class": "hl"}, em.AttrMap())
	assert.Equal(t, map[string]string{"class": "para"}, p.AttrMap())
}

func TestWalker_ListContainer(t *testing.T) {
	first := node("li", "One", "\n")
	last := node("li", "Two", "\n{^ .deck}")
	ul := node("ul", "\n", "\n", first, last)
	NewWalker().Run(doc(ul))

	assert.Equal(t, map[string]string{"class": "deck"}, ul.AttrMap())
	assert.Equal(t, "", last.Tail)
	assert.Equal(t, "Two", last.Text)
	assert.Empty(t, last.AttrMap())
}

func TestWalker_ListContainerFromText(t *testing.T) {
	last := node("li", "Two\n{^ #agenda}", "\n")
	ol := node("ol", "\n", "", last)
	NewWalker().Run(doc(ol))

	assert.Equal(t, map[string]string{"id": "agenda"}, ol.AttrMap())
	assert.Equal(t, "Two", last.Text)
}

func TestWalker_ListContainerDeepestDescendant(t *testing.T) {
	em := node("em", "deep", "\n{^ .outer}")
	inner := node("li", "", "", em)
	innerUL := node("ul", "", "", inner)
	outer := node("li", "Top\n", "", innerUL)
	ul := node("ul", "", "", outer)
	NewWalker().Run(doc(ul))

	// the outer list is visited first and claims the marker
	assert.Equal(t, map[string]string{"class": "outer"}, ul.AttrMap())
	assert.Empty(t, innerUL.AttrMap())
	assert.Equal(t, "", em.Tail)
}

func TestWalker_ListContainerNoFallThrough(t *testing.T) {
	li := node("li", "Item", "")
	ul := node("ul", "", "\n{: .x}", li)
	NewWalker().Run(ul)

	assert.Empty(t, ul.AttrMap())
	assert.Equal(t, "\n{: .x}", ul.Tail)
}

func TestWalker_ListItemWithoutChildren(t *testing.T) {
	li := node("li", "Item\n{: .done}", "\n")
	ul := node("ul", "\n", "", li)
	NewWalker().Run(doc(ul))

	assert.Equal(t, "Item", li.Text)
	assert.Equal(t, map[string]string{"class": "done"}, li.AttrMap())
	assert.Empty(t, ul.AttrMap())
}

func TestWalker_ListItemLastChildTail(t *testing.T) {
	a := node("a", "link", " after\n{: .item}")
	li := node("li", "See ", "", a)
	NewWalker().Run(doc(node("ul", "", "", li)))

	assert.Equal(t, " after", a.Tail)
	assert.Equal(t, map[string]string{"class": "item"}, li.AttrMap())
}

func TestWalker_ListItemBeforeSubList(t *testing.T) {
	strong := node("strong", "Item", " text\n{: .parent}\n")
	sub := node("ul", "\n", "\n", node("li", "child", "\n"))
	li := node("li", "", "", strong, sub)
	NewWalker().Run(doc(node("ul", "", "", li)))

	assert.Equal(t, " text", strong.Tail)
	assert.Equal(t, map[string]string{"class": "parent"}, li.AttrMap())
	assert.Empty(t, sub.AttrMap())
}

func TestWalker_ListItemSubListFirstUsesText(t *testing.T) {
	sub := node("ul", "\n", "\n", node("li", "child", "\n"))
	li := node("li", "Item text\n{: .own}", "", sub)
	NewWalker().Run(doc(node("ul", "", "", li)))

	assert.Equal(t, "Item text", li.Text)
	assert.Equal(t, map[string]string{"class": "own"}, li.AttrMap())
}

func TestWalker_ListItemMarkerAfterSubList(t *testing.T) {
	nestedItem := node("li", "nested", "\n")
	sub := node("ul", "\n", "\n{: .nested }", nestedItem)
	li := node("li", "Item text", "", sub)
	outer := node("ul", "", "", li)
	NewWalker().Run(doc(outer))

	assert.Equal(t, map[string]string{"class": "nested"}, li.AttrMap())
	assert.Empty(t, sub.AttrMap())
	assert.Empty(t, nestedItem.AttrMap())
	assert.Empty(t, outer.AttrMap())
	assert.Equal(t, "Item text", li.Text)
	assert.Equal(t, "", sub.Tail)
}

func TestWalker_PreformattedIsOpaque(t *testing.T) {
	code := node("code", "x := 1\n{: .x}", "")
	span := node("span", "tok", "{: .y}")
	code.Append(span)
	pre := node("pre", "", "\n", code)
	NewWalker().Run(doc(pre))

	assert.Equal(t, "x := 1\n{: .x}", code.Text)
	assert.Equal(t, "{: .y}", span.Tail)
	assert.Empty(t, pre.AttrMap())
	assert.Empty(t, code.AttrMap())
	assert.Empty(t, span.AttrMap())
}

func TestWalker_MalformedBodyStillConsumed(t *testing.T) {
	p := node("p", "Text\n{: =??}", "")
	NewWalker().Run(doc(p))

	assert.Equal(t, "Text", p.Text)
	assert.Empty(t, p.AttrMap())
}

func TestWalker_NoMarkersLeavesTreeUnchanged(t *testing.T) {
	root, err := etree.ParseString("<h1>Title</h1>\n<p>Hello <em>world</em> {not a marker}</p>\n<ul>\n<li>One</li>\n<li>Two\n<ol>\n<li>Three</li>\n</ol>\n</li>\n</ul>\n")
	require.NoError(t, err)

	before, err := root.InnerHTML()
	require.NoError(t, err)

	NewWalker().Run(root)

	after, err := root.InnerHTML()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWalker_SecondRunIsNoop(t *testing.T) {
	root, err := etree.ParseString("<h2>Title {: #t}</h2>\n<p>Para <em>x</em>{: .e} y\n{: .p}</p>\n<ul>\n<li>A</li>\n<li>B\n{^ .deck}</li>\n</ul>\n")
	require.NoError(t, err)

	w := NewWalker()
	w.Run(root)
	first, err := root.InnerHTML()
	require.NoError(t, err)

	w.Run(root)
	second, err := root.InnerHTML()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "<h2 id=\"t\">Title</h2>\n<p class=\"p\">Para <em class=\"e\">x</em> y</p>\n<ul class=\"deck\">\n<li>A</li>\n<li>B</li>\n</ul>\n", first)
}

func TestWalker_StructureUnchanged(t *testing.T) {
	root, err := etree.ParseString("<ul>\n<li>A\n<ul>\n<li>B</li>\n</ul>\n{: .x}</li>\n</ul>\n<p>t\n{: .y}</p>")
	require.NoError(t, err)

	tags := func() []string {
		var out []string
		root.Iter(func(el *etree.Element) bool {
			out = append(out, el.Tag)
			return true
		})
		return out
	}

	before := tags()
	NewWalker().Run(root)
	assert.Equal(t, before, tags())
}

func TestWalker_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := node("p", "Text\n{: .lead}", "")
	NewWalker(WithLogger(logger)).Run(doc(p))

	assert.Contains(t, buf.String(), "attached attributes")
	assert.Contains(t, buf.String(), "tag=p")
}
