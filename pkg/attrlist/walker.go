package attrlist

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/open-cli-collective/mdslides/pkg/etree"
)

// Walker attaches marker attributes to the elements of a tree in place.
// A Walker holds no per-document state and may be reused, but a single tree
// must not be walked concurrently.
type Walker struct {
	logger *slog.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWalker creates a Walker.
func NewWalker(opts ...Option) *Walker {
	w := &Walker{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run visits every element of root in document order, applies each marker it
// finds to the element it belongs to and removes the marker text. The tree
// structure is left unchanged. Run returns root.
func (w *Walker) Run(root *etree.Element) *etree.Element {
	root.Iter(func(el *etree.Element) bool {
		kind := Classify(el.Tag)
		switch {
		case kind == KindPreformatted:
			return false
		case kind.IsList():
			w.attachList(el)
		case kind.IsBlock():
			w.attachBlock(el, kind)
		default:
			w.attachInline(el)
		}
		return true
	})
	return root
}

// attachList looks for a {^ } marker at the end of the list's deepest last
// descendant. Lists never fall through to block handling.
func (w *Walker) attachList(list *etree.Element) {
	lc := deepestLastChild(list)

	var target *string
	switch {
	case strings.TrimSpace(lc.Tail) != "":
		target = &lc.Tail
	case strings.TrimSpace(lc.Text) != "":
		target = &lc.Text
	default:
		return
	}
	w.consume(list, ListPattern, target)
}

func (w *Walker) attachBlock(el *etree.Element, kind Kind) {
	re := BlockPattern
	if kind == KindHeader || kind == KindDefTerm {
		re = HeaderPattern
	}

	if kind == KindListItem && el.Len() > 0 {
		w.attachListItem(el, re)
		return
	}

	if last := el.LastChild(); last != nil && last.Tail != "" {
		if w.consume(el, re, &last.Tail) && kind == KindHeader {
			last.Tail = trimClosingHashes(last.Tail)
		}
		return
	}

	if el.Text != "" {
		if w.consume(el, re, &el.Text) && kind == KindHeader {
			el.Text = trimClosingHashes(el.Text)
		}
	}
}

// attachListItem handles list items with children. A marker written after
// the item's own content but before a nested list sits in the tail of the
// child preceding that list.
func (w *Walker) attachListItem(li *etree.Element, re *regexp.Regexp) {
	pos := -1
	for i, child := range li.Children() {
		if Classify(child.Tag).IsSubList() {
			pos = i
			break
		}
	}

	last := li.LastChild()
	switch {
	case pos < 0 && last.Tail != "":
		w.consume(li, re, &last.Tail)
	case pos > 0 && li.Child(pos-1).Tail != "":
		w.consume(li, re, &li.Child(pos-1).Tail)
	default:
		if li.Text != "" && w.consume(li, re, &li.Text) {
			return
		}
		// Sub-list is the first child: a marker may also follow it.
		if pos == 0 && last.Tail != "" {
			w.consume(li, re, &last.Tail)
		}
	}
}

// attachInline applies a marker that starts the tail of an inline element.
func (w *Walker) attachInline(el *etree.Element) {
	if el.Tail == "" {
		return
	}
	m, ok := Find(InlinePattern, el.Tail)
	if !ok {
		return
	}
	w.apply(el, m.Body)
	el.Tail = el.Tail[m.End:]
}

// consume searches *s with re. On a match the attributes are applied to el
// and *s is truncated at the start of the match.
func (w *Walker) consume(el *etree.Element, re *regexp.Regexp, s *string) bool {
	m, ok := Find(re, *s)
	if !ok {
		return false
	}
	w.apply(el, m.Body)
	*s = (*s)[:m.Start]
	return true
}

func (w *Walker) apply(el *etree.Element, body string) {
	Assign(el, body)
	w.logger.Debug("attached attributes", "tag", el.Tag, "marker", strings.TrimSpace(body))
}

// deepestLastChild follows the last-child relation until a childless element.
func deepestLastChild(el *etree.Element) *etree.Element {
	for el.Len() > 0 {
		el = el.LastChild()
	}
	return el
}

// trimClosingHashes removes the closing sequence of an ATX header.
func trimClosingHashes(s string) string {
	return strings.TrimRightFunc(strings.TrimRight(s, "#"), unicode.IsSpace)
}
