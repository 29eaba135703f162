// Package etree provides a small ordered element tree in which character data
// is stored as Text (before the first child) and Tail (after the element's
// end, before the next sibling).
package etree

// Comment is the tag used for comment elements. A comment keeps its content in Text.
const Comment = "!--"

// Attr is a single attribute key/value pair.
type Attr struct {
	Key   string
	Value string
}

// Element is a node of the document tree.
type Element struct {
	Tag  string
	Text string
	Tail string

	attrs    []Attr
	children []*Element
}

// New creates an element with the given tag.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// SubElement creates a child element and appends it to parent.
func SubElement(parent *Element, tag string) *Element {
	child := New(tag)
	parent.Append(child)
	return child
}

// Append adds children to the end of e and returns e.
func (e *Element) Append(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}

// Len returns the number of children.
func (e *Element) Len() int {
	return len(e.children)
}

// Child returns the i-th child, or nil if out of range.
func (e *Element) Child(i int) *Element {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Children returns the children of e. The slice must not be modified.
func (e *Element) Children() []*Element {
	return e.children
}

// LastChild returns the last child, or nil if e has no children.
func (e *Element) LastChild() *Element {
	return e.Child(len(e.children) - 1)
}

// Get returns the value of attribute key.
func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Set assigns an attribute. An existing key is overwritten in place so the
// original insertion order is preserved.
func (e *Element) Set(key, value string) {
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
}

// Attrs returns a copy of the attributes in insertion order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// AttrMap returns the attributes as a map.
func (e *Element) AttrMap() map[string]string {
	m := make(map[string]string, len(e.attrs))
	for _, a := range e.attrs {
		m[a.Key] = a.Value
	}
	return m
}

// Iter calls fn for e and every descendant in document (pre-order) order.
// Returning false from fn skips the descendants of that element.
func (e *Element) Iter(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Iter(fn)
	}
}

// Find returns the first element in document order with the given tag.
func (e *Element) Find(tag string) *Element {
	var found *Element
	e.Iter(func(el *Element) bool {
		if found != nil {
			return false
		}
		if el.Tag == tag {
			found = el
			return false
		}
		return true
	})
	return found
}
