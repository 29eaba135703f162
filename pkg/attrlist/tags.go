package attrlist

import "strings"

// Kind classifies a tag for marker placement.
type Kind int

const (
	KindInline         Kind = iota // spans, links, emphasis, comments, unknown tags
	KindBlock                      // any other block-level element
	KindHeader                     // h1-h6
	KindDefTerm                    // dt
	KindListItem                   // li
	KindOrderedList                // ol
	KindUnorderedList              // ul
	KindDefinitionList             // dl
	KindPreformatted               // pre and raw-text blocks, never scanned
)

// kindTable maps lowercase tag names to their kind. Tags not listed are inline.
var kindTable = map[string]Kind{
	"h1": KindHeader, "h2": KindHeader, "h3": KindHeader,
	"h4": KindHeader, "h5": KindHeader, "h6": KindHeader,
	"dt": KindDefTerm,
	"li": KindListItem,
	"ol": KindOrderedList,
	"ul": KindUnorderedList,
	"dl": KindDefinitionList,

	"pre":      KindPreformatted,
	"script":   KindPreformatted,
	"style":    KindPreformatted,
	"textarea": KindPreformatted,

	"address": KindBlock, "article": KindBlock, "aside": KindBlock,
	"blockquote": KindBlock, "body": KindBlock, "canvas": KindBlock,
	"colgroup": KindBlock, "dd": KindBlock, "details": KindBlock,
	"div": KindBlock, "fieldset": KindBlock, "figcaption": KindBlock,
	"figure": KindBlock, "footer": KindBlock, "form": KindBlock,
	"group": KindBlock, "header": KindBlock, "hgroup": KindBlock,
	"hr": KindBlock, "html": KindBlock, "iframe": KindBlock,
	"legend": KindBlock, "main": KindBlock, "map": KindBlock,
	"math": KindBlock, "menu": KindBlock, "nav": KindBlock,
	"noscript": KindBlock, "object": KindBlock, "option": KindBlock,
	"output": KindBlock, "p": KindBlock, "progress": KindBlock,
	"section": KindBlock, "summary": KindBlock, "table": KindBlock,
	"tbody": KindBlock, "td": KindBlock, "tfoot": KindBlock,
	"th": KindBlock, "thead": KindBlock, "tr": KindBlock,
	"video": KindBlock,
}

// Classify returns the kind of tag.
func Classify(tag string) Kind {
	if k, ok := kindTable[strings.ToLower(tag)]; ok {
		return k
	}
	return KindInline
}

// IsBlock reports whether elements of this kind are block-level.
func (k Kind) IsBlock() bool {
	return k != KindInline
}

// IsList reports whether k is a list container.
func (k Kind) IsList() bool {
	return k == KindOrderedList || k == KindUnorderedList || k == KindDefinitionList
}

// IsSubList reports whether k can nest inside a list item as a sub-list.
func (k Kind) IsSubList() bool {
	return k == KindOrderedList || k == KindUnorderedList
}

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindBlock:
		return "block"
	case KindHeader:
		return "header"
	case KindDefTerm:
		return "dt"
	case KindListItem:
		return "li"
	case KindOrderedList:
		return "ol"
	case KindUnorderedList:
		return "ul"
	case KindDefinitionList:
		return "dl"
	case KindPreformatted:
		return "pre"
	default:
		return "unknown"
	}
}
