package attrlist

import (
	"regexp"
	"strings"

	"github.com/open-cli-collective/mdslides/pkg/etree"
)

// classKey is the pseudo key produced by .name tokens.
const classKey = "."

// tokenRule is one alternative of the attribute-list scanner. Rules are tried
// in order at the current position and the first match wins.
type tokenRule struct {
	re     *regexp.Regexp
	handle func(tok string) (key, value string, ok bool)
}

var tokenRules = []tokenRule{
	{regexp.MustCompile(`^[^\s=]+=".*?"`), quotedValue},
	{regexp.MustCompile(`^[^\s=]+='.*?'`), quotedValue},
	{regexp.MustCompile(`^[^\s=]+=[^\s=]+`), keyValue},
	{regexp.MustCompile(`^[^\s=]+`), word},
	{regexp.MustCompile(`^\s+`), nil},
}

// typographicQuotes undoes smart-quote substitution inside marker bodies.
var typographicQuotes = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`,
	"‘", "'", "’", "'",
)

// invalidNameChars matches runs of characters that are not XML NameChars.
var invalidNameChars = regexp.MustCompile(`[^A-Z_a-z\x{00c0}-\x{00d6}\x{00d8}-\x{00f6}\x{00f8}-\x{02ff}` +
	`\x{0370}-\x{037d}\x{037f}-\x{1fff}\x{200c}-\x{200d}\x{2070}-\x{218f}\x{2c00}-\x{2fef}` +
	`\x{3001}-\x{d7ff}\x{f900}-\x{fdcf}\x{fdf0}-\x{fffd}:\-.0-9\x{00b7}\x{0300}-\x{036f}\x{203f}-\x{2040}]+`)

// Parse tokenizes an attribute-list body into key/value pairs in source order.
// A .name token yields the key "."; #name yields id. Scanning stops at the
// first position no rule matches, so malformed input gives a partial result.
func Parse(body string) []etree.Attr {
	s := typographicQuotes.Replace(body)

	var attrs []etree.Attr
	for s != "" {
		matched := false
		for _, rule := range tokenRules {
			tok := rule.re.FindString(s)
			if tok == "" {
				continue
			}
			matched = true
			s = s[len(tok):]
			if rule.handle == nil {
				break
			}
			if k, v, ok := rule.handle(tok); ok {
				attrs = append(attrs, etree.Attr{Key: k, Value: v})
			}
			break
		}
		if !matched {
			break
		}
	}
	return attrs
}

// Assign parses body and applies the attributes to el. Class tokens
// accumulate into a single space-separated class value; every other key
// overwrites.
func Assign(el *etree.Element, body string) {
	for _, a := range Parse(body) {
		if a.Key == classKey {
			if cls, ok := el.Get("class"); ok && cls != "" {
				el.Set("class", cls+" "+a.Value)
			} else {
				el.Set("class", a.Value)
			}
			continue
		}
		el.Set(SanitizeName(a.Key), a.Value)
	}
}

// SanitizeName replaces characters that are not valid in an attribute name with "_".
func SanitizeName(name string) string {
	return invalidNameChars.ReplaceAllString(name, "_")
}

func quotedValue(tok string) (string, string, bool) {
	k, v, _ := strings.Cut(tok, "=")
	return k, v[1 : len(v)-1], true
}

func keyValue(tok string) (string, string, bool) {
	k, v, _ := strings.Cut(tok, "=")
	return k, v, true
}

func word(tok string) (string, string, bool) {
	if tok == "." || tok == "#" {
		return "", "", false
	}
	switch tok[0] {
	case '.':
		return classKey, tok[1:], true
	case '#':
		return "id", tok[1:], true
	default:
		return tok, tok, true
	}
}
