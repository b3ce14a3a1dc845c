package savefile

import (
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

// Document is the decoded save as a generic JSON tree. The game is not
// consistent about field casing ("Tools" vs "tools", "Data.IsUnlocked"
// vs "data.isUnlocked"), and whole subtrees go missing on older saves,
// so nothing outside this file touches the raw tree directly: all reads
// go through the case-tolerant, default-on-missing accessors below.
type Document struct {
	root gjson.Result
}

// Parse validates text as JSON with an object root.
func Parse(text string) (Document, error) {
	if !gjson.Valid(text) {
		return Document{}, &FormatError{Reason: "not valid JSON"}
	}
	root := gjson.Parse(text)
	if !root.IsObject() {
		return Document{}, &FormatError{Reason: "root is not an object"}
	}
	return Document{root: root}, nil
}

// Root exposes the underlying result for iteration helpers.
func (d Document) Root() gjson.Result { return d.root }

// Field walks a dotted path, trying casing variants per segment.
func (d Document) Field(path string) gjson.Result { return Lookup(d.root, path) }

func (d Document) Str(path string) string { return Lookup(d.root, path).String() }
func (d Document) Bool(path string) bool  { return Lookup(d.root, path).Bool() }
func (d Document) Int(path string) int    { return int(Lookup(d.root, path).Int()) }

// List returns the path's array elements, or an empty slice when the
// path is missing or not array-shaped.
func (d Document) List(path string) []gjson.Result {
	return SafeList(Lookup(d.root, path))
}

// SafeList flattens a result to its array elements; non-arrays become
// an empty slice, never nil dereferences downstream.
func SafeList(r gjson.Result) []gjson.Result {
	if !r.Exists() || !r.IsArray() {
		return []gjson.Result{}
	}
	return r.Array()
}

// Lookup resolves a dotted path against any result, trying each
// segment's exact spelling first, then the upper-first and lower-first
// variants. A missing segment yields a non-existent result, which every
// typed getter turns into its zero value.
func Lookup(r gjson.Result, path string) gjson.Result {
	cur := r
	for _, seg := range strings.Split(path, ".") {
		if !cur.Exists() {
			return cur
		}
		cur = member(cur, seg)
	}
	return cur
}

// LookupStr, LookupBool and LookupInt are the typed forms used when
// iterating list elements.
func LookupStr(r gjson.Result, path string) string { return Lookup(r, path).String() }
func LookupBool(r gjson.Result, path string) bool  { return Lookup(r, path).Bool() }
func LookupInt(r gjson.Result, path string) int    { return int(Lookup(r, path).Int()) }

func member(r gjson.Result, name string) gjson.Result {
	if v := r.Get(escapeKey(name)); v.Exists() {
		return v
	}
	for _, alt := range []string{upperFirst(name), lowerFirst(name)} {
		if alt == name {
			continue
		}
		if v := r.Get(escapeKey(alt)); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

// escapeKey keeps gjson from treating literal dots or wildcards in a
// save key as path syntax.
func escapeKey(name string) string {
	if !strings.ContainsAny(name, ".*?\\") {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
