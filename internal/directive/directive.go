// Package directive parses the attribute list of a wrapgen resource
// directive. The surface is deliberately permissive: a directive may sit
// next to unrelated attributes, so entries that are not simple
// key = "string" pairs are dropped rather than rejected.
package directive

// ValueKind classifies the literal on the right-hand side of an
// attribute entry.
type ValueKind int

const (
	// KindString is a double-quoted string literal.
	KindString ValueKind = iota
	// KindInt is an integer literal.
	KindInt
	// KindFloat is a floating point literal.
	KindFloat
	// KindBool is a true/false literal.
	KindBool
	// KindIdent is a bare identifier used as a value.
	KindIdent
)

// Value is the literal of an attribute entry. Str carries the decoded
// text for string literals; Raw always carries the source text.
type Value struct {
	Kind ValueKind
	Raw  string
	Str  string
}

// Attr is one parsed attribute entry. Path holds the dot-separated key
// segments; a plain key has exactly one segment.
type Attr struct {
	Path  []string
	Value Value
}

// Key returns the attribute key when it is a single plain identifier.
func (a Attr) Key() (string, bool) {
	if len(a.Path) != 1 {
		return "", false
	}
	return a.Path[0], true
}
