package directive

import "github.com/wrapgen/wrapgen/internal/trace"

// Pair is one recognized override: a plain identifier key with a string
// literal value.
type Pair struct {
	Key   string
	Value string
}

// Pairs filters attribute entries down to the recognized shape. Entries
// with qualified keys or non-string values are dropped, not errored.
// Order follows the input; duplicate keys are preserved, leaving the
// last-write-wins rule to the naming builder.
func Pairs(attrs []Attr) []Pair {
	var pairs []Pair
	for _, attr := range attrs {
		key, ok := attr.Key()
		if !ok {
			trace.Debugf("dropping attribute with qualified key %v", attr.Path)
			continue
		}
		if attr.Value.Kind != KindString {
			trace.Debugf("dropping attribute %s: value %s is not a string literal", key, attr.Value.Raw)
			continue
		}
		trace.Debugf("found attribute %s = %s", key, attr.Value.Str)
		pairs = append(pairs, Pair{Key: key, Value: attr.Value.Str})
	}
	return pairs
}

// ParsePairs scans the attribute text and returns the recognized pairs.
func ParsePairs(source string) []Pair {
	return Pairs(ParseAttrs(source))
}
