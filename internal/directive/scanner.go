package directive

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/wrapgen/wrapgen/internal/trace"
)

// scanner walks the attribute text of a single directive.
//
// Scanner instances are not shared; each ParseAttrs call creates its own.
type scanner struct {
	source  string
	current int
}

// ParseAttrs scans the attribute text into entries. It is total: a
// malformed entry is dropped and scanning resumes after the next comma,
// so one broken attribute never poisons the rest of the list.
func ParseAttrs(source string) []Attr {
	s := &scanner{source: source}
	var attrs []Attr

	for {
		s.skipSeparators()
		if s.isAtEnd() {
			return attrs
		}

		start := s.current
		attr, ok := s.scanAttr()
		if !ok {
			s.skipToComma()
			trace.Warnf("skipping malformed attribute %q", strings.TrimSpace(s.source[start:s.current]))
			continue
		}
		attrs = append(attrs, attr)
	}
}

// scanAttr scans one `key = literal` entry. The key may be a dotted
// path; filtering of qualified keys happens later in Pairs.
func (s *scanner) scanAttr() (Attr, bool) {
	path, ok := s.scanPath()
	if !ok {
		return Attr{}, false
	}

	s.skipSpaces()
	if !s.match('=') {
		return Attr{}, false
	}
	s.skipSpaces()

	value, ok := s.scanValue()
	if !ok {
		return Attr{}, false
	}

	// The entry must close cleanly at a comma or at the end.
	s.skipSpaces()
	if !s.isAtEnd() && s.peek() != ',' {
		return Attr{}, false
	}
	return Attr{Path: path, Value: value}, true
}

func (s *scanner) scanPath() ([]string, bool) {
	ident, ok := s.scanIdent()
	if !ok {
		return nil, false
	}
	path := []string{ident}
	for s.match('.') {
		ident, ok = s.scanIdent()
		if !ok {
			return nil, false
		}
		path = append(path, ident)
	}
	return path, true
}

func (s *scanner) scanValue() (Value, bool) {
	if s.isAtEnd() {
		return Value{}, false
	}
	switch {
	case s.peek() == '"':
		return s.scanString()
	case unicode.IsDigit(s.peek()) || s.peek() == '-':
		return s.scanNumber()
	default:
		ident, ok := s.scanIdent()
		if !ok {
			return Value{}, false
		}
		if ident == "true" || ident == "false" {
			return Value{Kind: KindBool, Raw: ident}, true
		}
		return Value{Kind: KindIdent, Raw: ident}, true
	}
}

func (s *scanner) scanString() (Value, bool) {
	start := s.current
	s.advance() // opening quote
	for !s.isAtEnd() {
		switch s.peek() {
		case '\\':
			s.advance()
			if !s.isAtEnd() {
				s.advance()
			}
		case '"':
			s.advance()
			raw := s.source[start:s.current]
			decoded, err := strconv.Unquote(raw)
			if err != nil {
				return Value{}, false
			}
			return Value{Kind: KindString, Raw: raw, Str: decoded}, true
		default:
			s.advance()
		}
	}
	return Value{}, false // unterminated
}

func (s *scanner) scanNumber() (Value, bool) {
	start := s.current
	if s.peek() == '-' {
		s.advance()
	}
	digits := false
	kind := KindInt
	for !s.isAtEnd() {
		switch {
		case unicode.IsDigit(s.peek()):
			digits = true
			s.advance()
		case s.peek() == '.' && kind == KindInt:
			kind = KindFloat
			s.advance()
		default:
			if !digits {
				return Value{}, false
			}
			return Value{Kind: kind, Raw: s.source[start:s.current]}, true
		}
	}
	if !digits {
		return Value{}, false
	}
	return Value{Kind: kind, Raw: s.source[start:s.current]}, true
}

func (s *scanner) scanIdent() (string, bool) {
	start := s.current
	for !s.isAtEnd() && (unicode.IsLetter(s.peek()) || unicode.IsDigit(s.peek()) || s.peek() == '_') {
		s.advance()
	}
	if s.current == start {
		return "", false
	}
	return s.source[start:s.current], true
}

// skipSeparators skips whitespace and comma separators between entries.
func (s *scanner) skipSeparators() {
	for !s.isAtEnd() && (unicode.IsSpace(s.peek()) || s.peek() == ',') {
		s.advance()
	}
}

func (s *scanner) skipSpaces() {
	for !s.isAtEnd() && unicode.IsSpace(s.peek()) {
		s.advance()
	}
}

// skipToComma recovers from a malformed entry by discarding input up to
// the next separator, honoring string quoting so a comma inside a
// literal does not end the skip early.
func (s *scanner) skipToComma() {
	for !s.isAtEnd() && s.peek() != ',' {
		if s.peek() == '"' {
			s.scanString()
			continue
		}
		s.advance()
	}
}

func (s *scanner) match(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *scanner) peek() rune {
	return rune(s.source[s.current])
}

func (s *scanner) advance() {
	s.current++
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}
