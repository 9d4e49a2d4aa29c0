// Package scanner provides string- and comment-aware scanning for
// TypeScript declaration sources. It tracks double-quoted, single-quoted
// and template string literals, regular expression literals, escape
// sequences and both comment forms so callers never re-implement that
// bookkeeping.
package scanner

import (
	"fmt"
	"strings"
)

// closingKind tracks which delimiter was just closed.
type closingKind byte

const (
	noClosing       closingKind = iota
	closingDouble               // just closed a "..." string
	closingSingle               // just closed a '...' string
	closingTemplate             // just closed a `...` template
	closingComment              // just closed a /* ... */ comment
	closingRegex                // just closed a /.../ regular expression
)

// regexKeywords may be followed by an expression, so a / after them opens
// a regular expression rather than dividing.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

// CodeScanner iterates byte-by-byte over source text, tracking string
// literal and comment boundaries. Callers check InString() or InComment()
// instead of maintaining their own flags.
//
// InString() and InComment() return true for the entire span including
// the opening and closing delimiters.
type CodeScanner struct {
	src      string
	pos      int
	line     int
	inDbl    bool
	inSgl    bool
	inTpl    bool
	inLine   bool // inside a // comment
	inBlock  bool // inside a /* */ comment
	inRegex  bool
	regexEnd int // offset of the / closing the current regex
	escaped  bool
	closing  closingKind
	openPos  int // offset of the innermost open string or comment
	openLine int // line of the innermost open string or comment
	last     byte // last non-blank byte outside comments
	lastPos  int
}

// New creates a CodeScanner for the given source text.
// Call Next() to advance to the first byte.
func New(src string) *CodeScanner {
	return &CodeScanner{src: src, pos: -1, line: 1}
}

// Next advances to the next byte, updating string, comment and escape
// state. Returns the byte and true, or (0, false) at end of input.
func (s *CodeScanner) Next() (byte, bool) {
	s.closing = noClosing
	s.pos++
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]
	if ch == '\n' {
		s.line++
	}

	switch {
	case s.inLine:
		if ch == '\n' {
			s.inLine = false
		}
		return ch, true
	case s.inBlock:
		if ch == '/' && s.src[s.pos-1] == '*' && s.pos-1 >= s.openPos+2 {
			s.inBlock = false
			s.closing = closingComment
		}
		return ch, true
	case s.inRegex:
		if s.pos == s.regexEnd {
			s.inRegex = false
			s.closing = closingRegex
			s.last, s.lastPos = ch, s.pos
		}
		return ch, true
	}

	if s.escaped {
		s.escaped = false
		return ch, true
	}
	if ch == '\\' && s.InString() {
		s.escaped = true
		return ch, true
	}

	switch ch {
	case '"':
		if s.inSgl || s.inTpl {
			break
		}
		if s.inDbl {
			s.closing = closingDouble
		} else {
			s.open()
		}
		s.inDbl = !s.inDbl
	case '\'':
		if s.inDbl || s.inTpl {
			break
		}
		if s.inSgl {
			s.closing = closingSingle
		} else {
			s.open()
		}
		s.inSgl = !s.inSgl
	case '`':
		if s.inDbl || s.inSgl {
			break
		}
		if s.inTpl {
			s.closing = closingTemplate
		} else {
			s.open()
		}
		s.inTpl = !s.inTpl
	case '/':
		if s.InString() {
			break
		}
		next, _ := s.Peek()
		switch {
		case next == '/':
			s.open()
			s.inLine = true
		case next == '*':
			s.open()
			s.inBlock = true
		case s.regexAllowed():
			if end := regexClose(s.src, s.pos); end > 0 {
				s.open()
				s.inRegex = true
				s.regexEnd = end
			}
		}
	}

	if !s.InComment() && !s.inRegex && !isBlank(ch) {
		s.last, s.lastPos = ch, s.pos
	}
	return ch, true
}

// regexAllowed reports whether a / at the current position starts an
// operand, judged by the last non-blank byte before it.
func (s *CodeScanner) regexAllowed() bool {
	switch s.last {
	case 0, '=', '(', ',', ':', '[', '!', '&', '|', '?', '{', '}', ';':
		return true
	case '>':
		return s.lastPos > 0 && s.src[s.lastPos-1] == '='
	}
	start := s.lastPos + 1
	for start > 0 && isWordByte(s.src[start-1]) {
		start--
	}
	if start > 0 && s.src[start-1] == '.' {
		return false
	}
	return regexKeywords[s.src[start:s.lastPos+1]]
}

// regexClose returns the offset of the unescaped / that closes the regular
// expression opened at start, skipping character classes. It returns -1
// when the line ends first, in which case the / is a division.
func regexClose(src string, start int) int {
	inClass := false
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
			if i < len(src) && (src[i] == '\n' || src[i] == '\r') {
				return -1
			}
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return i
			}
		case '\n', '\r':
			return -1
		}
	}
	return -1
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isWordByte(ch byte) bool {
	return ch == '_' || ch == '$' || ch >= 0x80 ||
		'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9'
}

func (s *CodeScanner) open() {
	s.openPos = s.pos
	s.openLine = s.line
}

// InString reports whether the current position is inside a string or
// template literal, including both delimiters.
func (s *CodeScanner) InString() bool {
	return s.inDbl || s.inSgl || s.inTpl ||
		s.closing == closingDouble || s.closing == closingSingle || s.closing == closingTemplate
}

// InTemplate reports whether the current position is inside a template
// literal.
func (s *CodeScanner) InTemplate() bool { return s.inTpl || s.closing == closingTemplate }

// InComment reports whether the current position is inside a comment,
// including its delimiters. The newline ending a // comment is not part
// of the comment.
func (s *CodeScanner) InComment() bool {
	return s.inLine || s.inBlock || s.closing == closingComment
}

// InRegex reports whether the current position is inside a regular
// expression literal, including both slashes. Flags after the closing
// slash are code.
func (s *CodeScanner) InRegex() bool { return s.inRegex || s.closing == closingRegex }

// InCode reports whether the current position is outside all string,
// regular expression literals and comments.
func (s *CodeScanner) InCode() bool { return !s.InString() && !s.InComment() && !s.InRegex() }

// Pos returns the current byte offset (the position of the last byte
// returned by Next). Returns -1 before the first call to Next.
func (s *CodeScanner) Pos() int { return s.pos }

// Line returns the current 1-based line number.
func (s *CodeScanner) Line() int { return s.line }

// Peek returns the next byte without advancing, or (0, false) at end.
func (s *CodeScanner) Peek() (byte, bool) {
	if s.pos+1 >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+1], true
}

// LookingAt checks if src[pos:] starts with the given prefix.
func (s *CodeScanner) LookingAt(prefix string) bool {
	if s.pos < 0 {
		return false
	}
	return strings.HasPrefix(s.src[s.pos:], prefix)
}

// UnterminatedError is a string, template or block comment that runs to
// the end of the input.
type UnterminatedError struct {
	Line   int    // line of the opening delimiter
	Offset int    // byte offset of the opening delimiter
	What   string // "comment", "string literal" or "template literal"
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("%d: unterminated %s", e.Line, e.What)
}

// Unterminated returns an *UnterminatedError if the scanner stopped inside
// a string, template or block comment. Call it after Next has returned
// false.
func (s *CodeScanner) Unterminated() error {
	var what string
	switch {
	case s.inBlock:
		what = "comment"
	case s.inDbl || s.inSgl:
		what = "string literal"
	case s.inTpl:
		what = "template literal"
	default:
		return nil
	}
	return &UnterminatedError{Line: s.openLine, Offset: s.openPos, What: what}
}

// BlankComments replaces every comment and regular expression literal in
// src with spaces. Newlines are kept, so byte offsets, lines and columns of
// the remaining code are unchanged.
func BlankComments(src string) (string, error) {
	out := []byte(src)
	sc := New(src)
	for ch, ok := sc.Next(); ok; ch, ok = sc.Next() {
		if (sc.InComment() || sc.InRegex()) && ch != '\n' && ch != '\r' {
			out[sc.Pos()] = ' '
		}
	}
	if err := sc.Unterminated(); err != nil {
		return "", err
	}
	return string(out), nil
}
