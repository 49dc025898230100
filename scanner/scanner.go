package scanner

import (
	"fmt"
	"strings"

	"github.com/ramumb/stimulus/token"
)

// notPrefix opens a negated clause; the matching ")" must directly follow
// the wrapped clause.
const notPrefix = ":not("

// ErrorCode identifies the class of a tokenize failure.
type ErrorCode int

const (
	// UnrecognizedSyntax means no grammar rule matched at the current
	// position and input remained.
	UnrecognizedSyntax ErrorCode = iota

	// UnterminatedNegation means a :not( clause was missing its closing
	// parenthesis.
	UnterminatedNegation
)

// String returns the name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case UnrecognizedSyntax:
		return "unrecognized syntax"
	case UnterminatedNegation:
		return "unterminated negation"
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error represents a tokenize error.
type Error struct {
	Code      ErrorCode
	Message   string
	Pos       int    // byte offset into the input where scanning stopped
	Remainder string // unconsumed input starting at Pos
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message
}

// Tokenize splits a simple selector into its ordered tokens.
//
// At each position it tries a tag name, then an id, then a class, then an
// attribute clause, each first in :not(...) wrapped form and then plain, and
// takes the first match. There is no backtracking across token boundaries:
// scanning advances by exactly the matched lexeme and a failure is never
// retried with a different token at an earlier position. Concatenating the
// lexemes of the returned tokens reproduces s exactly.
//
// Tokenize fails with *Error if a :not( clause is unterminated or no rule
// matches the remaining input. No partial token sequence is returned.
func Tokenize(s string) ([]token.Token, error) {
	var tokens []token.Token
	for pos := 0; pos < len(s); {
		tok, err := scanToken(s[pos:], pos)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, &Error{
				Code:      UnrecognizedSyntax,
				Message:   fmt.Sprintf("unrecognized selector syntax: %q", s[pos:]),
				Pos:       pos,
				Remainder: s[pos:],
			}
		}
		pos += len(token.Lexeme(tok))
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// scanFunc matches one grammar kind at the head of its input, returning nil
// when the input does not begin with that kind. Matchers are anchored: they
// never skip characters.
type scanFunc func(s string) token.Token

// grammar lists the four simple selector kinds in match priority order.
var grammar = []scanFunc{scanTag, scanID, scanClass, scanAttr}

// scanToken matches one token at the head of s. pos is the offset of s
// within the original input and is used only for error reporting.
func scanToken(s string, pos int) (token.Token, error) {
	for _, scan := range grammar {
		tok, err := scanNegated(s, scan, pos)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			return tok, nil
		}
		if tok := scan(s); tok != nil {
			return tok, nil
		}
	}
	return nil, nil
}

// scanNegated matches the :not(...) wrapped form of a single grammar kind.
// It returns nil when s does not start with :not( or the wrapped kind does
// not match, and an error when the kind matches but the closing parenthesis
// is missing.
func scanNegated(s string, scan scanFunc, pos int) (token.Token, error) {
	if !strings.HasPrefix(s, notPrefix) {
		return nil, nil
	}
	inner := scan(s[len(notPrefix):])
	if inner == nil {
		return nil, nil
	}
	n := len(notPrefix) + len(token.Lexeme(inner))
	if n >= len(s) || s[n] != ')' {
		return nil, &Error{
			Code:      UnterminatedNegation,
			Message:   fmt.Sprintf("missing ) to close %q", s[:n]),
			Pos:       pos,
			Remainder: s,
		}
	}
	return negate(inner, s[:n+1]), nil
}

// negate rewraps an inner token with the full :not(...) lexeme.
func negate(tok token.Token, lexeme string) token.Token {
	switch tok := tok.(type) {
	case *token.Tag:
		return &token.Tag{Lexeme: lexeme, Negated: true}
	case *token.ID:
		return &token.ID{Lexeme: lexeme, Negated: true}
	case *token.Class:
		return &token.Class{Lexeme: lexeme, Negated: true}
	case *token.Attribute:
		return &token.Attribute{Lexeme: lexeme, Negated: true, Name: tok.Name, Op: tok.Op, Value: tok.Value}
	}
	return tok
}

// scanTag matches a tag name: a CSS identifier.
func scanTag(s string) token.Token {
	if n := matchIdent(s); n > 0 {
		return &token.Tag{Lexeme: s[:n]}
	}
	return nil
}

// scanID matches "#" followed by an identifier.
func scanID(s string) token.Token {
	if len(s) == 0 || s[0] != '#' {
		return nil
	}
	if n := matchIdent(s[1:]); n > 0 {
		return &token.ID{Lexeme: s[:1+n]}
	}
	return nil
}

// scanClass matches "." followed by an identifier.
func scanClass(s string) token.Token {
	if len(s) == 0 || s[0] != '.' {
		return nil
	}
	if n := matchIdent(s[1:]); n > 0 {
		return &token.Class{Lexeme: s[:1+n]}
	}
	return nil
}

// scanAttr matches a bracketed attribute clause: "[" + name, then optionally
// an operator and a value, then "]". The value is either a name or a quoted
// string.
func scanAttr(s string) token.Token {
	if len(s) == 0 || s[0] != '[' {
		return nil
	}
	n := 1
	nameLen := matchIdent(s[n:])
	if nameLen == 0 {
		return nil
	}
	attr := &token.Attribute{Name: s[n : n+nameLen]}
	n += nameLen

	if opLen := matchOp(s[n:]); opLen > 0 {
		attr.Op = s[n : n+opLen]
		n += opLen

		valueLen := matchName(s[n:])
		if valueLen == 0 {
			valueLen = matchString(s[n:])
		}
		if valueLen == 0 {
			return nil
		}
		attr.Value = s[n : n+valueLen]
		n += valueLen
	}

	if n >= len(s) || s[n] != ']' {
		return nil
	}
	attr.Lexeme = s[:n+1]
	return attr
}

// matchOp matches one of the six attribute comparison operators.
func matchOp(s string) int {
	if len(s) >= 2 && s[1] == '=' {
		switch s[0] {
		case '~', '|', '^', '$', '*':
			return 2
		}
	}
	if len(s) >= 1 && s[0] == '=' {
		return 1
	}
	return 0
}

// matchIdent matches a CSS identifier: an optional hyphen, a name start
// character or escape, then name characters and escapes.
func matchIdent(s string) int {
	n := 0
	if n < len(s) && s[n] == '-' {
		n++
	}
	if n < len(s) && nameStart(s[n]) {
		n++
	} else if m := matchEscape(s[n:]); m > 0 {
		n += m
	} else {
		return 0
	}
	return n + matchName(s[n:])
}

// matchName matches a run of name characters and escapes. Unlike an
// identifier, a name has no restriction on its first character.
func matchName(s string) int {
	n := 0
	for n < len(s) {
		if nameChar(s[n]) {
			n++
		} else if m := matchEscape(s[n:]); m > 0 {
			n += m
		} else {
			break
		}
	}
	return n
}

// matchEscape matches a backslash escape: either "\" followed by 1-6 hex
// digits and an optional single whitespace terminator (CRLF counts as one),
// or "\" followed by any single character that is not a newline or a hex
// digit.
func matchEscape(s string) int {
	if len(s) < 2 || s[0] != '\\' {
		return 0
	}
	c := s[1]
	if hexDigit(c) {
		n := 2
		for n < len(s) && n < 7 && hexDigit(s[n]) {
			n++
		}
		if n < len(s) {
			switch s[n] {
			case '\r':
				n++
				if n < len(s) && s[n] == '\n' {
					n++
				}
			case ' ', '\t', '\n', '\f':
				n++
			}
		}
		return n
	}
	if c == '\n' || c == '\r' || c == '\f' {
		return 0
	}
	return 2
}

// matchString matches a single- or double-quoted string. The body may not
// contain a raw newline, backslash, or the ending quote except as part of an
// escape; a backslash followed by a newline is an escaped line ending. An
// unterminated string does not match.
func matchString(s string) int {
	if len(s) == 0 || (s[0] != '\'' && s[0] != '"') {
		return 0
	}
	quote := s[0]
	n := 1
	for n < len(s) {
		switch c := s[n]; {
		case c == quote:
			return n + 1
		case c == '\\':
			if m := matchEscape(s[n:]); m > 0 {
				n += m
			} else if n+1 < len(s) && (s[n+1] == '\n' || s[n+1] == '\r' || s[n+1] == '\f') {
				if s[n+1] == '\r' && n+2 < len(s) && s[n+2] == '\n' {
					n += 3
				} else {
					n += 2
				}
			} else {
				return 0
			}
		case c == '\n' || c == '\r' || c == '\f':
			return 0
		default:
			n++
		}
	}
	return 0
}

// nameStart returns true if the byte can start a name.
func nameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c >= 0x80
}

// nameChar returns true if the byte is a name code point.
func nameChar(c byte) bool {
	return nameStart(c) || '0' <= c && c <= '9' || c == '-'
}

// hexDigit returns true if the byte is a hex digit.
func hexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
