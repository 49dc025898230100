package token

// Token represents a lexical token of a simple selector.
//
// The taxonomy is closed: a token is either a Tag, an ID, a Class, or an
// Attribute. Every token records the exact substring of input it consumed
// and whether that substring was wrapped in :not( ... ).
type Token interface {
	token()
}

func (_ *Tag) token()       {}
func (_ *ID) token()        {}
func (_ *Class) token()     {}
func (_ *Attribute) token() {}

// Tag tests an element's tag name.
type Tag struct {
	Lexeme  string
	Negated bool
}

// ID tests an element's "id" attribute. The lexeme includes the leading "#".
type ID struct {
	Lexeme  string
	Negated bool
}

// Class tests an element's "class" attribute. The lexeme includes the
// leading ".".
type Class struct {
	Lexeme  string
	Negated bool
}

// Attribute tests an arbitrary element attribute, optionally comparing its
// value with one of the six CSS attribute operators. The lexeme includes the
// surrounding brackets.
type Attribute struct {
	Lexeme  string
	Negated bool

	// Name is the attribute name as written between the brackets.
	Name string

	// Op is the comparison operator: "=", "~=", "|=", "^=", "$=" or "*=".
	// It is empty for a presence-only test, in which case Value is empty too.
	Op string

	// Value is the comparison value exactly as written, quotes retained.
	Value string
}

// Lexeme returns the exact substring of input consumed by tok.
func Lexeme(tok Token) string {
	switch tok := tok.(type) {
	case *Tag:
		return tok.Lexeme
	case *ID:
		return tok.Lexeme
	case *Class:
		return tok.Lexeme
	case *Attribute:
		return tok.Lexeme
	}
	return ""
}

// Negated reports whether tok was wrapped in :not( ... ).
func Negated(tok Token) bool {
	switch tok := tok.(type) {
	case *Tag:
		return tok.Negated
	case *ID:
		return tok.Negated
	case *Class:
		return tok.Negated
	case *Attribute:
		return tok.Negated
	}
	return false
}

// AttributeName returns the name of the element attribute that evaluating
// tok would read. ID tokens read "id", Class tokens read "class", and
// Attribute tokens read their bracketed name. Tag tokens read no attribute,
// so ok is false.
func AttributeName(tok Token) (name string, ok bool) {
	switch tok := tok.(type) {
	case *Tag:
		return "", false
	case *ID:
		return "id", true
	case *Class:
		return "class", true
	case *Attribute:
		return tok.Name, true
	}
	return "", false
}

// Join concatenates the lexemes of tokens in order. For a sequence produced
// by tokenizing a selector this reconstructs the original text exactly.
func Join(tokens []Token) string {
	var s string
	for _, tok := range tokens {
		s += Lexeme(tok)
	}
	return s
}
