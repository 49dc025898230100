package stimulus

import (
	"fmt"
	"sort"

	"github.com/ramumb/stimulus/scanner"
	"github.com/ramumb/stimulus/token"
)

// Element is the host matching capability. The element decides how selector
// text is evaluated; this package makes no assumptions about its algorithm
// beyond accepting the same selector grammar.
type Element interface {
	// MatchesSelector reports whether the element matches the selector text.
	MatchesSelector(selector string) bool
}

// ElementFunc adapts a function to the Element interface.
type ElementFunc func(selector string) bool

// MatchesSelector calls f(selector).
func (f ElementFunc) MatchesSelector(selector string) bool {
	return f(selector)
}

// Selector is a parsed simple selector. Selectors are immutable and shared:
// they are constructed by a Registry at most once per distinct trimmed
// source text.
type Selector struct {
	source string
	tokens []token.Token
	attrs  map[string]struct{}
}

// newSelector tokenizes source and assembles a selector from the result.
// source must already be trimmed.
func newSelector(source string) (*Selector, error) {
	tokens, err := scanner.Tokenize(source)
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}
	return &Selector{
		source: source,
		tokens: tokens,
		attrs:  dependentAttributes(tokens),
	}, nil
}

// dependentAttributes derives the set of distinct attribute names the
// token sequence reads.
func dependentAttributes(tokens []token.Token) map[string]struct{} {
	attrs := make(map[string]struct{})
	for _, tok := range tokens {
		if name, ok := token.AttributeName(tok); ok {
			attrs[name] = struct{}{}
		}
	}
	return attrs
}

// String returns the trimmed source text the selector was built from.
func (sel *Selector) String() string {
	return sel.source
}

// Tokens returns the selector's tokens in left-to-right source order.
// The returned slice is a copy; the selector itself is never mutated.
func (sel *Selector) Tokens() []token.Token {
	return append([]token.Token(nil), sel.tokens...)
}

// Attributes returns the sorted set of attribute names the selector's
// evaluation would read.
func (sel *Selector) Attributes() []string {
	names := make([]string, 0, len(sel.attrs))
	for name := range sel.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DependsOn reports whether evaluating the selector reads the named
// element attribute.
func (sel *Selector) DependsOn(name string) bool {
	_, ok := sel.attrs[name]
	return ok
}

// Matches reports whether e matches the selector. Evaluation is delegated
// entirely to the element's host capability, invoked with the selector's
// own source text.
func (sel *Selector) Matches(e Element) bool {
	return e.MatchesSelector(sel.source)
}

// Error describes a failed selector construction.
type Error struct {
	Source string // the trimmed selector text that failed to tokenize
	Err    error  // the underlying scanner error
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid selector %q: %s", e.Source, e.Err)
}

// Unwrap returns the underlying scanner error.
func (e *Error) Unwrap() error {
	return e.Err
}
