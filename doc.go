/*
Package stimulus implements a tokenizer and memoizing registry for CSS
simple selectors. A simple selector is a single tag, id, class, or
attribute test, optionally wrapped in one level of :not(...), with no
combinators.

# Basics

Selector handling occurs in two steps. First the scanner breaks the
selector text into tokens, each recording the exact substring it consumed,
so that the concatenated lexemes always reproduce the input. Second the
token sequence is assembled into a Selector, which also derives the set of
element attributes the selector depends on (an id test reads "id", a class
test reads "class", and an attribute test reads its bracketed name).

Selectors are obtained through a Registry. The registry caches every
successfully constructed Selector under its trimmed source text, so
repeated requests for the same text return the same shared, immutable
value. Failed constructions are never cached.

This package performs no matching itself. A Selector's Matches method
delegates to the host's Element capability with the selector's own source
text.
*/
package stimulus
