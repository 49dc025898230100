package stimulus_test

import (
	"reflect"
	"testing"

	"github.com/ramumb/stimulus"
	"github.com/ramumb/stimulus/token"
)

func mustGet(t *testing.T, text string) *stimulus.Selector {
	t.Helper()
	sel, err := stimulus.NewRegistry().Get(text)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", text, err)
	}
	return sel
}

// Ensure selectors derive the distinct attributes their evaluation reads.
func TestSelectorAttributes(t *testing.T) {
	var tests = []struct {
		s     string
		attrs []string
	}{
		{s: `div`, attrs: []string{}},
		{s: `#id.cls[data-x=1]`, attrs: []string{"class", "data-x", "id"}},
		{s: `.a.b`, attrs: []string{"class"}},
		{s: `:not([href^='http'])`, attrs: []string{"href"}},
		{s: `div:not(.x)#y`, attrs: []string{"class", "id"}},
	}
	for i, tt := range tests {
		sel := mustGet(t, tt.s)
		if got := sel.Attributes(); !reflect.DeepEqual(got, tt.attrs) {
			t.Errorf("%d. %q: attributes: expected %v, got %v", i, tt.s, tt.attrs, got)
		}
	}
}

// Ensure membership checks agree with the attribute set.
func TestSelectorDependsOn(t *testing.T) {
	sel := mustGet(t, `#id.cls[data-x=1]`)
	for _, name := range []string{"id", "class", "data-x"} {
		if !sel.DependsOn(name) {
			t.Errorf("DependsOn(%q) = false, want true", name)
		}
	}
	if sel.DependsOn("href") {
		t.Error(`DependsOn("href") = true, want false`)
	}
}

// Ensure a negated clause keeps its full lexeme and attribute derivation.
func TestSelectorNegation(t *testing.T) {
	sel := mustGet(t, `:not(.hidden)`)

	tokens := sel.Tokens()
	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	if !token.Negated(tokens[0]) {
		t.Fatal("expected negated token")
	}
	if got := token.Lexeme(tokens[0]); got != `:not(.hidden)` {
		t.Fatalf("lexeme = %q, want %q", got, `:not(.hidden)`)
	}
	name, ok := token.AttributeName(tokens[0])
	if !ok || name != "class" {
		t.Fatalf("attribute name = (%q, %v), want (%q, true)", name, ok, "class")
	}
}

// Ensure token lexemes reconstruct the trimmed source exactly.
func TestSelectorRoundTrip(t *testing.T) {
	var sources = []string{
		`div`,
		`#id.cls[data-x=1]`,
		`div#id.cls:not([href^='http'])`,
	}
	for i, s := range sources {
		sel := mustGet(t, "  "+s+"\t")
		if got := token.Join(sel.Tokens()); got != s {
			t.Errorf("%d. round trip: expected %q, got %q", i, s, got)
		}
		if got := sel.String(); got != s {
			t.Errorf("%d. String() = %q, want %q", i, got, s)
		}
	}
}

// Ensure matching passes the trimmed source text through to the host
// element untouched.
func TestSelectorMatches(t *testing.T) {
	sel := mustGet(t, `  .foo `)

	var received string
	e := stimulus.ElementFunc(func(selector string) bool {
		received = selector
		return true
	})
	if !sel.Matches(e) {
		t.Fatal("Matches() = false, want host result true")
	}
	if received != `.foo` {
		t.Fatalf("host received %q, want %q", received, `.foo`)
	}

	if sel.Matches(stimulus.ElementFunc(func(string) bool { return false })) {
		t.Fatal("Matches() = true, want host result false")
	}
}

// Ensure callers cannot mutate a selector through its token slice.
func TestSelectorTokensCopied(t *testing.T) {
	sel := mustGet(t, `div.x`)

	tokens := sel.Tokens()
	tokens[0] = &token.Class{Lexeme: `.hacked`}

	fresh := sel.Tokens()
	if got := token.Lexeme(fresh[0]); got != `div` {
		t.Fatalf("lexeme after mutation = %q, want %q", got, `div`)
	}
}
