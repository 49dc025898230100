// Package tokfmt renders token sequences for the command-line tool.
package tokfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ramumb/stimulus/token"
)

// TokenOutput is the serialized form of a token for the json and msgpack
// formats.
type TokenOutput struct {
	Kind      string `json:"kind" msgpack:"kind"`
	Lexeme    string `json:"lexeme" msgpack:"lexeme"`
	Negated   bool   `json:"negated,omitempty" msgpack:"negated,omitempty"`
	Attribute string `json:"attribute,omitempty" msgpack:"attribute,omitempty"`
	Op        string `json:"op,omitempty" msgpack:"op,omitempty"`
	Value     string `json:"value,omitempty" msgpack:"value,omitempty"`
}

// KindString returns the lower-case kind name of a token.
func KindString(tok token.Token) string {
	switch tok.(type) {
	case *token.Tag:
		return "tag"
	case *token.ID:
		return "id"
	case *token.Class:
		return "class"
	case *token.Attribute:
		return "attribute"
	}
	return "unknown"
}

// Outputs converts a token sequence to its serialized form.
func Outputs(tokens []token.Token) []TokenOutput {
	outputs := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:    KindString(tok),
			Lexeme:  token.Lexeme(tok),
			Negated: token.Negated(tok),
		}
		if attr, ok := tok.(*token.Attribute); ok {
			out.Attribute = attr.Name
			out.Op = attr.Op
			out.Value = attr.Value
		} else if name, ok := token.AttributeName(tok); ok {
			out.Attribute = name
		}
		outputs = append(outputs, out)
	}
	return outputs
}

// Pretty writes a numbered kind/lexeme listing, one token per line.
func Pretty(w io.Writer, tokens []token.Token, colorize bool) error {
	kindColor := color.New(color.FgCyan)
	negColor := color.New(color.FgMagenta)
	attrColor := color.New(color.FgGreen)
	if !colorize {
		kindColor.DisableColor()
		negColor.DisableColor()
		attrColor.DisableColor()
	}

	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %s %q", i+1, kindColor.Sprintf("%-10s", KindString(tok)), token.Lexeme(tok)); err != nil {
			return err
		}
		if token.Negated(tok) {
			if _, err := fmt.Fprintf(w, " %s", negColor.Sprint("negated")); err != nil {
				return err
			}
		}
		if name, ok := token.AttributeName(tok); ok {
			if _, err := fmt.Fprintf(w, " (reads %s)", attrColor.Sprint(name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the token sequence as an indented JSON array.
func JSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Outputs(tokens))
}

// Msgpack writes the token sequence as a msgpack-encoded array.
func Msgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(Outputs(tokens))
}
