package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

// Ensure "-" expands to the non-empty stdin lines in place.
func TestReadSelectors(t *testing.T) {
	texts, err := readSelectors([]string{".a", "-", "#b"}, strings.NewReader(".foo\n\n div \n"))
	if err != nil {
		t.Fatalf("readSelectors() error = %v", err)
	}
	want := []string{".a", ".foo", "div", "#b"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("selectors = %v, want %v", texts, want)
	}
}

// Ensure plain arguments pass through untouched without reading stdin.
func TestReadSelectors_NoStdin(t *testing.T) {
	texts, err := readSelectors([]string{".a", "#b"}, strings.NewReader("unread"))
	if err != nil {
		t.Fatalf("readSelectors() error = %v", err)
	}
	want := []string{".a", "#b"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("selectors = %v, want %v", texts, want)
	}
}

// Ensure tokenize reads selector lines from stdin when given "-".
func TestRunTokenize_Stdin(t *testing.T) {
	var out bytes.Buffer
	tokenizeCmd.SetIn(strings.NewReader(".foo\ndiv\n"))
	tokenizeCmd.SetOut(&out)
	defer func() {
		tokenizeCmd.SetIn(nil)
		tokenizeCmd.SetOut(nil)
	}()

	if err := runTokenize(tokenizeCmd, []string{"-"}); err != nil {
		t.Fatalf("runTokenize() error = %v", err)
	}
	want := ".foo\n" +
		"  1: class      \".foo\" (reads class)\n" +
		"\n" +
		"div\n" +
		"  1: tag        \"div\"\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

// Ensure a malformed stdin line fails the whole run before any output.
func TestRunTokenize_StdinInvalid(t *testing.T) {
	var out bytes.Buffer
	tokenizeCmd.SetIn(strings.NewReader(".foo\n123abc\n"))
	tokenizeCmd.SetOut(&out)
	defer func() {
		tokenizeCmd.SetIn(nil)
		tokenizeCmd.SetOut(nil)
	}()

	if err := runTokenize(tokenizeCmd, []string{"-"}); err == nil {
		t.Fatal("runTokenize() expected error, got nil")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on error, got %q", out.String())
	}
}
