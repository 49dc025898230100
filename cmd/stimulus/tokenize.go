package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ramumb/stimulus"
	"github.com/ramumb/stimulus/internal/tokfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] selector...",
	Short: "Tokenize simple selectors",
	Long: `Tokenize breaks simple selectors down into their constituent tokens.
A "-" argument reads selectors from stdin, one per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	texts, err := readSelectors(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	// Parse all selectors up front so nothing is printed when any of them
	// is malformed. The registry is shared across goroutines; duplicate
	// inputs come back as the same selector.
	registry := stimulus.NewRegistry()
	selectors := make([]*stimulus.Selector, len(texts))
	var g errgroup.Group
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			sel, err := registry.Get(text)
			if err != nil {
				return err
			}
			selectors[i] = sel
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, sel := range selectors {
		if len(selectors) > 1 && format == "pretty" {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s\n", sel)
		}
		tokens := sel.Tokens()
		switch format {
		case "pretty":
			err = tokfmt.Pretty(out, tokens, useColor(cmd, os.Stdout))
		case "json":
			err = tokfmt.JSON(out, tokens)
		case "msgpack":
			err = tokfmt.Msgpack(out, tokens)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readSelectors expands the argument list, replacing "-" with the non-empty
// lines read from in. Stdin is consumed once; the order of the remaining
// arguments is preserved.
func readSelectors(args []string, in io.Reader) ([]string, error) {
	texts := make([]string, 0, len(args))
	var lines []string
	read := false
	for _, arg := range args {
		if arg != "-" {
			texts = append(texts, arg)
			continue
		}
		if !read {
			read = true
			sc := bufio.NewScanner(in)
			for sc.Scan() {
				if line := strings.TrimSpace(sc.Text()); line != "" {
					lines = append(lines, line)
				}
			}
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
		}
		texts = append(texts, lines...)
	}
	return texts, nil
}
