package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramumb/stimulus"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs selector...",
	Short: "Show the attributes a selector depends on",
	Long:  `Attrs prints the distinct element attributes each selector's evaluation would read`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAttrs,
}

func runAttrs(cmd *cobra.Command, args []string) error {
	registry := stimulus.NewRegistry()
	for _, arg := range args {
		sel, err := registry.Get(arg)
		if err != nil {
			return err
		}
		names := sel.Attributes()
		if len(names) == 0 {
			fmt.Printf("%s: (none)\n", sel)
			continue
		}
		fmt.Printf("%s: %s\n", sel, strings.Join(names, " "))
	}
	return nil
}
