package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramumb/stimulus/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the stimulus version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.Colorized(useColor(cmd, os.Stdout))
		if strings.TrimSpace(version.Version) == "" {
			v = "dev"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "stimulus %s\n", v)
		if commit := strings.TrimSpace(version.GitCommit); commit != "" {
			fmt.Fprintf(out, "commit: %s\n", commit)
		}
		if date := strings.TrimSpace(version.BuildDate); date != "" {
			fmt.Fprintf(out, "built:  %s\n", date)
		}
		return nil
	},
}
