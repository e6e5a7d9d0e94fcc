package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shhac/aura/internal/ui"
)

// versionCmd prints the aura version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "aura %s\n", ui.Version)
	},
}
