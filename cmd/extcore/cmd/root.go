// Package cmd implements the extcore command line, in the shape of
// cuelang.org/go/cmd/cue/cmd's root command: a cobra.Command tree with
// subcommands that each build a Configuration and report on it.
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// New builds the extcore root command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:   "extcore",
		Short: "inspect extension-composition configurations",
		Long: `extcore resolves a fixed demonstration extension tree — a tab
size facet, a themes facet, and a field-derived line-count facet — and
reports on the resulting Configuration, the way "cue eval" reports on a
resolved CUE instance.`,
		SilenceUsage: true,
	}
	log.SetOutput(os.Stderr)
	root.AddCommand(newResolveCmd())
	root.AddCommand(newDiffCmd())
	return root
}
