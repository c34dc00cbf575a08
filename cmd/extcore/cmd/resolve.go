package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extcore/extcore/cmd/extcore/demo"
	"github.com/extcore/extcore/state"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "resolve the demo extension tree and print each facet's value",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := demo.Tree()
			if err != nil {
				return err
			}
			cfg, err := state.Resolve(tree, nil)
			if err != nil {
				return err
			}
			s, err := state.NewEditorState(cfg)
			if err != nil {
				return err
			}

			tabSize, err := state.GetFacet(s, demo.TabSize)
			if err != nil {
				return err
			}
			themes, err := state.GetFacet(s, demo.Themes)
			if err != nil {
				return err
			}
			lineCount, err := state.GetFacet(s, demo.LineCount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "tabSize:   %v\n", tabSize)
			fmt.Fprintf(cmd.OutOrStdout(), "themes:    %v\n", themes)
			fmt.Fprintf(cmd.OutOrStdout(), "lineCount: %v\n", lineCount)
			return nil
		},
	}
}
