package cmd

import (
	"fmt"
	"reflect"

	"github.com/kylelemons/godebug/diff"
	"github.com/spf13/cobra"

	"github.com/extcore/extcore/cmd/extcore/demo"
	"github.com/extcore/extcore/state"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "resolve the demo tree, reconfigure, and report what changed",
		Long: `diff resolves the demo extension tree, binds a state to it, then
resolves the same tree again with that state passed as the prior state
(simulating a reconfigure) and applies a Reconfigured transaction. It
reports each facet's rendered value before and after, and — for the
static themes facet — whether the reconfigure reused the same
underlying value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree1, err := demo.Tree()
			if err != nil {
				return err
			}
			cfg1, err := state.Resolve(tree1, nil)
			if err != nil {
				return err
			}
			s1, err := state.NewEditorState(cfg1)
			if err != nil {
				return err
			}

			tree2, err := demo.Tree()
			if err != nil {
				return err
			}
			cfg2, err := state.Resolve(tree2, s1)
			if err != nil {
				return err
			}
			s2, err := s1.Apply(&state.Transaction{Reconfigured: true}, cfg2)
			if err != nil {
				return err
			}

			before, err := render(s1)
			if err != nil {
				return err
			}
			after, err := render(s2)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, diff.Diff(before, after))
			fmt.Fprintln(out)

			t1, err := state.GetFacet(s1, demo.Themes)
			if err != nil {
				return err
			}
			t2, err := state.GetFacet(s2, demo.Themes)
			if err != nil {
				return err
			}
			reused := reflect.ValueOf(t1).Pointer() == reflect.ValueOf(t2).Pointer()
			fmt.Fprintf(out, "themes value reused across reconfigure: %v\n", reused)
			return nil
		},
	}
}

func render(s *state.EditorState) (string, error) {
	tabSize, err := state.GetFacet(s, demo.TabSize)
	if err != nil {
		return "", err
	}
	themes, err := state.GetFacet(s, demo.Themes)
	if err != nil {
		return "", err
	}
	lineCount, err := state.GetFacet(s, demo.LineCount)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("tabSize: %v\nthemes: %v\nlineCount: %v\n", tabSize, themes, lineCount), nil
}
