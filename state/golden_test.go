package state_test

import (
	"fmt"
	"testing"

	"github.com/extcore/extcore/cmd/extcore/demo"
	"github.com/extcore/extcore/internal/testutil"
	"github.com/extcore/extcore/state"
)

// TestResolveGolden exercises the same demo tree the extcore resolve
// subcommand inspects, after one document-changed transition bumps
// Counter (and so LineCount) from 0 to 1, and checks the formatted
// facet values against testdata/resolve.txtar.
func TestResolveGolden(t *testing.T) {
	tree, err := demo.Tree()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := state.Resolve(tree, nil)
	if err != nil {
		t.Fatal(err)
	}
	s0, err := state.NewEditorState(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s1, err := s0.Apply(&state.Transaction{DocChanged: true}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tabSize, err := state.GetFacet(s1, demo.TabSize)
	if err != nil {
		t.Fatal(err)
	}
	themes, err := state.GetFacet(s1, demo.Themes)
	if err != nil {
		t.Fatal(err)
	}
	lineCount, err := state.GetFacet(s1, demo.LineCount)
	if err != nil {
		t.Fatal(err)
	}

	got := fmt.Sprintf("tabSize: %d\nthemes: %v\nlineCount: %d\n", tabSize, themes, lineCount)
	testutil.AssertGolden(t, "testdata/resolve.txtar", got)
}
