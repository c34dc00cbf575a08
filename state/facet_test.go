package state_test

import (
	"testing"

	"github.com/extcore/extcore/state"
)

func TestFacetDefaultNoProviders(t *testing.T) {
	tabSize := state.DefineFacet(state.FacetConfig[int, int]{
		Combine: func(xs []int) int {
			if len(xs) == 0 {
				return 4
			}
			return xs[0]
		},
	})

	cfg, err := state.Resolve(state.List(), nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := state.NewEditorState(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := state.GetFacet(s, tabSize)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Fatalf("got %d, want 4 (combine([]))", got)
	}
}

func TestDefineFacetDefaultMemoized(t *testing.T) {
	themes := state.DefineListFacet(state.ListFacetConfig[string]{})
	if got := themes.Default(); len(got) != 0 {
		t.Fatalf("expected empty default, got %v", got)
	}
}

func TestStaticFacetRejectsDynamicProvider(t *testing.T) {
	static := state.DefineFacet(state.FacetConfig[int, int]{
		Combine: func(xs []int) int { return len(xs) },
		Static:  true,
	})
	if _, err := state.ComputedFacet(static, nil, func(*state.EditorState) int { return 1 }); err == nil {
		t.Fatal("expected StaticFacetViolation, got nil")
	}
	if _, err := state.ComputedFacetN(static, nil, func(*state.EditorState) []int { return nil }); err == nil {
		t.Fatal("expected StaticFacetViolation, got nil")
	}
}
