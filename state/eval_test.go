package state_test

import (
	"testing"

	"github.com/extcore/extcore/state"
)

// A field-derived facet leaves both the field and the facet
// unchanged when the transaction makes no document change.
func TestFieldDerivedFacetNoSpuriousChange(t *testing.T) {
	sizeFacet := state.DefineFacet(state.FacetConfig[int, int]{
		Combine: func(xs []int) int {
			total := 0
			for _, x := range xs {
				total += x
			}
			return total
		},
	})
	counter := state.DefineField(state.FieldSpec[int]{
		Create: func(*state.EditorState) int { return 0 },
		Update: func(prev int, tr *state.Transaction, _ *state.EditorState) int {
			if tr.DocChanged {
				return prev + 1
			}
			return prev
		},
	})
	withFacet, err := state.Provide(counter, sizeFacet, func(v int) int { return v })
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := state.Resolve(withFacet.Extension(), nil)
	if err != nil {
		t.Fatal(err)
	}
	s0, err := state.NewEditorState(cfg)
	if err != nil {
		t.Fatal(err)
	}

	s1, err := s0.Apply(&state.Transaction{DocChanged: false}, nil)
	if err != nil {
		t.Fatal(err)
	}

	c0, _ := state.GetField(s0, counter)
	c1, _ := state.GetField(s1, counter)
	if c0 != c1 {
		t.Fatalf("counter changed on a no-op transaction: %d -> %d", c0, c1)
	}
	f0, _ := state.GetFacet(s0, sizeFacet)
	f1, _ := state.GetFacet(s1, sizeFacet)
	if f0 != f1 {
		t.Fatalf("sizeFacet changed on a no-op transaction: %d -> %d", f0, f1)
	}
}

// Mixed static and dynamic providers: after a doc-changed
// transaction bumps counter from 0 to 1, the facet combines [1, 1].
func TestMixedStaticDynamicProviders(t *testing.T) {
	f := state.DefineFacet(state.FacetConfig[int, []int]{
		Combine: func(xs []int) []int { return append([]int(nil), xs...) },
	})
	counter := state.DefineField(state.FieldSpec[int]{
		Create: func(*state.EditorState) int { return 0 },
		Update: func(prev int, tr *state.Transaction, _ *state.EditorState) int {
			if tr.DocChanged {
				return prev + 1
			}
			return prev
		},
	})

	dyn, err := state.ComputedFacet(f, []any{counter}, func(s *state.EditorState) int {
		v, _ := state.GetField(s, counter)
		return v
	})
	if err != nil {
		t.Fatal(err)
	}

	tree := state.List(f.Of(1), dyn, counter.Extension())
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
	got, err := state.GetFacet(s1, f)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Fatalf("got %v, want [1 1]", got)
	}
}

// Two fields whose update functions each read the other's current
// value raise CyclicDependency on first evaluation.
func TestCyclicDependency(t *testing.T) {
	var fieldA, fieldB *state.StateField[int]

	fieldA = state.DefineField(state.FieldSpec[int]{
		Create: func(*state.EditorState) int { return 0 },
		Update: func(prev int, _ *state.Transaction, s *state.EditorState) int {
			v, _ := state.GetField(s, fieldB)
			return v
		},
	})
	fieldB = state.DefineField(state.FieldSpec[int]{
		Create: func(*state.EditorState) int { return 0 },
		Update: func(prev int, _ *state.Transaction, s *state.EditorState) int {
			v, _ := state.GetField(s, fieldA)
			return v
		},
	})

	cfg, err := state.Resolve(state.List(fieldA.Extension(), fieldB.Extension()), nil)
	if err != nil {
		t.Fatal(err)
	}
	s0, err := state.NewEditorState(cfg)
	if err != nil {
		t.Fatal(err)
	}

	_, err = s0.Apply(&state.Transaction{DocChanged: true}, nil)
	if err == nil {
		t.Fatal("expected CyclicDependency error, got nil")
	}
}

// Reconfiguring with the same extension tree and the old state
// reuses the same static value instance.
func TestReuseAcrossReconfigure(t *testing.T) {
	themes := state.DefineListFacet(state.ListFacetConfig[string]{})

	tree1 := state.List(themes.Of("a"))
	cfg1, err := state.Resolve(tree1, nil)
	if err != nil {
		t.Fatal(err)
	}
	s1, err := state.NewEditorState(cfg1)
	if err != nil {
		t.Fatal(err)
	}

	tree2 := state.List(themes.Of("a"))
	cfg2, err := state.Resolve(tree2, s1)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := s1.Apply(&state.Transaction{Reconfigured: true}, cfg2)
	if err != nil {
		t.Fatal(err)
	}

	v1, _ := state.GetFacet(s1, themes)
	v2, _ := state.GetFacet(s2, themes)
	if &v1[0] != &v2[0] {
		t.Fatalf("expected the same backing array to be reused across reconfigure")
	}
}
