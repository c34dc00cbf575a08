// Package demo assembles a small, fixed extension tree exercising tab
// size precedence, a static list facet, and a field-derived facet with
// incremental recompute, for cmd/extcore's resolve and diff subcommands
// to inspect.
package demo

import "github.com/extcore/extcore/state"

// TabSize: combine picks the first contribution, or 4.
var TabSize = state.DefineFacet(state.FacetConfig[int, int]{
	Combine: func(xs []int) int {
		if len(xs) == 0 {
			return 4
		}
		return xs[0]
	},
})

// Themes has no combine, so the output is the input list.
var Themes = state.DefineListFacet(state.ListFacetConfig[string]{})

// LineCount is summed over its providers.
var LineCount = state.DefineFacet(state.FacetConfig[int, int]{
	Combine: func(xs []int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	},
})

// Counter increments once per document change and feeds LineCount with
// its own value.
var Counter = state.DefineField(state.FieldSpec[int]{
	Create: func(*state.EditorState) int { return 0 },
	Update: func(prev int, tr *state.Transaction, _ *state.EditorState) int {
		if tr.DocChanged {
			return prev + 1
		}
		return prev
	},
})

// Tree builds the demo extension tree: tabSize(2) at Default overridden
// by tabSize(8) at Override, themes("a") and themes("b"), and the
// counter field feeding LineCount.
func Tree() (state.Extension, error) {
	counterWithLineCount, err := state.Provide(Counter, LineCount, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	return state.List(
		TabSize.Of(2),
		state.Override.Set(TabSize.Of(8)),
		Themes.Of("a"),
		Themes.Of("b"),
		counterWithLineCount.Extension(),
	), nil
}
