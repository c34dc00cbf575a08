package state

import "github.com/IBM/fp-go/option"

// reuseStatic looks up a facet's prior static value in old, if any,
// returning option.None when there is nothing to reuse: either old is
// absent, the facet had no address in it, or that address was dynamic
// (a facet can change from static to dynamic across a reconfigure if
// its provider set changed shape). This is the "maybe a prior value
// exists" question Resolve's all-static fast path asks through
// resolveStaticValue; it is expressed here with IBM-fp-go's Option, to
// give the reconfigure-reuse decision an explicit has-a-value/does-not
// shape instead of a bare comma-ok bool, matching how fp-go callers
// thread Option through a pipeline rather than branching on ok early.
func reuseStatic(old *EditorState, fid id) option.Option[any] {
	if old == nil {
		return option.None[any]()
	}
	a, ok := old.Config.address[fid]
	if !ok || !a.isStatic() {
		return option.None[any]()
	}
	return option.Some(old.Config.staticValues[a.index()])
}

// resolveStaticValue applies the all-static fast path reuse rule: keep
// the prior value when compareOutput says it is equivalent to the
// freshly combined one, otherwise take the fresh value.
func resolveStaticValue(old *EditorState, fid id, facet *facetData, fresh any) any {
	return option.MonadFold(
		reuseStatic(old, fid),
		func() any { return fresh },
		func(prior any) any {
			if facet.compareOutput(prior, fresh) {
				return prior
			}
			return fresh
		},
	)
}
