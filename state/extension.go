package state

// Extension is a composable unit of configuration: a leaf (a static
// value, a computed provider, or a field), an ordered list of
// extensions, or a precedence-wrapped inner extension.
//
// Concrete Extension implementations are always pointer types so that
// the flattening pass's "seen" set (keyed on the Extension interface
// value itself) can use identity, not structural equality, to dedupe
// shared sub-trees.
type Extension interface {
	isExtension()
}

// staticLeaf is a Provider's Static(value) contribution.
type staticLeaf struct {
	facet *facetData
	value any
}

func (*staticLeaf) isExtension() {}

// providerLeaf is a Provider's Single or Multi contribution.
type providerLeaf struct {
	facet *facetData
	multi bool
	deps  []any // unresolved; validated into []dep at resolve time
	get   func(*EditorState) any
}

func (*providerLeaf) isExtension() {}

// fieldLeaf references a StateField. Its attached providers are
// flattened alongside it at the same precedence.
type fieldLeaf struct {
	field *fieldData
}

func (*fieldLeaf) isExtension() {}

// listExt is an ordered list of extensions. It is always constructed
// through List so that two calls to List never alias, while a single
// *listExt value reused at two positions in the tree is recognized as
// shared by the flattener's identity-keyed "seen" set.
type listExt struct {
	items []Extension
}

func (*listExt) isExtension() {}

// List composes an ordered group of extensions into one Extension.
func List(exts ...Extension) Extension {
	return &listExt{items: exts}
}

// precExt wraps an inner extension with an explicit precedence level.
type precExt struct {
	level Prec
	inner Extension
}

func (*precExt) isExtension() {}
