package state

// fieldData is the shared core behind every variant of a StateField
// produced by chaining Provide/ProvideN. The id and the create/update/
// compare functions are shared across the whole chain; only attached
// grows from one variant to the next. Sharing the id is deliberate: a
// given field identity is singular within a configuration, regardless
// of how many Provide/ProvideN variants decorate it.
type fieldData struct {
	id       id
	create   func(*EditorState) any
	update   func(prev any, tr *Transaction, s *EditorState) any
	compare  func(a, b any) bool
	attached []Extension
}

func (f *fieldData) fieldDepID() id { return f.id }

// StateField is a mutable-over-time value with create/update/compare,
// plus whatever facet-provider extensions have been attached via
// Provide/ProvideN.
type StateField[V any] struct {
	data *fieldData
}

func (f *StateField[V]) fieldDepID() id { return f.data.id }

// Extension returns the leaf Extension for this field, for inclusion in
// an extension tree.
func (f *StateField[V]) Extension() Extension {
	return &fieldLeaf{field: f.data}
}

// FieldSpec configures a new StateField.
type FieldSpec[V any] struct {
	Create  func(*EditorState) V
	Update  func(prev V, tr *Transaction, s *EditorState) V
	Compare func(a, b V) bool
}

// DefineField yields a field with an empty attached-extensions list.
func DefineField[V any](spec FieldSpec[V]) *StateField[V] {
	compare := spec.Compare
	if compare == nil {
		compare = func(a, b V) bool { return cmpEqual(a, b) }
	}
	fd := &fieldData{
		id:     newID(),
		create: func(s *EditorState) any { return spec.Create(s) },
		update: func(prev any, tr *Transaction, s *EditorState) any {
			return spec.Update(prev.(V), tr, s)
		},
		compare: func(a, b any) bool { return compare(a.(V), b.(V)) },
	}
	return &StateField[V]{data: fd}
}

func withAttached[V any](f *StateField[V], ext Extension) *StateField[V] {
	nd := &fieldData{
		id:      f.data.id,
		create:  f.data.create,
		update:  f.data.update,
		compare: f.data.compare,
	}
	nd.attached = make([]Extension, len(f.data.attached)+1)
	copy(nd.attached, f.data.attached)
	nd.attached[len(f.data.attached)] = ext
	return &StateField[V]{data: nd}
}

// Provide returns a new StateField sharing f's id and core functions,
// whose attached list has been extended with a Single provider for
// facet, derived by calling get with the field's current value. If
// prec is supplied, the provider is wrapped at that explicit
// precedence, overriding whatever level it would otherwise inherit
// from its position in the tree: an explicit per-provider Prec
// overrides the inherited one.
//
// Go methods cannot introduce additional type parameters beyond the
// receiver's, so this is a free function parameterized over the
// facet's own I/O types rather than a method on StateField.
func Provide[V, I, O any](f *StateField[V], facet Facet[I, O], get func(V) I, prec ...Prec) (*StateField[V], error) {
	if facet.data.isStatic {
		return nil, newStaticFacetViolation("StateField.provide")
	}
	leaf := &providerLeaf{
		facet: facet.data,
		multi: false,
		deps:  []any{f},
		get:   func(s *EditorState) any { return get(mustField(s, f.data).(V)) },
	}
	var ext Extension = leaf
	if len(prec) > 0 {
		ext = prec[0].Set(ext)
	}
	return withAttached(f, ext), nil
}

// ProvideN is Provide's Multi-provider counterpart.
func ProvideN[V, I, O any](f *StateField[V], facet Facet[I, O], get func(V) []I, prec ...Prec) (*StateField[V], error) {
	if facet.data.isStatic {
		return nil, newStaticFacetViolation("StateField.provideN")
	}
	leaf := &providerLeaf{
		facet: facet.data,
		multi: true,
		deps:  []any{f},
		get: func(s *EditorState) any {
			in := get(mustField(s, f.data).(V))
			out := make([]any, len(in))
			for i, v := range in {
				out[i] = v
			}
			return out
		},
	}
	var ext Extension = leaf
	if len(prec) > 0 {
		ext = prec[0].Set(ext)
	}
	return withAttached(f, ext), nil
}
