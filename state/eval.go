package state

// Transaction carries the flags and linkage one transition needs: what
// changed, and the state it is being applied on top of. The real
// document/selection model is out of scope here; only what the
// evaluator's dependency tracking needs is represented.
type Transaction struct {
	DocChanged   bool
	SelectionSet bool
	Reconfigured bool
	StartState   *EditorState
}

// EditorState is the minimal concrete stand-in for the external
// EditorState collaborator: the values/status arrays bound to a
// Configuration, plus whichever Transaction is currently applying (nil
// outside a transition).
type EditorState struct {
	Config   *Configuration
	Values   []any
	Status   []Status
	Applying *Transaction

	// depth counts nested safelyOn frames on this state. Only the
	// outermost frame (depth back to 0) converts an engineErr panic
	// into a returned error; inner frames — e.g. a GetField call made
	// from inside another field's update function — re-panic so the
	// failure keeps unwinding to the transition that is actually
	// driving the evaluation, instead of being swallowed one level too
	// early and read back as a zero value.
	depth int
}

// NewEditorState performs the initial population of a fresh state bound
// to cfg: every dynamic slot is evaluated once, with no Transaction in
// play (the fresh-state case).
func NewEditorState(cfg *Configuration) (*EditorState, error) {
	s := &EditorState{
		Config: cfg,
		Values: make([]any, len(cfg.slots)),
		Status: make([]Status, len(cfg.slots)),
	}
	if err := safelyOn(s, func() { ensureAll(s) }); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply produces the EditorState that results from applying tr to s: a
// transition completes by calling ensureAddr on every dynamic slot, in
// order, of the (possibly newly resolved) target Configuration.
func (s *EditorState) Apply(tr *Transaction, cfg *Configuration) (*EditorState, error) {
	if cfg == nil {
		cfg = s.Config
	}
	tr.StartState = s
	next := &EditorState{
		Config:   cfg,
		Values:   make([]any, len(cfg.slots)),
		Status:   make([]Status, len(cfg.slots)),
		Applying: tr,
	}
	if err := safelyOn(next, func() { ensureAll(next) }); err != nil {
		return nil, err
	}
	return next, nil
}

func ensureAll(s *EditorState) {
	for i := range s.Config.slots {
		mustEnsure(s, dynAddr(i))
	}
}

// engineErr wraps an internal error so it can cross the get()/update()/
// combine() callback boundary as a panic and be recovered at the
// nearest transition/resolve entry point, since those user-supplied
// callbacks have no error return of their own and are expected to be
// total. The failures the engine detects mid-recursion and propagates
// through them this way are CyclicDependency and, from mustField, a
// MissingFacetData for a field that is not part of the Configuration.
type engineErr struct{ err error }

// safelyOn runs fn with a recover boundary scoped to s: only the
// outermost call (the one that brings s.depth back to 0) converts an
// engineErr panic into a returned error. Calls nested inside it — made
// from a user create/update/get/combine callback that itself reads
// another facet or field — re-panic so the error keeps propagating to
// that outermost boundary instead of being absorbed prematurely.
func safelyOn(s *EditorState, fn func()) (err error) {
	s.depth++
	defer func() {
		s.depth--
		if r := recover(); r != nil {
			if ee, ok := r.(engineErr); ok && s.depth == 0 {
				err = ee.err
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func mustEnsure(s *EditorState, a addr) Status {
	st, err := ensureAddr(s, a)
	if err != nil {
		panic(engineErr{err})
	}
	return st
}

// ensureAddr is the demand-driven evaluator entry point.
func ensureAddr(s *EditorState, a addr) (Status, error) {
	if a.isStatic() {
		return Computed, nil
	}
	idx := a.index()
	if s.Status[idx]&Computed != 0 {
		return s.Status[idx], nil
	}
	if s.Status[idx] == Computing {
		return 0, newCyclicDependency("")
	}
	s.Status[idx] = Computing
	changed, err := evalSlot(s, idx)
	if err != nil {
		return 0, err
	}
	s.Status[idx] = Computed | changed
	return s.Status[idx], nil
}

// getAddr returns the value at a without forcing evaluation; callers
// must arrange ensureAddr first.
func getAddr(s *EditorState, a addr) any {
	if a.isStatic() {
		return s.Config.staticValues[a.index()]
	}
	return s.Values[a.index()]
}

func evalSlot(s *EditorState, idx int) (Status, error) {
	slot := &s.Config.slots[idx]
	switch slot.kind {
	case slotField:
		return evalField(s, idx, slot.field)
	case slotProvider:
		return evalProvider(s, idx, slot)
	case slotAggregate:
		return evalAggregate(s, idx, slot)
	default:
		return 0, nil
	}
}

func evalField(s *EditorState, idx int, fd *fieldData) (Status, error) {
	tr := s.Applying
	if tr == nil {
		s.Values[idx] = fd.create(s)
		return Changed, nil
	}
	oldAddr, ok := addressLookup(tr.StartState, fd.id)
	if !ok {
		s.Values[idx] = fd.create(s)
		return Changed, nil
	}
	oldVal := tr.StartState.Values[oldAddr.index()]
	newVal := fd.update(oldVal, tr, s)
	if fd.compare(oldVal, newVal) {
		s.Values[idx] = oldVal
		return 0, nil
	}
	s.Values[idx] = newVal
	return Changed, nil
}

func evalProvider(s *EditorState, idx int, slot *dynSlot) (Status, error) {
	p := slot.provider
	tr := s.Applying

	if tr == nil || tr.Reconfigured {
		s.Values[idx] = p.get(s)
		return Changed, nil
	}

	depChanged, err := anyDepChanged(s, tr, slot.deps)
	if err != nil {
		return 0, err
	}
	if !depChanged {
		s.Values[idx] = tr.StartState.Values[idx]
		return 0, nil
	}

	newVal := p.get(s)
	oldVal := tr.StartState.Values[idx]
	if valuesEqual(p.facet, oldVal, newVal, p.multi) {
		s.Values[idx] = oldVal
		return 0, nil
	}
	s.Values[idx] = newVal
	return Changed, nil
}

func valuesEqual(facet *facetData, a, b any, multi bool) bool {
	if !multi {
		return facet.compareInput(a, b)
	}
	as, _ := a.([]any)
	bs, _ := b.([]any)
	return pointwiseEqual(as, bs, facet.compareInput)
}

func anyDepChanged(s *EditorState, tr *Transaction, deps []dep) (bool, error) {
	for _, d := range deps {
		switch d.kind {
		case depDoc:
			if tr.DocChanged {
				return true, nil
			}
		case depSelection:
			if tr.DocChanged || tr.SelectionSet {
				return true, nil
			}
		case depFacet:
			a, ok := s.Config.address[d.facetID]
			if !ok || a.isStatic() {
				continue
			}
			st, err := ensureAddr(s, a)
			if err != nil {
				return false, err
			}
			if st&Changed != 0 {
				return true, nil
			}
		case depField:
			a, ok := s.Config.address[d.fieldID]
			if !ok || a.isStatic() {
				continue
			}
			st, err := ensureAddr(s, a)
			if err != nil {
				return false, err
			}
			if st&Changed != 0 {
				return true, nil
			}
		}
	}
	return false, nil
}

func evalAggregate(s *EditorState, idx int, slot *dynSlot) (Status, error) {
	tr := s.Applying
	facet := slot.facet

	changed := tr == nil || tr.Reconfigured
	if !changed {
		for _, pr := range slot.providers {
			if pr.addr.isStatic() {
				continue
			}
			st, err := ensureAddr(s, pr.addr)
			if err != nil {
				return 0, err
			}
			if st&Changed != 0 {
				changed = true
				break
			}
		}
	}

	if !changed {
		s.Values[idx] = tr.StartState.Values[idx]
		return 0, nil
	}

	var inputs []any
	for _, pr := range slot.providers {
		if _, err := ensureAddr(s, pr.addr); err != nil {
			return 0, err
		}
		v := getAddr(s, pr.addr)
		if pr.multi {
			seq, _ := v.([]any)
			inputs = append(inputs, seq...)
		} else {
			inputs = append(inputs, v)
		}
	}
	newOut := facet.combine(inputs)

	if tr != nil {
		if oldAddr, ok := addressLookup(tr.StartState, facetIDOf(slot)); ok && !oldAddr.isStatic() {
			oldOut := tr.StartState.Values[oldAddr.index()]
			if facet.compareOutput(oldOut, newOut) {
				s.Values[idx] = oldOut
				return 0, nil
			}
		}
	}
	s.Values[idx] = newOut
	return Changed, nil
}

// facetIDOf returns the facet id an aggregate slot was built for, read
// from the slot's facetData. The aggregate dynSlot itself only needs the
// facetData pointer to combine and compare; the id is only needed to
// look the facet up in the prior state's Configuration.
func facetIDOf(slot *dynSlot) id {
	return slot.facet.id
}

// GetFacet reads a facet's resolved value from s: if the facet has no
// address in s.Config (no providers were resolved for it), its Default
// is returned; otherwise the corresponding slot is ensured and read.
func GetFacet[I, O any](s *EditorState, f Facet[I, O]) (O, error) {
	a, ok := s.Config.address[f.data.id]
	if !ok {
		return f.Default(), nil
	}
	var out O
	err := safelyOn(s, func() {
		mustEnsure(s, a)
		out, _ = getAddr(s, a).(O)
	})
	if err != nil {
		var zero O
		return zero, err
	}
	return out, nil
}

// GetField reads a field's current value from s.
func GetField[V any](s *EditorState, f *StateField[V]) (V, error) {
	var out V
	err := safelyOn(s, func() {
		out, _ = mustField(s, f.data).(V)
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out, nil
}

// mustField is the internal accessor Provide/ProvideN's get closures
// use to read the field they are attached to; it panics (via engineErr)
// rather than returning an error because it runs inside a user get
// callback that has no error return of its own.
func mustField(s *EditorState, fd *fieldData) any {
	a, ok := s.Config.address[fd.id]
	if !ok {
		panic(engineErr{newMissingFacetData("field not part of configuration")})
	}
	mustEnsure(s, a)
	return getAddr(s, a)
}

