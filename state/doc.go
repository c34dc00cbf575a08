// Package state implements the dependency-aware, incremental evaluator
// that resolves a declarative tree of extensions — Facets and their
// Providers, StateFields — into a compiled Configuration, lays out an
// addressable value store, and recomputes derived values on demand as
// Transactions are applied.
//
// The two stateful building blocks are Facets, whose many Provider
// inputs are reduced to one output by a combine function, and
// StateFields, whose single value is threaded from one EditorState to
// the next by an update function. Both are composed through the
// recursive Extension tree and compiled by Resolve into a flat
// plan: an address for every Facet/StateField id, a static value array
// for everything resolvable once, and an ordered list of dynamic slot
// evaluators for everything that must be recomputed per transition.
//
// Evaluation is demand-driven rather than a fixed sweep: a slot is only
// computed the first time something asks for its value, and a slot
// re-entered while still being computed reports CyclicDependency.
package state
