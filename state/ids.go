package state

import "sync/atomic"

// id is the process-wide, monotonically assigned identifier carried by
// every Facet, Provider and StateField. The counter is global rather
// than per-Configuration: the engine only requires ids to be unique
// across the set of extensions presented to a single resolve call, but
// a global counter makes that trivially true and keeps ids stable across
// repeated resolves of long-lived Facet/StateField values, which is
// what lets Configuration.Resolve recognize "the same field" across a
// reconfigure.
type id uint64

var nextID atomic.Uint64

func newID() id {
	return id(nextID.Add(1))
}
