package state

// addr is a 32-bit encoded address: the low bit is the kind tag
// (0 = dynamic, 1 = static), the upper bits index the dynamic
// values/status arrays or the static value array respectively.
type addr uint32

func dynAddr(i int) addr    { return addr(i) << 1 }
func staticAddr(i int) addr { return addr(i)<<1 | 1 }

func (a addr) isStatic() bool { return a&1 == 1 }
func (a addr) index() int     { return int(a >> 1) }
