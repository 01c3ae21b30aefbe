package atomicx

// MemoryOrder tags the visibility contract attached to an atomic operation.
// It never affects the atomicity of the cell itself.
type MemoryOrder uint8

const (
	// Relaxed guarantees atomicity only.
	Relaxed MemoryOrder = iota
	// Acquire orders later accesses after the operation (loads).
	Acquire
	// Release orders earlier accesses before the operation (stores).
	Release
	// AcqRel combines Acquire and Release (read-modify-write).
	AcqRel
	// SeqCst is the order of every unsuffixed operation.
	SeqCst
)

var orderNames = [...]string{
	Relaxed: "relaxed",
	Acquire: "acquire",
	Release: "release",
	AcqRel:  "acq_rel",
	SeqCst:  "seq_cst",
}

func (o MemoryOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "invalid"
}

// Stronger reports whether o provides every guarantee of other.
func (o MemoryOrder) Stronger(other MemoryOrder) bool {
	switch o {
	case SeqCst:
		return true
	case AcqRel:
		return other != SeqCst
	case Acquire, Release:
		return other == o || other == Relaxed
	default:
		return other == Relaxed
	}
}

// Op names an entry of the operation catalogue.
type Op uint8

const (
	OpInit Op = iota
	OpGet
	OpSet
	OpAdd
	OpSubtract
	OpIncrement
	OpDecrement
	OpSwap
	OpTestAndSwap
)

var opNames = [...]string{
	OpInit:        "init",
	OpGet:         "get",
	OpSet:         "set",
	OpAdd:         "add",
	OpSubtract:    "subtract",
	OpIncrement:   "increment",
	OpDecrement:   "decrement",
	OpSwap:        "swap",
	OpTestAndSwap: "testAndSwap",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "invalid"
}

// orderTable lists, per operation, the orders offered as named variants.
// The first entry is always the order of the unsuffixed method.
var orderTable = [...][]MemoryOrder{
	OpInit:        {Relaxed},
	OpGet:         {SeqCst, Acquire, Relaxed},
	OpSet:         {SeqCst, Release, Relaxed},
	OpAdd:         {SeqCst, AcqRel, Relaxed},
	OpSubtract:    {SeqCst, AcqRel, Relaxed},
	OpIncrement:   {SeqCst, AcqRel},
	OpDecrement:   {SeqCst, AcqRel},
	OpSwap:        {SeqCst, AcqRel},
	OpTestAndSwap: {SeqCst, AcqRel},
}

// Orders returns the memory orders available for op.  Init is a plain
// write, valid only before the cell is shared, and reports Relaxed.
func Orders(op Op) []MemoryOrder {
	if int(op) >= len(orderTable) {
		return nil
	}
	out := make([]MemoryOrder, len(orderTable[op]))
	copy(out, orderTable[op])
	return out
}

// Supports reports whether op has a variant with exactly order o.
func Supports(op Op, o MemoryOrder) bool {
	if int(op) >= len(orderTable) {
		return false
	}
	for _, have := range orderTable[op] {
		if have == o {
			return true
		}
	}
	return false
}
