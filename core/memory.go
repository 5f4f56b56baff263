package core

// LimitKind distinguishes the read and write access windows.
type LimitKind int

const (
	ReadLimit LimitKind = iota
	WriteLimit
)

// MemoryCore is the circular instruction memory shared by every
// warrior in a round. All mutation during execution goes through
// Store (Place is for loading at round setup); the tracer observes
// copies only, never live cells (spec.md §5).
type MemoryCore struct {
	cells       []Instruction
	size        int
	readLimit   int
	writeLimit  int
	tracer      Tracer
}

// New creates a MemoryCore of the given size, filled with
// InitialCell, with the given read/write windows (spec.md §4.5).
// readLimit and writeLimit must each divide size; passing size itself
// disables windowing entirely. A nil tracer is replaced with
// NullTracer.
func New(size, readLimit, writeLimit int, tr Tracer) *MemoryCore {
	if tr == nil {
		tr = NullTracer{}
	}
	m := &MemoryCore{
		cells:      make([]Instruction, size),
		size:       size,
		readLimit:  readLimit,
		writeLimit: writeLimit,
		tracer:     tr,
	}
	for i := range m.cells {
		m.cells[i] = InitialCell
	}
	return m
}

// Size returns CORESIZE.
func (m *MemoryCore) Size() int { return m.size }

// Cycle notifies the tracer that round execution has reached cycle n,
// so every row the tracer records for this cycle's instructions carries
// the right Row.Cycle (spec.md §4.7, §6). The scheduler calls this once
// per Step, before stepping any warrior.
func (m *MemoryCore) Cycle(n int) { m.tracer.Cycle(n) }

// Fold reduces any integer index into [0, size) via Euclidean modulo,
// never relying on a language's signed-remainder semantics (spec.md §9).
func (m *MemoryCore) Fold(x int) int {
	s := m.size
	r := x % s
	if r < 0 {
		r += s
	}
	return r
}

// cellAt returns a pointer to the live cell at the folded address, for
// in-place mutation by the executor (addressing-mode side effects,
// opcode writes).
func (m *MemoryCore) cellAt(addr int) *Instruction {
	return &m.cells[m.Fold(addr)]
}

// Load returns a copy of the cell at the folded address. Copies are
// cheap because Instruction is a plain value type (spec.md §9).
func (m *MemoryCore) Load(addr int) Instruction {
	instr := m.cells[m.Fold(addr)]
	m.tracer.LogLoad(m.Fold(addr), instr)
	return instr
}

// Store writes instr at the folded address, stamping it with the
// writer's pid, subject to the write-limit window around pc. A
// suppressed write is a silent no-op (spec.md §3, §4.5).
func (m *MemoryCore) Store(pc, addr int, instr Instruction, pid int) {
	if !m.CheckLimit(WriteLimit, pc, addr) {
		return
	}
	instr.PID = pid
	a := m.Fold(addr)
	m.cells[a] = instr
	m.tracer.LogStore(a, instr)
}

// Place writes instr at the folded address unconditionally, bypassing
// the write-limit window. It is for program loading at round setup,
// not for use during execution: MARS always loads a warrior's own code
// regardless of any configured write window (spec.md §4.6).
func (m *MemoryCore) Place(addr int, instr Instruction, pid int) {
	instr.PID = pid
	a := m.Fold(addr)
	m.cells[a] = instr
}

// FoldField reduces an arithmetic result into a signed residue
// (-size/2, size/2] modulo size, the representation used for field
// values stored in memory (spec.md §3, §4.4).
func (m *MemoryCore) FoldField(x int) int {
	r := m.Fold(x)
	if r > m.size/2 {
		r -= m.size
	}
	return r
}

// CheckLimit reports whether target is within the read or write window
// measured from pc: fold(target-pc) <= limit/2 || fold(pc-target) <= limit/2
// (spec.md §4.5). A limit equal to size disables windowing (always true).
func (m *MemoryCore) CheckLimit(kind LimitKind, pc, target int) bool {
	limit := m.readLimit
	if kind == WriteLimit {
		limit = m.writeLimit
	}
	half := limit / 2
	fwd := m.Fold(target - pc)
	back := m.Fold(pc - target)
	return fwd <= half || back <= half
}
