package core

// Tracer is a push-style observer invoked by MemoryCore and the
// executor at well-defined points (spec.md §4.7). It is modeled as an
// interface — NullTracer below, or RecordingTracer from the sibling
// tracer package, passed in explicitly — rather than a package-level
// singleton, so the core stays testable without a tracer wired up at
// all (design note in spec.md §9).
type Tracer interface {
	BeginInstruction(addr int, instr Instruction, pid int)
	Cycle(n int)
	BeginAOperand()
	BeginBOperand()
	LogOperand(pointer int, target Instruction, postIncrement *Instruction)
	LogLoad(addr int, instr Instruction)
	LogStore(addr int, instr Instruction)
	Operation(text string)
	ProgramCounters(pid int, queue []int)
}

// NullTracer discards every event. It is the MemoryCore's default so
// that running a round never requires opting into tracing.
type NullTracer struct{}

func (NullTracer) BeginInstruction(int, Instruction, int)       {}
func (NullTracer) Cycle(int)                                    {}
func (NullTracer) BeginAOperand()                                {}
func (NullTracer) BeginBOperand()                                {}
func (NullTracer) LogOperand(int, Instruction, *Instruction)     {}
func (NullTracer) LogLoad(int, Instruction)                      {}
func (NullTracer) LogStore(int, Instruction)                     {}
func (NullTracer) Operation(string)                              {}
func (NullTracer) ProgramCounters(int, []int)                    {}
