package core

// execCtx carries everything an opcode handler needs: the executing
// instruction, the resolved A-copy (read-only snapshot) and B-target
// (the live cell most opcodes write back to), and the PID doing the
// writing.
type execCtx struct {
	m     *MemoryCore
	pc    int
	pid   int
	self  Instruction
	aCopy Instruction
	bAddr int
	bCell Instruction
}

// store writes the (possibly mutated) B-target back to memory.
func (c *execCtx) store(instr Instruction) {
	c.m.Store(c.pc, c.bAddr, instr, c.pid)
}

// Execute runs the instruction at pc as process pid, mutating memory
// and returning the list of program counters to enqueue next. An
// empty return means the process dies (spec.md §4.4).
func (m *MemoryCore) Execute(pc, pid int) []int {
	self := m.Load(pc)
	m.tracer.BeginInstruction(pc, self, pid)

	m.tracer.BeginAOperand()
	aRes := m.evalOperand(pc, self, self.A, pid)
	m.tracer.LogOperand(aRes.pointer, aRes.target, nil)

	m.tracer.BeginBOperand()
	bRes := m.evalOperand(pc, self, self.B, pid)
	bAddr := pc + bRes.pointer
	m.tracer.LogOperand(bRes.pointer, bRes.target, nil)

	ctx := &execCtx{
		m:     m,
		pc:    pc,
		pid:   pid,
		self:  self,
		aCopy: aRes.target,
		bAddr: bAddr,
		bCell: m.Load(bAddr),
	}

	var next []int
	switch self.Opcode {
	case DAT:
		next = opDAT(ctx)
	case MOV:
		next = opMOV(ctx)
	case ADD:
		next = opArith(ctx, arithAdd)
	case SUB:
		next = opArith(ctx, arithSub)
	case MUL:
		next = opArith(ctx, arithMul)
	case DIV:
		next = opArith(ctx, arithDiv)
	case MOD:
		next = opArith(ctx, arithMod)
	case JMP:
		next = opJMP(ctx, aRes.pointer)
	case JMZ:
		next = opJMZ(ctx, aRes.pointer)
	case JMN:
		next = opJMN(ctx, aRes.pointer)
	case DJN:
		next = opDJN(ctx, aRes.pointer)
	case SEQ:
		next = opSEQ(ctx)
	case SNE:
		next = opSNE(ctx)
	case SLT:
		next = opSLT(ctx)
	case SPL:
		next = opSPL(ctx, aRes.pointer)
	case NOP:
		next = opNOP(ctx)
	default:
		panic("core: unrecognized opcode in executor dispatch")
	}

	if aRes.postIncrement != nil {
		aRes.postIncrement()
	}
	if bRes.postIncrement != nil {
		bRes.postIncrement()
	}

	filtered := next[:0:0]
	for _, target := range next {
		if m.CheckLimit(ReadLimit, pc, target) {
			filtered = append(filtered, target)
		}
	}
	m.tracer.ProgramCounters(pid, filtered)
	return filtered
}
