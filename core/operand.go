package core

// resolved is the result of evaluating one operand of an executing
// instruction: the PC-relative pointer used by branching opcodes, and
// a stable snapshot of the addressed instruction (spec.md §4.3).
type resolved struct {
	pointer int
	target  Instruction
	// postIncrement, if non-nil, applies this operand's postincrement
	// side effect to live memory. It must run after the opcode has
	// dispatched (spec.md §4.4 step 4).
	postIncrement func()
}

// evalOperand resolves one operand of the instruction executing at pc
// (self is that instruction's already-loaded value, needed because the
// immediate mode's target is the executing instruction itself). Any
// pre-decrement side effect is applied to live memory before this
// function returns.
func (m *MemoryCore) evalOperand(pc int, self Instruction, op Operand, pid int) resolved {
	f := op.Value

	switch op.Mode {
	case Immediate:
		return resolved{pointer: 0, target: self}

	case Direct:
		return resolved{pointer: f, target: m.Load(pc + f)}

	case BIndirect:
		ptrCell := m.Load(pc + f)
		pointer := f + ptrCell.B.Value
		return resolved{pointer: pointer, target: m.Load(pc + pointer)}

	case BPredecr:
		dec := m.FoldField(m.cellAt(pc+f).B.Value - 1)
		m.mutateSubfield(pc, pc+f, pid, false, dec)
		pointer := f + dec
		return resolved{pointer: pointer, target: m.Load(pc + pointer)}

	case BPostincr:
		ptrCell := m.Load(pc + f)
		pointer := f + ptrCell.B.Value
		target := m.Load(pc + pointer)
		addr := pc + f
		return resolved{pointer: pointer, target: target, postIncrement: func() {
			cur := m.cellAt(addr).B.Value
			m.mutateSubfield(pc, addr, pid, false, m.FoldField(cur+1))
		}}

	case AIndirect:
		ptrCell := m.Load(pc + f)
		pointer := f + ptrCell.A.Value
		return resolved{pointer: pointer, target: m.Load(pc + pointer)}

	case APredecr:
		dec := m.FoldField(m.cellAt(pc+f).A.Value - 1)
		m.mutateSubfield(pc, pc+f, pid, true, dec)
		pointer := f + dec
		return resolved{pointer: pointer, target: m.Load(pc + pointer)}

	case APostincr:
		ptrCell := m.Load(pc + f)
		pointer := f + ptrCell.A.Value
		target := m.Load(pc + pointer)
		addr := pc + f
		return resolved{pointer: pointer, target: target, postIncrement: func() {
			cur := m.cellAt(addr).A.Value
			m.mutateSubfield(pc, addr, pid, true, m.FoldField(cur+1))
		}}

	default:
		panic("core: invalid addressing mode")
	}
}

// mutateSubfield rewrites just the A or B field of the cell at addr and
// routes the result through Store so the write-window check and PID
// ownership transfer apply uniformly to addressing-mode side effects,
// exactly as they do to opcode results.
func (m *MemoryCore) mutateSubfield(pc, addr, pid int, isA bool, value int) {
	cur := *m.cellAt(addr)
	if isA {
		cur.A.Value = value
	} else {
		cur.B.Value = value
	}
	m.Store(pc, addr, cur, pid)
}
