package asm

import "github.com/corewars/mars/core"

// isImmediate is shorthand for the M = {$,@,*,<,>,{,}} vs '#' split the
// defaulting table keys off (spec.md §4.2).
func isImmediate(m core.Mode) bool { return m == core.Immediate }

// defaultModifier implements the table from spec.md §4.2: the modifier
// assumed when the source omits ".mod", keyed by opcode and the shape
// of the A/B addressing modes.
func defaultModifier(op core.Opcode, aMode, bMode core.Mode) core.Modifier {
	switch op {
	case core.DAT, core.NOP:
		return core.ModF
	case core.MOV, core.SEQ, core.SNE:
		switch {
		case isImmediate(aMode) && !isImmediate(bMode):
			return core.ModAB
		case !isImmediate(aMode) && isImmediate(bMode):
			return core.ModB
		default:
			return core.ModI
		}
	case core.ADD, core.SUB, core.MUL, core.DIV, core.MOD:
		switch {
		case isImmediate(aMode) && !isImmediate(bMode):
			return core.ModAB
		case !isImmediate(aMode) && isImmediate(bMode):
			return core.ModB
		default:
			return core.ModF
		}
	case core.SLT:
		if isImmediate(aMode) && !isImmediate(bMode) {
			return core.ModAB
		}
		return core.ModB
	case core.JMP, core.JMZ, core.JMN, core.DJN, core.SPL:
		return core.ModB
	default:
		return core.ModI
	}
}
