package core

// fieldOp names one subfield-to-subfield data path through a modifier:
// read either the A-copy's A-field or B-field, write either the
// B-target's A-field or B-field. Arithmetic, MOV (non-I), and
// comparison opcodes all share this grid (spec.md §4.4).
type fieldOp struct {
	srcIsA bool
	dstIsA bool
}

// fieldOps returns the subfield data path(s) selected by mod. F and I
// behave identically here; MOV.I and SEQ.I are handled as special
// cases by their callers instead of going through this grid.
func fieldOps(mod Modifier) []fieldOp {
	switch mod {
	case ModA:
		return []fieldOp{{srcIsA: true, dstIsA: true}}
	case ModB:
		return []fieldOp{{srcIsA: false, dstIsA: false}}
	case ModAB:
		return []fieldOp{{srcIsA: true, dstIsA: false}}
	case ModBA:
		return []fieldOp{{srcIsA: false, dstIsA: true}}
	case ModX:
		return []fieldOp{{srcIsA: false, dstIsA: true}, {srcIsA: true, dstIsA: false}}
	case ModF, ModI:
		return []fieldOp{{srcIsA: true, dstIsA: true}, {srcIsA: false, dstIsA: false}}
	default:
		panic("core: unrecognized modifier")
	}
}

// dstFields reports which subfield(s) of the B-target a single-operand
// opcode (JMZ/JMN/DJN) checks or mutates for mod.
func dstFields(mod Modifier) (useA, useB bool) {
	switch mod {
	case ModA:
		return true, false
	case ModB:
		return false, true
	case ModAB:
		return false, true
	case ModBA:
		return true, false
	case ModF, ModX, ModI:
		return true, true
	default:
		panic("core: unrecognized modifier")
	}
}

func getSub(instr Instruction, isA bool) int {
	if isA {
		return instr.A.Value
	}
	return instr.B.Value
}

func setSub(instr *Instruction, isA bool, v int) {
	if isA {
		instr.A.Value = v
	} else {
		instr.B.Value = v
	}
}
