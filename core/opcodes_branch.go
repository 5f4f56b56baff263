package core

// opJMP implements JMP: unconditional, modifier-independent jump.
func opJMP(ctx *execCtx, aPointer int) []int {
	return []int{ctx.m.Fold(ctx.pc + aPointer)}
}

// opJMZ implements JMZ: branch if every subfield selected by the
// modifier is zero (for F/X/I, both subfields must be zero).
func opJMZ(ctx *execCtx, aPointer int) []int {
	useA, useB := dstFields(ctx.self.Modifier)
	zero := true
	if useA && ctx.bCell.A.Value != 0 {
		zero = false
	}
	if useB && ctx.bCell.B.Value != 0 {
		zero = false
	}
	if zero {
		return []int{ctx.m.Fold(ctx.pc + aPointer)}
	}
	return []int{ctx.m.Fold(ctx.pc + 1)}
}

// opJMN implements JMN: branch if every subfield selected by the
// modifier is nonzero (for F/X/I, the branch is skipped if either
// subfield is zero).
func opJMN(ctx *execCtx, aPointer int) []int {
	useA, useB := dstFields(ctx.self.Modifier)
	nonzero := true
	if useA && ctx.bCell.A.Value == 0 {
		nonzero = false
	}
	if useB && ctx.bCell.B.Value == 0 {
		nonzero = false
	}
	if nonzero {
		return []int{ctx.m.Fold(ctx.pc + aPointer)}
	}
	return []int{ctx.m.Fold(ctx.pc + 1)}
}

// opDJN implements DJN: decrement the selected subfield(s) of the
// B-target first, then branch if the result is nonzero (for F/X/I,
// if not both are zero).
func opDJN(ctx *execCtx, aPointer int) []int {
	useA, useB := dstFields(ctx.self.Modifier)
	result := ctx.bCell
	if useA {
		result.A.Value = ctx.m.FoldField(result.A.Value - 1)
	}
	if useB {
		result.B.Value = ctx.m.FoldField(result.B.Value - 1)
	}
	ctx.store(result)

	allZero := true
	if useA && result.A.Value != 0 {
		allZero = false
	}
	if useB && result.B.Value != 0 {
		allZero = false
	}
	if !allZero {
		return []int{ctx.m.Fold(ctx.pc + aPointer)}
	}
	return []int{ctx.m.Fold(ctx.pc + 1)}
}

// opSPL implements SPL: the process forks, yielding both pc+1 (parent)
// and the jump target (child), parent first (spec.md §4.6).
func opSPL(ctx *execCtx, aPointer int) []int {
	return []int{ctx.m.Fold(ctx.pc + 1), ctx.m.Fold(ctx.pc + aPointer)}
}
