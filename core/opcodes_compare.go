package core

// opSEQ implements SEQ (aka CMP): skip pc+2 if A-copy and B-target
// compare equal per the modifier grid; .I compares whole instructions.
func opSEQ(ctx *execCtx) []int {
	return skipOrNext(ctx, compareEqual(ctx))
}

// opSNE implements SNE: the complement of SEQ.
func opSNE(ctx *execCtx) []int {
	return skipOrNext(ctx, !compareEqual(ctx))
}

// opSLT implements SLT: skip if every selected subfield pair satisfies
// A-copy < B-target. SLT.I reduces to F semantics (spec.md §4.4).
func opSLT(ctx *execCtx) []int {
	mod := ctx.self.Modifier
	if mod == ModI {
		mod = ModF
	}
	lt := true
	for _, fo := range fieldOps(mod) {
		a := getSub(ctx.aCopy, fo.srcIsA)
		b := getSub(ctx.bCell, fo.dstIsA)
		if !(a < b) {
			lt = false
			break
		}
	}
	return skipOrNext(ctx, lt)
}

func compareEqual(ctx *execCtx) bool {
	if ctx.self.Modifier == ModI {
		return ctx.aCopy.Opcode == ctx.bCell.Opcode &&
			ctx.aCopy.Modifier == ctx.bCell.Modifier &&
			ctx.aCopy.A == ctx.bCell.A &&
			ctx.aCopy.B == ctx.bCell.B
	}
	for _, fo := range fieldOps(ctx.self.Modifier) {
		a := getSub(ctx.aCopy, fo.srcIsA)
		b := getSub(ctx.bCell, fo.dstIsA)
		if a != b {
			return false
		}
	}
	return true
}

func skipOrNext(ctx *execCtx, skip bool) []int {
	if skip {
		return []int{ctx.m.Fold(ctx.pc + 2)}
	}
	return []int{ctx.m.Fold(ctx.pc + 1)}
}
