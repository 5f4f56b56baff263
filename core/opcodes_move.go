package core

// opMOV implements MOV. Modifier I replaces the entire destination
// instruction (opcode, modifier, both operands) with the A-copy;
// every other modifier copies individual subfields through the same
// grid arithmetic uses (spec.md §4.4).
func opMOV(ctx *execCtx) []int {
	var result Instruction
	if ctx.self.Modifier == ModI {
		result = ctx.aCopy
	} else {
		result = ctx.bCell
		for _, fo := range fieldOps(ctx.self.Modifier) {
			setSub(&result, fo.dstIsA, getSub(ctx.aCopy, fo.srcIsA))
		}
	}
	ctx.store(result)
	return []int{ctx.m.Fold(ctx.pc + 1)}
}
