package core

// opDAT implements DAT: illegal to execute, the process terminates.
func opDAT(ctx *execCtx) []int { return nil }

// opNOP implements NOP: advances to the next instruction, no side effects.
func opNOP(ctx *execCtx) []int { return []int{ctx.m.Fold(ctx.pc + 1)} }
