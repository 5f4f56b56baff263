package core

import "errors"

var errDivByZero = errors.New("core: division or modulo by zero")

func arithAdd(dst, src int) (int, error) { return dst + src, nil }
func arithSub(dst, src int) (int, error) { return dst - src, nil }
func arithMul(dst, src int) (int, error) { return dst * src, nil }

func arithDiv(dst, src int) (int, error) {
	if src == 0 {
		return 0, errDivByZero
	}
	return dst / src, nil
}

func arithMod(dst, src int) (int, error) {
	if src == 0 {
		return 0, errDivByZero
	}
	return dst % src, nil
}

// opArith implements ADD/SUB/MUL/DIV/MOD: each selected subfield pair
// is combined by op and written into the B-target, folded to a signed
// residue. Both subfield updates are attempted even if one divides by
// zero; a zero-divide in either kills the process once both have been
// tried (spec.md §4.4).
func opArith(ctx *execCtx, op func(dst, src int) (int, error)) []int {
	result := ctx.bCell
	died := false
	wrote := false
	for _, fo := range fieldOps(ctx.self.Modifier) {
		src := getSub(ctx.aCopy, fo.srcIsA)
		dst := getSub(result, fo.dstIsA)
		v, err := op(dst, src)
		if err != nil {
			died = true
			continue
		}
		setSub(&result, fo.dstIsA, ctx.m.FoldField(v))
		wrote = true
	}
	// A subfield that failed its division is never written; only cells
	// that actually changed take on the executing process's PID, so a
	// fully-failed instruction (e.g. DIV.A by zero) leaves its target
	// untouched, matching spec.md §8's div-by-zero scenario.
	if wrote {
		ctx.store(result)
	}
	if died {
		return nil
	}
	return []int{ctx.m.Fold(ctx.pc + 1)}
}
