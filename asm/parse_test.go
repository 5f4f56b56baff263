package asm_test

import (
	"testing"

	"github.com/corewars/mars/asm"
	"github.com/corewars/mars/core"
)

func mustParse(t *testing.T, src string) *asm.Program {
	t.Helper()
	p, err := asm.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return p
}

// Spec scenario 1: Imp is a single MOV.I $0, $1.
func TestParseImp(t *testing.T) {
	p := mustParse(t, "MOV.I $0, $1\n")
	if len(p.Instructions) != 1 {
		t.Fatalf("got %d instructions, want 1", len(p.Instructions))
	}
	got := p.Instructions[0]
	want := core.Instruction{Opcode: core.MOV, Modifier: core.ModI, A: core.Operand{Mode: core.Direct, Value: 0}, B: core.Operand{Mode: core.Direct, Value: 1}}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// Spec scenario 2: Dwarf.
func TestParseDwarf(t *testing.T) {
	src := `
       ADD.AB #4, $3
       MOV.AB #0, @2
       JMP    $-2
       DAT    #0, #0
`
	p := mustParse(t, src)
	if len(p.Instructions) != 4 {
		t.Fatalf("got %d instructions, want 4", len(p.Instructions))
	}
	if p.Instructions[0].Opcode != core.ADD || p.Instructions[0].Modifier != core.ModAB {
		t.Fatalf("instr 0 = %+v", p.Instructions[0])
	}
	if p.Instructions[1].B.Mode != core.BIndirect || p.Instructions[1].B.Value != 2 {
		t.Fatalf("instr 1 B-operand = %+v, want @2", p.Instructions[1].B)
	}
	if p.Instructions[2].Opcode != core.JMP || p.Instructions[2].A.Value != -2 {
		t.Fatalf("instr 2 = %+v, want JMP $-2", p.Instructions[2])
	}
}

// Spec scenario 5: FOR unroll produces exactly 3 DAT.F instructions.
func TestParseForUnroll(t *testing.T) {
	src := `
COUNT EQU 3
LBL   FOR COUNT
      DAT #LBL, #0
      ROF
`
	p := mustParse(t, src)
	if len(p.Instructions) != 3 {
		t.Fatalf("got %d instructions, want 3", len(p.Instructions))
	}
	for i, instr := range p.Instructions {
		if instr.Opcode != core.DAT || instr.Modifier != core.ModF {
			t.Fatalf("instr %d = %+v, want DAT.F", i, instr)
		}
		if instr.A.Value != i+1 {
			t.Fatalf("instr %d A.Value = %d, want %d", i, instr.A.Value, i+1)
		}
	}
}

func TestParseForZeroCountEmitsNothing(t *testing.T) {
	src := `
N   EQU 0
LBL FOR N
    DAT #LBL, #0
    ROF
NOP $0
`
	p := mustParse(t, src)
	if len(p.Instructions) != 1 || p.Instructions[0].Opcode != core.NOP {
		t.Fatalf("got %+v, want only the trailing NOP", p.Instructions)
	}
}

// Spec scenario 6: SEQ.I skip.
func TestParseSEQI(t *testing.T) {
	src := "SEQ.I $1, $2\nMOV #1, #1\nDAT #0, #0\nDAT #0, #0\n"
	p := mustParse(t, src)
	if len(p.Instructions) != 4 || p.Instructions[0].Modifier != core.ModI {
		t.Fatalf("got %+v", p.Instructions)
	}
}

func TestModifierDefaulting(t *testing.T) {
	cases := []struct {
		src  string
		mod  core.Modifier
	}{
		{"MOV #0, $1", core.ModAB},
		{"MOV $0, #1", core.ModB},
		{"MOV $0, $1", core.ModI},
		{"ADD #1, #1", core.ModF},
		{"SLT #1, $1", core.ModAB},
		{"SLT $1, $1", core.ModB},
		{"JMP $1", core.ModB},
		{"DAT #0, #0", core.ModF},
		{"NOP $0", core.ModF},
	}
	for _, c := range cases {
		p := mustParse(t, c.src)
		if got := p.Instructions[0].Modifier; got != c.mod {
			t.Errorf("%q: default modifier = %s, want %s", c.src, got, c.mod)
		}
	}
}

func TestMissingBOperandDefaultsToImmediateZero(t *testing.T) {
	p := mustParse(t, "NOP $0\n")
	b := p.Instructions[0].B
	if b.Mode != core.Immediate || b.Value != 0 {
		t.Fatalf("B-operand = %+v, want #0", b)
	}
}

func TestMissingAOperandIsAnError(t *testing.T) {
	if _, err := asm.Parse("MOV\n"); err == nil {
		t.Fatalf("expected a MissingOperand error")
	}
}

func TestEndExpressionSetsStart(t *testing.T) {
	src := `
          JMP START
START     DAT #0, #0
END START
`
	p := mustParse(t, src)
	if p.Start != 1 {
		t.Fatalf("Start = %d, want 1", p.Start)
	}
}

func TestRoundTripPrintAndParse(t *testing.T) {
	src := `
       ADD.AB #4, $3
       MOV.AB #0, @2
       JMP    $-2
       DAT    #0, #0
`
	p := mustParse(t, src)
	printed := asm.Print(p)
	reparsed, err := asm.Parse(printed)
	if err != nil {
		t.Fatalf("reparsing printed source: %v\n%s", err, printed)
	}
	if len(reparsed.Instructions) != len(p.Instructions) {
		t.Fatalf("got %d instructions after round trip, want %d", len(reparsed.Instructions), len(p.Instructions))
	}
	for i := range p.Instructions {
		if reparsed.Instructions[i] != p.Instructions[i] {
			t.Fatalf("instr %d: got %+v, want %+v", i, reparsed.Instructions[i], p.Instructions[i])
		}
	}
	if reparsed.Start != p.Start {
		t.Fatalf("Start = %d, want %d", reparsed.Start, p.Start)
	}
}

func TestMetadataComments(t *testing.T) {
	src := ";name Imp\n;author A. Warrior\n;redcode-94\nMOV.I $0, $1\n"
	p := mustParse(t, src)
	if p.Meta.Name != "Imp" || p.Meta.Author != "A. Warrior" {
		t.Fatalf("Meta = %+v", p.Meta)
	}
}
