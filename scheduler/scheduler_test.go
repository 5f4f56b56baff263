package scheduler_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/corewars/mars/asm"
	"github.com/corewars/mars/core"
	"github.com/corewars/mars/scheduler"
)

func mustParse(t *testing.T, src string) *asm.Program {
	t.Helper()
	p, err := asm.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return p
}

// Spec scenario 4: SPL fairness. A warrior consisting of nothing but
// SPL $0,$0 cells grows its process count by exactly one every cycle
// (every queued process forks in place without ever stepping onto a
// neighboring, non-SPL cell), until the per-warrior process cap takes
// over; a second warrior's single infinite loop keeps executing
// exactly once per cycle throughout. The sled needs to be long enough
// that no forked process's pc+1 successor walks off the warrior's own
// instructions within the cycles this test drives; eight cells is
// well clear of the handful actually touched before the cap binds.
func TestSPLFairnessAndProcessCap(t *testing.T) {
	m := core.New(1000, 1000, 1000, nil)
	const cap = 5
	s := scheduler.New(m, 1000, cap)

	progA := mustParse(t, strings.Repeat("SPL $0, $0\n", 8))
	progB := mustParse(t, "JMP $0\n")
	wA := s.AddWarrior("A", 1, progA, 10)
	wB := s.AddWarrior("B", 2, progB, 500)

	want := []int{2, 3, 4, 5, cap, cap, cap}
	for i, n := range want {
		s.Step()
		if got := wA.Processes(); got != n {
			t.Fatalf("cycle %d: A has %d processes, want %d", i+1, got, n)
		}
		if got := wB.Processes(); got != 1 {
			t.Fatalf("cycle %d: B has %d processes, want 1", i+1, got)
		}
	}
}

func TestRunDeclaresSoleSurvivorWinner(t *testing.T) {
	m := core.New(1000, 1000, 1000, nil)
	s := scheduler.New(m, 100, 8000)

	dies := mustParse(t, "DAT #0, #0\n")
	loops := mustParse(t, "JMP $0\n")
	s.AddWarrior("dies", 1, dies, 10)
	winner := s.AddWarrior("loops", 2, loops, 500)

	result := s.Run()
	require.Equalf(t, scheduler.Win, result.Outcome, "result: %s", spew.Sdump(result))
	require.Equal(t, winner.PID, result.WinnerPID)
}

func TestRunDrawsWhenAllDie(t *testing.T) {
	m := core.New(1000, 1000, 1000, nil)
	s := scheduler.New(m, 100, 8000)

	dat := mustParse(t, "DAT #0, #0\n")
	s.AddWarrior("a", 1, dat, 10)
	s.AddWarrior("b", 2, dat, 500)

	result := s.Run()
	require.Equalf(t, scheduler.Draw, result.Outcome, "result: %s", spew.Sdump(result))
}

func TestRunDrawsAtMaxCycles(t *testing.T) {
	m := core.New(1000, 1000, 1000, nil)
	s := scheduler.New(m, 5, 8000)

	loops := mustParse(t, "JMP $0\n")
	s.AddWarrior("a", 1, loops, 10)
	s.AddWarrior("b", 2, loops, 500)

	result := s.Run()
	require.Equalf(t, scheduler.Draw, result.Outcome, "result: %s", spew.Sdump(result))
	require.Equal(t, 5, result.Cycles)
}
