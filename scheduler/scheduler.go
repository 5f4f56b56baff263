// Package scheduler implements the MARS round loop: round-robin
// dispatch of one instruction per warrior per cycle, each warrior
// running its own FIFO of processes, SPL forking with a per-warrior
// process cap, and win/draw determination (spec.md §4.6).
package scheduler

import (
	"github.com/corewars/mars/asm"
	"github.com/corewars/mars/core"
)

// Outcome classifies how a round ended.
type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Result reports how a round ended: Win names the sole survivor by
// PID, Draw means zero or more than one warrior was alive when the
// round ended (all dead, or max_cycles reached with several still
// alive).
type Result struct {
	Outcome   Outcome
	WinnerPID int
	Cycles    int
}

// Scheduler runs one round of MARS over a shared MemoryCore.
type Scheduler struct {
	Core       *core.MemoryCore
	Warriors   []*Warrior
	MaxCycles  int
	ProcessCap int
	cycle      int
}

// New creates a Scheduler bound to an already-constructed MemoryCore.
func New(m *core.MemoryCore, maxCycles, processCap int) *Scheduler {
	return &Scheduler{Core: m, MaxCycles: maxCycles, ProcessCap: processCap}
}

// AddWarrior places p's instructions starting at base (chosen by
// Place, or supplied directly by the caller) and seeds the warrior's
// process queue with its single starting PC.
func (s *Scheduler) AddWarrior(name string, pid int, p *asm.Program, base int) *Warrior {
	for i, instr := range p.Instructions {
		s.Core.Place(base+i, instr, pid)
	}
	w := &Warrior{Name: name, PID: pid, Program: p, Base: base}
	w.queue = []int{s.Core.Fold(base + p.Start)}
	s.Warriors = append(s.Warriors, w)
	return w
}

// aliveCount returns how many warriors still have a live process.
func (s *Scheduler) aliveCount() int {
	n := 0
	for _, w := range s.Warriors {
		if w.Alive() {
			n++
		}
	}
	return n
}

// Step runs exactly one cycle: every warrior with a nonempty queue
// pops its head process, executes one instruction as that process, and
// enqueues whatever PCs the executor returns. A warrior whose queue is
// empty afterward is dead for the remainder of the round.
func (s *Scheduler) Step() {
	s.cycle++
	s.Core.Cycle(s.cycle)
	for _, w := range s.Warriors {
		if !w.Alive() {
			continue
		}
		pc := w.pop()
		next := s.Core.Execute(pc, w.PID)
		for _, n := range next {
			w.push(n, s.ProcessCap)
		}
	}
}

// Run drives the round to completion: only one warrior alive (it
// wins), all warriors dead (draw), or the cycle limit reached (draw)
// with more than one warrior still standing (spec.md §4.6).
func (s *Scheduler) Run() Result {
	for {
		alive := s.aliveCount()
		if alive <= 1 {
			return s.finish(alive)
		}
		if s.cycle >= s.MaxCycles {
			return s.finish(alive)
		}
		s.Step()
	}
}

func (s *Scheduler) finish(alive int) Result {
	r := Result{Cycles: s.cycle}
	if alive == 1 {
		for _, w := range s.Warriors {
			if w.Alive() {
				r.Outcome = Win
				r.WinnerPID = w.PID
				return r
			}
		}
	}
	r.Outcome = Draw
	return r
}
