package scheduler

import "github.com/corewars/mars/asm"

// Warrior is one round-robin participant: its assembled Program, the
// PID stamped on every cell it writes, the base address it was placed
// at, and the FIFO of its live process program counters (spec.md §4.6).
type Warrior struct {
	Name    string
	PID     int
	Program *asm.Program
	Base    int
	queue   []int
}

// Alive reports whether the warrior has any live process left.
func (w *Warrior) Alive() bool { return len(w.queue) > 0 }

// Processes returns the number of live processes currently queued.
func (w *Warrior) Processes() int { return len(w.queue) }

func (w *Warrior) pop() int {
	pc := w.queue[0]
	w.queue = w.queue[1:]
	return pc
}

// push enqueues pc at the tail, silently dropping it once the
// warrior's process cap is reached; the process already running when
// the cap is hit still completes its own step (spec.md §4.6).
func (w *Warrior) push(pc, processCap int) {
	if processCap > 0 && len(w.queue) >= processCap {
		return
	}
	w.queue = append(w.queue, pc)
}
