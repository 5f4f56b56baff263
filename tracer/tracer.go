// Package tracer implements the recording variant of the push-style
// observer defined by core.Tracer (the no-op sink is core.NullTracer):
// it assembles one row per executed instruction and can export the
// history as the CSV layout from spec.md §6.
package tracer

import (
	"fmt"
	"sync"

	"github.com/corewars/mars/core"
)

// Row is one executed instruction's trace, matching the column order
// of the CSV export: Cycle;PID;Address;Instruction;A-Pointer;
// A-Load1;A-Load2;A-Store;B-Pointer;B-Load1;B-Load2;B-Store;
// Store1;Store2;PCS.
type Row struct {
	Cycle       int
	PID         int
	Address     int
	Instruction string
	APointer    int
	ALoads      []string
	AStore      string
	BPointer    int
	BLoads      []string
	BStore      string
	Stores      []string
	PCS         []int
}

type phase int

const (
	phaseNone phase = iota
	phaseA
	phaseB
)

// RecordingTracer implements core.Tracer by assembling Rows, kept in a
// bounded global ring buffer and a bounded per-PID ring buffer so a
// long round never grows memory without bound.
type RecordingTracer struct {
	mu     sync.Mutex
	global *ring
	perPID map[int]*ring
	perCap int
	cycle  int
	phase  phase
	cur    *Row
}

// NewRecordingTracer creates a tracer retaining at most globalCapacity
// rows overall and perPIDCapacity rows for each PID (all processes of
// one warrior share its PID, and so share one buffer).
func NewRecordingTracer(globalCapacity, perPIDCapacity int) *RecordingTracer {
	return &RecordingTracer{
		global: newRing(globalCapacity),
		perPID: make(map[int]*ring),
		perCap: perPIDCapacity,
	}
}

var _ core.Tracer = (*RecordingTracer)(nil)

func (t *RecordingTracer) flushLocked() {
	if t.cur == nil {
		return
	}
	t.global.push(*t.cur)
	pr, ok := t.perPID[t.cur.PID]
	if !ok {
		pr = newRing(t.perCap)
		t.perPID[t.cur.PID] = pr
	}
	pr.push(*t.cur)
	t.cur = nil
}

func (t *RecordingTracer) BeginInstruction(addr int, instr core.Instruction, pid int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.flushLocked()
	t.phase = phaseNone
	t.cur = &Row{Cycle: t.cycle, PID: pid, Address: addr, Instruction: instr.String()}
}

func (t *RecordingTracer) Cycle(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cycle = n
}

func (t *RecordingTracer) BeginAOperand() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phase = phaseA
}

func (t *RecordingTracer) BeginBOperand() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phase = phaseB
}

func (t *RecordingTracer) LogOperand(pointer int, target core.Instruction, postIncrement *core.Instruction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return
	}
	switch t.phase {
	case phaseA:
		t.cur.APointer = pointer
	case phaseB:
		t.cur.BPointer = pointer
	}
}

func (t *RecordingTracer) LogLoad(addr int, instr core.Instruction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return
	}
	text := fmt.Sprintf("%d:%s", addr, instr)
	switch t.phase {
	case phaseA:
		if len(t.cur.ALoads) < 2 {
			t.cur.ALoads = append(t.cur.ALoads, text)
		}
	case phaseB:
		if len(t.cur.BLoads) < 2 {
			t.cur.BLoads = append(t.cur.BLoads, text)
		}
	}
}

func (t *RecordingTracer) LogStore(addr int, instr core.Instruction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return
	}
	text := fmt.Sprintf("%d:%s", addr, instr)
	switch t.phase {
	case phaseA:
		t.cur.AStore = text
	case phaseB:
		t.cur.BStore = text
	default:
		if len(t.cur.Stores) < 2 {
			t.cur.Stores = append(t.cur.Stores, text)
		}
	}
}

func (t *RecordingTracer) Operation(text string) {}

func (t *RecordingTracer) ProgramCounters(pid int, queue []int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cur == nil {
		return
	}
	t.cur.PCS = append([]int(nil), queue...)
	t.flushLocked()
}

// Rows returns every row retained in the global ring buffer, oldest
// first.
func (t *RecordingTracer) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.global.rows()
}

// PIDRows returns every row retained for a single PID, oldest first.
func (t *RecordingTracer) PIDRows(pid int) []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.perPID[pid]
	if !ok {
		return nil
	}
	return r.rows()
}
