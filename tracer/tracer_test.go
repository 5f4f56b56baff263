package tracer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corewars/mars/core"
	"github.com/corewars/mars/tracer"
)

func TestRecordingTracerCapturesOneRowPerInstruction(t *testing.T) {
	tr := tracer.NewRecordingTracer(100, 100)
	m := core.New(20, 20, 20, tr)
	m.Store(0, 0, core.Instruction{Opcode: core.MOV, Modifier: core.ModI, A: core.Operand{Mode: core.Direct, Value: 0}, B: core.Operand{Mode: core.Direct, Value: 1}}, 0)

	m.Execute(0, 1)

	rows := tr.Rows()
	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, 1, row.PID)
	require.Equal(t, 0, row.Address)
	require.Equal(t, []int{1}, row.PCS)
	require.False(t, row.AStore == "" && row.BStore == "", "row %+v should record a store somewhere", row)
}

func TestRecordingTracerRingBufferBounded(t *testing.T) {
	tr := tracer.NewRecordingTracer(3, 3)
	m := core.New(20, 20, 20, tr)
	m.Store(0, 0, core.Instruction{Opcode: core.NOP, Modifier: core.ModF}, 0)

	for i := 0; i < 10; i++ {
		m.Execute(0, 1)
	}

	require.Len(t, tr.Rows(), 3, "global ring buffer should cap at 3")
	require.Len(t, tr.PIDRows(1), 3, "per-pid ring buffer should cap at 3")
}

func TestWriteCSVProducesSemicolonHeader(t *testing.T) {
	tr := tracer.NewRecordingTracer(10, 10)
	m := core.New(20, 20, 20, tr)
	m.Store(0, 0, core.Instruction{Opcode: core.NOP, Modifier: core.ModF}, 0)
	m.Execute(0, 1)

	var buf strings.Builder
	require.NoError(t, tracer.WriteCSV(&buf, tr.Rows()))
	require.True(t, strings.HasPrefix(buf.String(), "Cycle;PID;Address;Instruction;"))
}
