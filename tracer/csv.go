package tracer

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the exact column order from spec.md §6.
var csvHeader = []string{
	"Cycle", "PID", "Address", "Instruction",
	"A-Pointer", "A-Load1", "A-Load2", "A-Store",
	"B-Pointer", "B-Load1", "B-Load2", "B-Store",
	"Store1", "Store2", "PCS",
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

func (r Row) record() []string {
	pcs := make([]string, len(r.PCS))
	for i, p := range r.PCS {
		pcs[i] = strconv.Itoa(p)
	}
	return []string{
		strconv.Itoa(r.Cycle), strconv.Itoa(r.PID), strconv.Itoa(r.Address), r.Instruction,
		strconv.Itoa(r.APointer), at(r.ALoads, 0), at(r.ALoads, 1), r.AStore,
		strconv.Itoa(r.BPointer), at(r.BLoads, 0), at(r.BLoads, 1), r.BStore,
		at(r.Stores, 0), at(r.Stores, 1), strings.Join(pcs, ","),
	}
}

// WriteCSV writes rows to w using the semicolon-separated layout from
// spec.md §6, header included. No CSV library exists anywhere in the
// retrieved pack (see DESIGN.md), so this uses the standard library's
// encoding/csv with Comma set to ';'.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
