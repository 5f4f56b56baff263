// Package asm assembles Redcode '94 source text into a position-
// independent core.Instruction program: label and EQU-constant
// resolution, FOR/ROF loop unrolling, expression evaluation via the
// expr package, and instruction-modifier defaulting (spec.md §4.1–§4.2).
package asm

import "github.com/corewars/mars/core"

// Metadata holds the free-text program annotations recognized from
// ";name", ";author" and ";strategy" comments (spec.md §4.2).
type Metadata struct {
	Name       string
	Author     string
	Strategies []string
}

// Program is the output of assembly: an ordered, position-independent
// sequence of Instructions ready for placement in a MemoryCore, the
// offset execution should begin at, and the label table used to
// produce it (spec.md §3).
type Program struct {
	Instructions []core.Instruction
	Start        int
	Labels       map[string]int
	Meta         Metadata
}
