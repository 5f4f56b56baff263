package asm

import (
	"fmt"
	"sort"
	"strings"
)

// Print renders a Program back into Redcode '94 source text, closely
// enough that Parse(Print(p)) reproduces the same Instructions: every
// operand is emitted as the literal integer value already resolved by
// Parse (not re-derived from a symbol), and labels are reconstructed
// from Program.Labels purely for readability.
func Print(p *Program) string {
	var b strings.Builder
	if p.Meta.Name != "" {
		fmt.Fprintf(&b, ";name %s\n", p.Meta.Name)
	}
	if p.Meta.Author != "" {
		fmt.Fprintf(&b, ";author %s\n", p.Meta.Author)
	}
	for _, s := range p.Meta.Strategies {
		fmt.Fprintf(&b, ";strategy %s\n", s)
	}
	b.WriteString(";redcode-94\n")

	byAddr := make(map[int][]string, len(p.Labels))
	for name, addr := range p.Labels {
		byAddr[addr] = append(byAddr[addr], name)
	}
	for addr := range byAddr {
		sort.Strings(byAddr[addr])
	}

	for addr, instr := range p.Instructions {
		for _, name := range byAddr[addr] {
			fmt.Fprintf(&b, "%s\n", name)
		}
		fmt.Fprintf(&b, "\t%s.%s %s%d, %s%d\n",
			instr.Opcode, instr.Modifier,
			string(instr.A.Mode), instr.A.Value,
			string(instr.B.Mode), instr.B.Value)
	}
	fmt.Fprintf(&b, "END %d\n", p.Start)
	return b.String()
}
