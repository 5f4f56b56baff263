package asm

import (
	"errors"
	"strings"

	"github.com/corewars/mars/core"
	"github.com/corewars/mars/expr"
)

type instrNode struct {
	line     int
	addr     int
	opcode   core.Opcode
	hasMod   bool
	modifier core.Modifier
	aMode    core.Mode
	aExpr    string
	bMode    core.Mode
	bExpr    string
}

// Parse assembles Redcode '94 source text into a Program: it resolves
// the preamble/END scanning discipline, expands EQU constants and
// FOR/ROF loops, assigns each instruction a 0-based program-relative
// address, and evaluates every operand expression against the
// resulting label table (spec.md §4.2).
func Parse(src string) (*Program, error) {
	rawLines := splitSourceLines(src)
	meta := scanMetadata(rawLines)
	active := activeWindow(rawLines)

	exp := newExpander()
	expanded, err := exp.expand(active)
	if err != nil {
		return nil, err
	}

	var nodes []instrNode
	labels := make(map[string]int)
	var startExpr string
	haveStart := false
	pc := 0

	bind := func(label string, lineNo int) error {
		if label == "" {
			return nil
		}
		if _, dup := labels[label]; dup {
			return &AsmError{Kind: LabelCollision, File: "-", Line: lineNo, Column: 1, Message: "label redefined: " + label}
		}
		labels[label] = pc
		return nil
	}

	for i, raw := range expanded {
		info := classifyLine(raw)
		lineNo := i + 1
		switch info.kind {
		case lineBlank, lineComment:
		case lineLabelOnly:
			if err := bind(info.label, lineNo); err != nil {
				return nil, err
			}
		case lineEQU:
			return nil, &AsmError{Kind: SyntaxError, File: "-", Line: lineNo, Column: 1, Message: "EQU left unresolved after expansion: " + info.label}
		case lineORG:
			startExpr = info.rest
			haveStart = true
		case lineEND:
			if strings.TrimSpace(info.rest) != "" {
				startExpr = info.rest
				haveStart = true
			}
		case lineFOR, lineROF:
			return nil, &AsmError{Kind: SyntaxError, File: "-", Line: lineNo, Column: 1, Message: "FOR/ROF survived expansion"}
		case lineInstruction:
			if err := bind(info.label, lineNo); err != nil {
				return nil, err
			}
			n, err := parseInstructionText(info.rest, lineNo)
			if err != nil {
				return nil, err
			}
			n.addr = pc
			nodes = append(nodes, n)
			pc++
		case lineUnknown:
			return nil, &AsmError{Kind: SyntaxError, File: "-", Line: lineNo, Column: 1, Message: "unrecognized line after label " + info.label}
		}
	}

	instrs := make([]core.Instruction, len(nodes))
	for idx, n := range nodes {
		instr, err := resolveNode(n, labels)
		if err != nil {
			return nil, err
		}
		instrs[idx] = instr
	}

	start := 0
	if haveStart {
		node, err := expr.Parse(exp.substitute(startExpr))
		if err != nil {
			return nil, &AsmError{Kind: SyntaxError, File: "-", Line: 1, Column: 1, Message: "ORG/END expression: " + err.Error()}
		}
		v, err := node.Eval(labels, 0)
		if err != nil {
			return nil, &AsmError{Kind: evalErrorKind(err), File: "-", Line: 1, Column: 1, Message: err.Error()}
		}
		start = v
	}

	return &Program{Instructions: instrs, Start: start, Labels: labels, Meta: meta}, nil
}

func splitSourceLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return strings.Split(src, "\n")
}

// scanMetadata collects ";name"/";author"/";strategy" comments from the
// whole source, including the preamble, regardless of scanning state
// (spec.md §4.2).
func scanMetadata(lines []string) Metadata {
	var m Metadata
	for _, raw := range lines {
		t := strings.TrimSpace(raw)
		if !strings.HasPrefix(t, ";") {
			continue
		}
		body := strings.TrimSpace(t[1:])
		lower := strings.ToLower(body)
		switch {
		case strings.HasPrefix(lower, "name"):
			m.Name = strings.TrimSpace(body[len("name"):])
		case strings.HasPrefix(lower, "author"):
			m.Author = strings.TrimSpace(body[len("author"):])
		case strings.HasPrefix(lower, "strategy"):
			m.Strategies = append(m.Strategies, strings.TrimSpace(body[len("strategy"):]))
		}
	}
	return m
}

// activeWindow implements the preamble/END scanning discipline: lines
// before a ";redcode" or ";redcode-94" marker are ignored, and scanning
// stops at the first END. A source with no marker at all is treated as
// fully active, a deliberate leniency for small inline snippets (see
// DESIGN.md) that spec.md's reference warriors never need because they
// always carry the marker.
func activeWindow(lines []string) []string {
	marker := -1
	for i, l := range lines {
		t := strings.ToLower(strings.TrimSpace(l))
		if t == ";redcode" || t == ";redcode-94" {
			marker = i
			break
		}
	}
	start := 0
	if marker >= 0 {
		start = marker + 1
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if classifyLine(lines[i]).kind == lineEND {
			end = i + 1
			break
		}
	}
	return lines[start:end]
}

func splitInstruction(text string) (mnemonic, operands string) {
	idx := strings.IndexAny(text, " \t")
	if idx < 0 {
		return text, ""
	}
	return text[:idx], strings.TrimSpace(text[idx+1:])
}

func splitOperands(s string) (a, b string, hasB bool) {
	parts := strings.SplitN(s, ",", 2)
	a = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		return a, strings.TrimSpace(parts[1]), true
	}
	return a, "", false
}

func parseOperandText(s string) (core.Mode, string) {
	if s == "" {
		return core.Direct, ""
	}
	switch core.Mode(s[0]) {
	case core.Immediate, core.Direct, core.BIndirect, core.BPredecr, core.BPostincr, core.AIndirect, core.APredecr, core.APostincr:
		return core.Mode(s[0]), strings.TrimSpace(s[1:])
	default:
		return core.Direct, s
	}
}

func parseInstructionText(text string, lineNo int) (instrNode, error) {
	mnemonic, operandsText := splitInstruction(text)
	opName, modText := mnemonic, ""
	if idx := strings.IndexByte(mnemonic, '.'); idx >= 0 {
		opName, modText = mnemonic[:idx], mnemonic[idx+1:]
	}
	opcode, ok := core.ParseOpcode(opName)
	if !ok {
		return instrNode{}, &AsmError{Kind: SyntaxError, File: "-", Line: lineNo, Column: 1, Message: "unknown opcode: " + opName}
	}
	n := instrNode{line: lineNo, opcode: opcode}
	if modText != "" {
		mod, ok := core.ParseModifier(modText)
		if !ok {
			return instrNode{}, &AsmError{Kind: BadModifier, File: "-", Line: lineNo, Column: 1, Message: "unrecognized modifier: " + modText}
		}
		n.hasMod = true
		n.modifier = mod
	}

	aText, bText, hasB := splitOperands(operandsText)
	if strings.TrimSpace(aText) == "" {
		return instrNode{}, &AsmError{Kind: MissingOperand, File: "-", Line: lineNo, Column: 1, Message: "missing A-operand"}
	}
	n.aMode, n.aExpr = parseOperandText(aText)
	if hasB {
		n.bMode, n.bExpr = parseOperandText(bText)
	} else {
		n.bMode, n.bExpr = core.Immediate, "0"
	}
	return n, nil
}

func resolveNode(n instrNode, labels map[string]int) (core.Instruction, error) {
	aVal, err := evalOperandExpr(n.aExpr, labels, n.addr, n.line)
	if err != nil {
		return core.Instruction{}, err
	}
	bVal, err := evalOperandExpr(n.bExpr, labels, n.addr, n.line)
	if err != nil {
		return core.Instruction{}, err
	}

	mod := n.modifier
	if !n.hasMod {
		mod = defaultModifier(n.opcode, n.aMode, n.bMode)
	}

	return core.Instruction{
		Opcode:   n.opcode,
		Modifier: mod,
		A:        core.Operand{Mode: n.aMode, Value: aVal},
		B:        core.Operand{Mode: n.bMode, Value: bVal},
	}, nil
}

func evalOperandExpr(text string, labels map[string]int, addr, lineNo int) (int, error) {
	node, err := expr.Parse(text)
	if err != nil {
		return 0, &AsmError{Kind: SyntaxError, File: "-", Line: lineNo, Column: 1, Message: err.Error()}
	}
	v, err := node.Eval(labels, addr)
	if err != nil {
		return 0, &AsmError{Kind: evalErrorKind(err), File: "-", Line: lineNo, Column: 1, Message: err.Error()}
	}
	return v, nil
}

// evalErrorKind classifies an error returned by expr.Node.Eval into
// the assembly error-kind taxonomy (spec.md §3, §7): a division or
// modulo by zero is DivByZeroInExpr, anything else (an unresolved
// label) is UnknownSymbol.
func evalErrorKind(err error) ErrorKind {
	if errors.Is(err, expr.ErrDivByZero) {
		return DivByZeroInExpr
	}
	return UnknownSymbol
}
