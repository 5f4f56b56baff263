package asm

import (
	"strings"

	"github.com/corewars/mars/core"
)

// lineKind classifies one source line after comment-stripping.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineEQU
	lineORG
	lineEND
	lineFOR
	lineROF
	lineInstruction
	lineLabelOnly
	lineUnknown
)

var pseudoKinds = map[string]lineKind{
	"EQU": lineEQU,
	"ORG": lineORG,
	"END": lineEND,
	"FOR": lineFOR,
	"ROF": lineROF,
}

// lineInfo is the result of classifying one raw source line.
type lineInfo struct {
	kind  lineKind
	label string
	rest  string // comment text, EQU/ORG/END/FOR expression text, or full instruction text
}

func pseudoKeyword(tok string) (lineKind, bool) {
	base := tok
	if idx := strings.IndexByte(tok, '.'); idx >= 0 {
		base = tok[:idx]
	}
	k, ok := pseudoKinds[strings.ToUpper(base)]
	return k, ok
}

func opcodeToken(tok string) bool {
	base := tok
	if idx := strings.IndexByte(tok, '.'); idx >= 0 {
		base = tok[:idx]
	}
	_, ok := core.ParseOpcode(base)
	return ok
}

func afterToken(s, tok string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, tok))
}

// classifyLine recognizes the grammar from spec.md §4.2:
//
//	line := comment | [label] (EQU rhs | ORG expr | END expr? | FOR expr | ROF | instruction)
func classifyLine(raw string) lineInfo {
	noCR := strings.TrimRight(raw, "\r")
	trimmedWhole := strings.TrimSpace(noCR)
	if trimmedWhole == "" {
		return lineInfo{kind: lineBlank}
	}
	if strings.HasPrefix(trimmedWhole, ";") {
		return lineInfo{kind: lineComment, rest: trimmedWhole}
	}

	line := noCR
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineInfo{kind: lineBlank}
	}

	fields := strings.Fields(trimmed)
	first := fields[0]
	if kind, ok := pseudoKeyword(first); ok {
		return lineInfo{kind: kind, rest: afterToken(trimmed, first)}
	}
	if opcodeToken(first) {
		return lineInfo{kind: lineInstruction, rest: trimmed}
	}

	rest := afterToken(trimmed, first)
	if rest == "" {
		return lineInfo{kind: lineLabelOnly, label: first}
	}
	fields2 := strings.Fields(rest)
	second := fields2[0]
	if kind, ok := pseudoKeyword(second); ok {
		return lineInfo{kind: kind, label: first, rest: afterToken(rest, second)}
	}
	if opcodeToken(second) {
		return lineInfo{kind: lineInstruction, label: first, rest: rest}
	}
	return lineInfo{kind: lineUnknown, label: first, rest: rest}
}
