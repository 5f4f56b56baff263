package asm

import "fmt"

// ErrorKind names the class of an assembly-time failure (spec.md §7).
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	UnknownSymbol
	RedefinedConstant
	MissingOperand
	BadModifier
	DivByZeroInExpr
	ForWithoutRof
	LabelCollision
)

var errorKindNames = [...]string{
	SyntaxError:       "SyntaxError",
	UnknownSymbol:     "UnknownSymbol",
	RedefinedConstant: "RedefinedConstant",
	MissingOperand:    "MissingOperand",
	BadModifier:       "BadModifier",
	DivByZeroInExpr:   "DivByZeroInExpr",
	ForWithoutRof:     "ForWithoutRof",
	LabelCollision:    "LabelCollision",
}

func (k ErrorKind) String() string {
	if int(k) < 0 || int(k) >= len(errorKindNames) {
		return "Error"
	}
	return errorKindNames[k]
}

// AsmError carries the scanner position of a failure alongside its
// kind, so a host can render a caret-pointer diagnostic (spec.md §7).
type AsmError struct {
	Kind    ErrorKind
	File    string
	Line    int
	Column  int
	Message string
}

func (e *AsmError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.Kind, e.Message)
}
