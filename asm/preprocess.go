package asm

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/corewars/mars/expr"
)

// expander performs the two textual rewrites spec.md §4.2 requires
// before instructions are built: EQU constant substitution (longest
// name first, so COUNT2 is never clobbered by a COUNT replacement) and
// FOR/ROF loop unrolling. Both happen on raw line text, ahead of label
// or operand resolution, exactly as the spec orders them.
type expander struct {
	equ      map[string]string
	equOrder []string
}

func newExpander() *expander {
	return &expander{equ: make(map[string]string)}
}

func identRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
}

// define binds name to value, failing if name is already bound: a
// second EQU for the same name is a RedefinedConstant error rather
// than a silent overwrite (spec.md §7).
func (e *expander) define(name, value string, lineNo int) error {
	if _, ok := e.equ[name]; ok {
		return &AsmError{Kind: RedefinedConstant, File: "-", Line: lineNo, Column: 1, Message: "constant redefined: " + name}
	}
	e.equOrder = append(e.equOrder, name)
	e.equ[name] = value
	return nil
}

// substitute replaces every known EQU name appearing in s with its
// defining text.
func (e *expander) substitute(s string) string {
	names := append([]string(nil), e.equOrder...)
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	for _, name := range names {
		if strings.Contains(s, name) {
			s = identRegexp(name).ReplaceAllString(s, e.equ[name])
		}
	}
	return s
}

// substituteLoopVar replaces "&name" with a zero-padded two-digit
// (n) and bare "name" with decimal (n). The "&" form must be handled
// first: the word-boundary regexp for the bare form also matches the
// identifier immediately following "&".
func substituteLoopVar(s, name string, n int) string {
	amp := regexp.MustCompile(`&` + regexp.QuoteMeta(name) + `\b`)
	s = amp.ReplaceAllString(s, fmt.Sprintf("%02d", n))
	s = identRegexp(name).ReplaceAllString(s, strconv.Itoa(n))
	return s
}

// evalConstExpr evaluates a fully-substituted expression that must not
// reference any label (FOR loop counts are evaluated at expansion time,
// before any label table exists; EQU right-hand sides are kept as text).
func evalConstExpr(s string) (int, error) {
	node, err := expr.Parse(s)
	if err != nil {
		return 0, err
	}
	return node.Eval(nil, 0)
}

// captureForBody returns the lines strictly between a FOR and its
// matching ROF (tracking nested FOR/ROF pairs by first-token shape),
// and the index of the first line after that ROF.
func captureForBody(lines []string, start int) ([]string, int, error) {
	depth := 0
	for i := start; i < len(lines); i++ {
		info := classifyLine(lines[i])
		switch info.kind {
		case lineFOR:
			depth++
		case lineROF:
			if depth == 0 {
				return lines[start:i], i + 1, nil
			}
			depth--
		}
	}
	return nil, 0, &AsmError{Kind: ForWithoutRof, File: "-", Line: start + 1, Column: 1, Message: "FOR without matching ROF"}
}

// expand walks lines, resolving EQU definitions and unrolling FOR/ROF
// blocks, and returns the flat list of instruction/label/comment lines
// that remain. Nested loops are unrolled by recursing on each
// iteration's already-substituted body, which is how the accumulated
// loop-variable binding from spec.md §4.2 is realized here: by the
// time a nested FOR is reached, every enclosing loop variable has
// already been replaced by its concrete value in the text.
func (e *expander) expand(lines []string) ([]string, error) {
	var out []string
	i := 0
	for i < len(lines) {
		info := classifyLine(lines[i])
		switch info.kind {
		case lineBlank, lineComment:
			out = append(out, lines[i])
			i++
		case lineEQU:
			if info.label == "" {
				return nil, &AsmError{Kind: SyntaxError, File: "-", Line: i + 1, Column: 1, Message: "EQU without a name"}
			}
			if err := e.define(info.label, strings.TrimSpace(e.substitute(info.rest)), i+1); err != nil {
				return nil, err
			}
			i++
		case lineFOR:
			varName := info.label
			countExpr := e.substitute(info.rest)
			n, err := evalConstExpr(countExpr)
			if err != nil {
				return nil, &AsmError{Kind: SyntaxError, File: "-", Line: i + 1, Column: 1, Message: "FOR count: " + err.Error()}
			}
			body, next, err := captureForBody(lines, i+1)
			if err != nil {
				return nil, err
			}
			for iter := 0; iter < n; iter++ {
				unrolled := make([]string, len(body))
				for j, bl := range body {
					s := e.substitute(bl)
					if varName != "" {
						s = substituteLoopVar(s, varName, iter+1)
					}
					unrolled[j] = s
				}
				expanded, err := e.expand(unrolled)
				if err != nil {
					return nil, err
				}
				out = append(out, expanded...)
			}
			i = next
		case lineROF:
			return nil, &AsmError{Kind: ForWithoutRof, File: "-", Line: i + 1, Column: 1, Message: "ROF without matching FOR"}
		default:
			out = append(out, e.substitute(lines[i]))
			i++
		}
	}
	return out, nil
}
