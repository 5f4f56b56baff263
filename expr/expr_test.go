package expr_test

import (
	"testing"

	"github.com/corewars/mars/expr"
)

func evalStr(t *testing.T, src string, symtab expr.SymbolTable, addr int) int {
	t.Helper()
	n, err := expr.Parse(src)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	v, err := n.Eval(symtab, addr)
	if err != nil {
		t.Fatalf("eval(%q): %v", src, err)
	}
	return v
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		name, src string
		want      int
	}{
		{"mul_before_add", "2+3*4", 14},
		{"parens_override", "(2+3)*4", 20},
		{"mod_and_div", "10%3+10/3", 4},
		{"comparison_below_arith", "1+1==2", 1},
		{"and_below_comparison", "1<2 && 3>2", 1},
		{"or_below_and", "0 && 1 || 1", 1},
		{"not_binds_tight", "!0 + !1", 1},
		{"unary_neg", "-3+5", 2},
		{"double_neg", "--3", 3},
		{"le_ge", "3<=3 && 3>=3", 1},
		{"ne", "3!=4", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := evalStr(t, tc.src, nil, 0)
			if got != tc.want {
				t.Errorf("%q = %d, want %d", tc.src, got, tc.want)
			}
		})
	}
}

func TestSymbolIsPCRelative(t *testing.T) {
	symtab := expr.SymbolTable{"loop": 10}
	got := evalStr(t, "loop", symtab, 4)
	if got != 6 {
		t.Errorf("loop at addr 4 = %d, want 6", got)
	}
}

func TestUnknownSymbolFails(t *testing.T) {
	n, err := expr.Parse("missing")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := n.Eval(expr.SymbolTable{}, 0); err == nil {
		t.Fatalf("expected error for unknown symbol")
	}
}

func TestDivByZeroFails(t *testing.T) {
	n, err := expr.Parse("1/0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := n.Eval(nil, 0); err == nil {
		t.Fatalf("expected division-by-zero error")
	}
}

func TestModByZeroFails(t *testing.T) {
	n, err := expr.Parse("1%0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := n.Eval(nil, 0); err == nil {
		t.Fatalf("expected modulo-by-zero error")
	}
}
