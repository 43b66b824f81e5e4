package contentstream

import (
	"testing"

	"github.com/tsawler/transmute/core"
)

// TestParse tests tokenizing a typical text-showing stream into operations.
func TestParse(t *testing.T) {
	data := []byte("BT /F1 12 Tf 100 700 Td (Hello World) Tj ET")
	ops := NewParser(data).Parse()

	if len(ops) != 5 {
		t.Fatalf("expected 5 operations, got %d", len(ops))
	}

	want := []string{"BT", "Tf", "Td", "Tj", "ET"}
	for i, op := range ops {
		if op.Operator != want[i] {
			t.Errorf("operation %d: expected operator %q, got %q", i, want[i], op.Operator)
		}
	}

	tf := ops[1]
	if len(tf.Operands) != 2 {
		t.Fatalf("Tf: expected 2 operands, got %d", len(tf.Operands))
	}
	if name, ok := tf.Operands[0].(core.Name); !ok || name != "F1" {
		t.Errorf("Tf: expected name F1, got %v", tf.Operands[0])
	}
	if size, ok := tf.Operands[1].(core.Int); !ok || size != 12 {
		t.Errorf("Tf: expected size 12, got %v", tf.Operands[1])
	}

	tj := ops[3]
	if len(tj.Operands) != 1 {
		t.Fatalf("Tj: expected 1 operand, got %d", len(tj.Operands))
	}
	if str, ok := tj.Operands[0].(core.String); !ok || string(str) != "Hello World" {
		t.Errorf("Tj: expected string %q, got %v", "Hello World", tj.Operands[0])
	}
}

// TestParseNumbers tests integer and real operand parsing, including signs.
func TestParseNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []core.Object
	}{
		{"integers", "10 -3 op", []core.Object{core.Int(10), core.Int(-3)}},
		{"reals", "0.5 -1.25 op", []core.Object{core.Real(0.5), core.Real(-1.25)}},
		{"leading dot", ".5 op", []core.Object{core.Real(0.5)}},
		{"mixed", "1 2.0 op", []core.Object{core.Int(1), core.Real(2.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := NewParser([]byte(tt.input)).Parse()
			if len(ops) != 1 {
				t.Fatalf("expected 1 operation, got %d", len(ops))
			}
			if len(ops[0].Operands) != len(tt.want) {
				t.Fatalf("expected %d operands, got %d", len(tt.want), len(ops[0].Operands))
			}
			for i, w := range tt.want {
				if ops[0].Operands[i] != w {
					t.Errorf("operand %d: expected %v, got %v", i, w, ops[0].Operands[i])
				}
			}
		})
	}
}

// TestParseStringRaw tests that string payloads keep their escape sequences
// unresolved while escaped parentheses still leave the nesting balanced.
func TestParseStringRaw(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "(abc) Tj", "abc"},
		{"escaped parens", `(\(x\)) Tj`, `\(x\)`},
		{"nested parens", "(a(b)c) Tj", "a(b)c"},
		{"escaped backslash", `(a\\b) Tj`, `a\\b`},
		{"octal kept raw", `(\101) Tj`, `\101`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := NewParser([]byte(tt.input)).Parse()
			if len(ops) != 1 {
				t.Fatalf("expected 1 operation, got %d", len(ops))
			}
			str, ok := ops[0].Operands[0].(core.String)
			if !ok {
				t.Fatalf("expected string operand, got %T", ops[0].Operands[0])
			}
			if string(str) != tt.want {
				t.Errorf("expected raw payload %q, got %q", tt.want, string(str))
			}
		})
	}
}

// TestParseArray tests bracketed operand parsing.
func TestParseArray(t *testing.T) {
	ops := NewParser([]byte("[(a) 5 /N] op")).Parse()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	arr, ok := ops[0].Operands[0].(core.Array)
	if !ok {
		t.Fatalf("expected array operand, got %T", ops[0].Operands[0])
	}
	if len(arr) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr))
	}
	if string(arr[0].(core.String)) != "a" {
		t.Errorf("element 0: expected string a, got %v", arr[0])
	}
	if arr[1] != core.Int(5) {
		t.Errorf("element 1: expected 5, got %v", arr[1])
	}
	if arr[2] != core.Name("N") {
		t.Errorf("element 2: expected name N, got %v", arr[2])
	}
}

// TestParseTolerance tests that unrecognized bytes and comments are skipped
// without disturbing surrounding operations.
func TestParseTolerance(t *testing.T) {
	data := []byte("<< junk >> % comment\n(kept) Tj")
	ops := NewParser(data).Parse()

	var tj *Operation
	for i := range ops {
		if ops[i].Operator == "Tj" {
			tj = &ops[i]
		}
	}
	if tj == nil {
		t.Fatal("expected a Tj operation to survive")
	}
	found := false
	for _, operand := range tj.Operands {
		if str, ok := operand.(core.String); ok && string(str) == "kept" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected string operand %q on Tj, operands: %v", "kept", tj.Operands)
	}
}

// TestParseEmpty tests parsing empty and whitespace-only input.
func TestParseEmpty(t *testing.T) {
	if ops := NewParser(nil).Parse(); len(ops) != 0 {
		t.Errorf("nil input: expected no operations, got %d", len(ops))
	}
	if ops := NewParser([]byte("  \n\t ")).Parse(); len(ops) != 0 {
		t.Errorf("whitespace input: expected no operations, got %d", len(ops))
	}
}
