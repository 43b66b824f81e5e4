package contentstream

import "testing"

// TestInterpret tests a full text object: font selection, color, absolute
// and relative positioning, and run emission.
func TestInterpret(t *testing.T) {
	stream := "BT /Helvetica-Bold 14 Tf 1 0 0 rg " +
		"1 0 0 1 100 700 Tm (First) Tj " +
		"0 -20 Td (Second) Tj ET"

	state := NewGraphicsState()
	runs := InterpretBytes([]byte(stream), &state)

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	first := runs[0]
	if first.Text != "First" {
		t.Errorf("expected text First, got %q", first.Text)
	}
	if first.Font != "Arial" {
		t.Errorf("expected font Arial, got %q", first.Font)
	}
	if !first.Bold || first.Italic {
		t.Errorf("expected bold non-italic, got bold=%v italic=%v", first.Bold, first.Italic)
	}
	if first.FontSize != 14 {
		t.Errorf("expected size 14, got %v", first.FontSize)
	}
	if first.Color != "FF0000" {
		t.Errorf("expected color FF0000, got %q", first.Color)
	}
	if first.X != 100 || first.Y != 700 {
		t.Errorf("expected position (100, 700), got (%v, %v)", first.X, first.Y)
	}

	second := runs[1]
	if second.Text != "Second" {
		t.Errorf("expected text Second, got %q", second.Text)
	}
	if second.X != 100 || second.Y != 680 {
		t.Errorf("expected position (100, 680), got (%v, %v)", second.X, second.Y)
	}
}

// TestInterpretColors tests the color operators against the tracked state.
func TestInterpretColors(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{"rgb fill", "0 0 1 rg (x) Tj", "0000FF"},
		{"gray fill", "0.5 g (x) Tj", "808080"},
		{"cmyk black", "0 0 0 1 k (x) Tj", "000000"},
		{"cmyk white", "0 0 0 0 k (x) Tj", "FFFFFF"},
		{"default black", "(x) Tj", "000000"},
		{"stroke does not affect fill", "1 0 0 RG (x) Tj", "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewGraphicsState()
			runs := InterpretBytes([]byte(tt.stream), &state)
			if len(runs) != 1 {
				t.Fatalf("expected 1 run, got %d", len(runs))
			}
			if runs[0].Color != tt.want {
				t.Errorf("expected color %s, got %s", tt.want, runs[0].Color)
			}
		})
	}
}

// TestInterpretStroke tests that RG, G, and K update the stroke state.
func TestInterpretStroke(t *testing.T) {
	state := NewGraphicsState()
	Interpret(NewParser([]byte("1 0 0 RG 0 0 0 1 K")).Parse(), &state)
	if state.Stroke != "000000" {
		t.Errorf("expected CMYK black stroke, got %s", state.Stroke)
	}

	state = NewGraphicsState()
	Interpret(NewParser([]byte("0 1 0 RG")).Parse(), &state)
	if state.Stroke != "00FF00" {
		t.Errorf("expected green stroke, got %s", state.Stroke)
	}

	state = NewGraphicsState()
	Interpret(NewParser([]byte("0.5 G")).Parse(), &state)
	if state.Stroke != "808080" {
		t.Errorf("expected gray stroke, got %s", state.Stroke)
	}
}

// TestInterpretStatePersists tests that state carries across calls so that
// multiple streams of one page share font and position.
func TestInterpretStatePersists(t *testing.T) {
	state := NewGraphicsState()
	InterpretBytes([]byte("/F1 10 Tf 1 0 0 1 50 600 Tm"), &state)
	runs := InterpretBytes([]byte("(carried) Tj"), &state)

	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].FontSize != 10 {
		t.Errorf("expected size 10 to carry over, got %v", runs[0].FontSize)
	}
	if runs[0].X != 50 || runs[0].Y != 600 {
		t.Errorf("expected position (50, 600) to carry over, got (%v, %v)", runs[0].X, runs[0].Y)
	}
}

// TestInterpretMalformed tests that an operator with missing or mistyped
// operands is dropped without affecting later operations.
func TestInterpretMalformed(t *testing.T) {
	tests := []struct {
		name   string
		stream string
	}{
		{"Tf missing size", "/F1 Tf (ok) Tj"},
		{"Tm too few operands", "1 2 Tm (ok) Tj"},
		{"rg non-numeric", "/X 0 0 rg (ok) Tj"},
		{"Tj without operand", "Tj (ok) Tj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewGraphicsState()
			runs := InterpretBytes([]byte(tt.stream), &state)
			if len(runs) != 1 {
				t.Fatalf("expected 1 surviving run, got %d", len(runs))
			}
			if runs[0].Text != "ok" {
				t.Errorf("expected text ok, got %q", runs[0].Text)
			}
		})
	}
}

// TestInterpretEscapedParens tests that escaped parentheses in a shown
// string come out as literal parenthesis characters.
func TestInterpretEscapedParens(t *testing.T) {
	state := NewGraphicsState()
	runs := InterpretBytes([]byte(`(\(note\)) Tj`), &state)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Text != "(note)" {
		t.Errorf("expected %q, got %q", "(note)", runs[0].Text)
	}
}

// TestInterpretEmptyString tests that an empty payload emits no run.
func TestInterpretEmptyString(t *testing.T) {
	state := NewGraphicsState()
	runs := InterpretBytes([]byte("() Tj"), &state)
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %v", runs)
	}
}
