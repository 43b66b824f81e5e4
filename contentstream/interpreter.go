package contentstream

import (
	"github.com/tsawler/transmute/core"
	"github.com/tsawler/transmute/model"
	"github.com/tsawler/transmute/resolver"
)

// GraphicsState is the subset of PDF graphics state this pipeline tracks:
// the selected font, fill and stroke colors, and the current text position.
// Colors are held as 6-hex-digit uppercase strings, converted as their
// operators are consumed.
type GraphicsState struct {
	FontName string // font as named in the stream, before mapping
	FontSize float64
	Fill     string
	Stroke   string
	X, Y     float64
}

// NewGraphicsState returns the state a stream starts in: black fill and
// stroke, 12pt, no font selected.
func NewGraphicsState() GraphicsState {
	return GraphicsState{
		FontSize: 12,
		Fill:     resolver.DefaultColor,
		Stroke:   resolver.DefaultColor,
	}
}

// Interpret executes a parsed operation list against state and returns the
// text runs it shows. State changes persist in state, so consecutive streams
// of the same page can share one. Operators outside the tracked set are
// ignored; an operator with missing or mistyped operands costs only itself.
func Interpret(ops []Operation, state *GraphicsState) []model.TextRun {
	var runs []model.TextRun
	for _, op := range ops {
		// Operands index from the end: the operator consumes its trailing
		// arguments, and unparseable junk earlier in the stream must not
		// shift them.
		operands := op.Operands
		switch op.Operator {
		case "Tf":
			if len(operands) >= 2 {
				if name, ok := operands[len(operands)-2].(core.Name); ok {
					if size, ok := toFloat(operands[len(operands)-1]); ok {
						state.FontName = string(name)
						state.FontSize = size
					}
				}
			}
		case "Tm":
			if v, ok := trailingFloats(operands, 6); ok {
				state.X, state.Y = v[4], v[5]
			}
		case "Td", "TD":
			if v, ok := trailingFloats(operands, 2); ok {
				state.X += v[0]
				state.Y += v[1]
			}
		case "rg":
			if v, ok := trailingFloats(operands, 3); ok {
				state.Fill = resolver.HexRGB(v[0], v[1], v[2])
			}
		case "RG":
			if v, ok := trailingFloats(operands, 3); ok {
				state.Stroke = resolver.HexRGB(v[0], v[1], v[2])
			}
		case "g":
			if v, ok := trailingFloats(operands, 1); ok {
				state.Fill = resolver.HexGray(v[0])
			}
		case "G":
			if v, ok := trailingFloats(operands, 1); ok {
				state.Stroke = resolver.HexGray(v[0])
			}
		case "k":
			if v, ok := trailingFloats(operands, 4); ok {
				state.Fill = resolver.HexCMYK(v[0], v[1], v[2], v[3])
			}
		case "K":
			if v, ok := trailingFloats(operands, 4); ok {
				state.Stroke = resolver.HexCMYK(v[0], v[1], v[2], v[3])
			}
		case "Tj":
			if len(operands) >= 1 {
				if str, ok := operands[len(operands)-1].(core.String); ok {
					if run, ok := emitRun(str, state); ok {
						runs = append(runs, run)
					}
				}
			}
		}
	}
	return runs
}

// InterpretBytes parses and interprets a decoded stream in one call.
func InterpretBytes(data []byte, state *GraphicsState) []model.TextRun {
	return Interpret(NewParser(data).Parse(), state)
}

// emitRun turns a Tj payload into a text run with the current state
// snapshot applied. Empty decoded text emits nothing.
func emitRun(str core.String, state *GraphicsState) (model.TextRun, bool) {
	text := Unescape(DecodeText([]byte(str)))
	if text == "" {
		return model.TextRun{}, false
	}
	font := resolver.ResolveFont(state.FontName)
	return model.TextRun{
		Text:     text,
		Font:     font.Name,
		FontSize: state.FontSize,
		Color:    state.Fill,
		Bold:     font.Bold,
		Italic:   font.Italic,
		X:        state.X,
		Y:        state.Y,
	}, true
}

func toFloat(obj core.Object) (float64, bool) {
	switch v := obj.(type) {
	case core.Int:
		return float64(v), true
	case core.Real:
		return float64(v), true
	}
	return 0, false
}

// trailingFloats converts the last n operands to floats. The second return
// is false when fewer than n operands are present or any fails conversion.
func trailingFloats(operands []core.Object, n int) ([]float64, bool) {
	if len(operands) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i, obj := range operands[len(operands)-n:] {
		v, ok := toFloat(obj)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
