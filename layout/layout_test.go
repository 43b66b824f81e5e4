package layout

import (
	"testing"

	"github.com/tsawler/transmute/model"
)

func run(text string, x, y float64) model.TextRun {
	return model.TextRun{
		Text:     text,
		Font:     "Calibri",
		FontSize: 12,
		Color:    "000000",
		X:        x,
		Y:        y,
	}
}

// TestReconstructOrdering tests that runs come out top-to-bottom then
// left-to-right regardless of drawing order. The lower line sits within the
// paragraph gap so all three runs share one paragraph.
func TestReconstructOrdering(t *testing.T) {
	runs := []model.TextRun{
		run("third", 100, 690),
		run("second", 300, 700),
		run("first", 100, 700),
	}

	paras := Reconstruct(runs, DefaultConfig())
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
	if got := paras[0].Text(); got != "first second third" {
		t.Errorf("expected %q, got %q", "first second third", got)
	}
}

// TestReconstructLineTolerance tests that nearly-level runs share a line
// while runs further apart do not.
func TestReconstructLineTolerance(t *testing.T) {
	tests := []struct {
		name      string
		secondY   float64
		wantParas int
		wantText  string
	}{
		{"within tolerance", 698, 1, "left right"},
		{"separate lines same paragraph", 690, 1, "left right"},
		{"beyond paragraph gap", 650, 2, "left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := []model.TextRun{
				run("left", 100, 700),
				run("right", 200, tt.secondY),
			}
			paras := Reconstruct(runs, DefaultConfig())
			if len(paras) != tt.wantParas {
				t.Fatalf("expected %d paragraphs, got %d", tt.wantParas, len(paras))
			}
			if got := paras[0].Text(); got != tt.wantText {
				t.Errorf("expected first paragraph %q, got %q", tt.wantText, got)
			}
		})
	}
}

// TestReconstructParagraphSplit tests that a vertical gap larger than the
// threshold opens a new paragraph.
func TestReconstructParagraphSplit(t *testing.T) {
	runs := []model.TextRun{
		run("intro line", 72, 700),
		run("body start", 72, 650),
		run("body end", 72, 635),
	}

	paras := Reconstruct(runs, DefaultConfig())
	if len(paras) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paras))
	}
	if got := paras[0].Text(); got != "intro line" {
		t.Errorf("paragraph 0: expected %q, got %q", "intro line", got)
	}
	if got := paras[1].Text(); got != "body start body end" {
		t.Errorf("paragraph 1: expected %q, got %q", "body start body end", got)
	}
}

// TestReconstructFormatMerge tests that adjacent runs merge only when every
// formatting attribute matches.
func TestReconstructFormatMerge(t *testing.T) {
	bold := run("bold", 200, 700)
	bold.Bold = true

	runs := []model.TextRun{
		run("plain", 100, 700),
		bold,
		run("plain again", 300, 700),
	}

	paras := Reconstruct(runs, DefaultConfig())
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
	if len(paras[0].Runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(paras[0].Runs))
	}
	if !paras[0].Runs[1].Bold {
		t.Error("expected middle run to stay bold")
	}

	same := []model.TextRun{
		run("one", 100, 700),
		run("two", 200, 700),
	}
	paras = Reconstruct(same, DefaultConfig())
	if len(paras[0].Runs) != 1 {
		t.Fatalf("expected identical formatting to merge into 1 run, got %d", len(paras[0].Runs))
	}
	if paras[0].Runs[0].Text != "one two" {
		t.Errorf("expected merged text %q, got %q", "one two", paras[0].Runs[0].Text)
	}
}

// TestReconstructConfig tests custom thresholds and the zero-value
// fallback to defaults.
func TestReconstructConfig(t *testing.T) {
	runs := []model.TextRun{
		run("a", 100, 700),
		run("b", 100, 690),
	}

	tight := Reconstruct(runs, Config{LineTolerance: 2, ParagraphGap: 5})
	if len(tight) != 2 {
		t.Errorf("gap 5: expected 2 paragraphs, got %d", len(tight))
	}

	fallback := Reconstruct(runs, Config{})
	if len(fallback) != 1 {
		t.Errorf("zero config: expected default thresholds to apply, got %d paragraphs", len(fallback))
	}
}

// TestReconstructEmpty tests that no runs yield no paragraphs.
func TestReconstructEmpty(t *testing.T) {
	if paras := Reconstruct(nil, DefaultConfig()); paras != nil {
		t.Errorf("expected nil, got %v", paras)
	}
}
