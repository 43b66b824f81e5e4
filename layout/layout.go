package layout

import (
	"sort"

	"github.com/tsawler/transmute/model"
)

// Config holds the geometric thresholds for structure reconstruction, in
// PDF points. Runs whose baselines differ by at most LineTolerance share a
// line; consecutive lines more than ParagraphGap apart start a new
// paragraph.
type Config struct {
	LineTolerance float64
	ParagraphGap  float64
}

// DefaultConfig returns thresholds suited to single-column body text.
func DefaultConfig() Config {
	return Config{
		LineTolerance: 2,
		ParagraphGap:  20,
	}
}

// line is a group of runs sharing a baseline. The y of the first run that
// opened the line is the reference all joiners are measured against.
type line struct {
	y    float64
	runs []model.TextRun
}

// Reconstruct orders runs into reading order and groups them into
// paragraphs. Adjacent runs with identical formatting are merged into one
// run, their texts joined by a single space. Non-positive thresholds in cfg
// fall back to the defaults.
func Reconstruct(runs []model.TextRun, cfg Config) []model.Paragraph {
	if len(runs) == 0 {
		return nil
	}
	def := DefaultConfig()
	if cfg.LineTolerance <= 0 {
		cfg.LineTolerance = def.LineTolerance
	}
	if cfg.ParagraphGap <= 0 {
		cfg.ParagraphGap = def.ParagraphGap
	}

	ordered := make([]model.TextRun, len(runs))
	copy(ordered, runs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y > ordered[j].Y
		}
		return ordered[i].X < ordered[j].X
	})

	lines := groupLines(ordered, cfg.LineTolerance)

	var paragraphs []model.Paragraph
	var current []line
	for i, ln := range lines {
		if i > 0 && lines[i-1].y-ln.y > cfg.ParagraphGap {
			paragraphs = append(paragraphs, buildParagraph(current))
			current = nil
		}
		current = append(current, ln)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, buildParagraph(current))
	}
	return paragraphs
}

func groupLines(ordered []model.TextRun, tolerance float64) []line {
	var lines []line
	for _, run := range ordered {
		n := len(lines)
		if n > 0 && abs(run.Y-lines[n-1].y) <= tolerance {
			lines[n-1].runs = append(lines[n-1].runs, run)
			continue
		}
		lines = append(lines, line{y: run.Y, runs: []model.TextRun{run}})
	}
	return lines
}

// buildParagraph flattens lines into runs, merging consecutive runs whose
// formatting matches before position is discarded.
func buildParagraph(lines []line) model.Paragraph {
	var merged []model.TextRun
	for _, ln := range lines {
		for _, run := range ln.runs {
			n := len(merged)
			if n > 0 && merged[n-1].SameFormat(run) {
				merged[n-1].Text += " " + run.Text
				continue
			}
			merged = append(merged, run)
		}
	}

	para := model.Paragraph{Runs: make([]model.Run, 0, len(merged))}
	for _, run := range merged {
		para.Runs = append(para.Runs, model.Run{
			Text:     run.Text,
			Font:     run.Font,
			FontSize: run.FontSize,
			Color:    run.Color,
			Bold:     run.Bold,
			Italic:   run.Italic,
		})
	}
	return para
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
