package model

import "strings"

// TextRun is one positioned text observation from a content stream: the
// decoded text and a snapshot of the graphics state at emission time.
// Immutable once created.
type TextRun struct {
	Text     string
	Font     string // Word-compatible font name
	FontSize float64
	Color    string // 6-hex-digit uppercase, e.g. "FF0000"
	Bold     bool
	Italic   bool
	X        float64
	Y        float64
}

// SameFormat reports whether two runs share font, size, color, and style
// flags, the criterion for merging them into one logical run.
func (r TextRun) SameFormat(other TextRun) bool {
	return r.Font == other.Font &&
		r.FontSize == other.FontSize &&
		r.Color == other.Color &&
		r.Bold == other.Bold &&
		r.Italic == other.Italic
}

// Run is a formatting-merged span of text inside a paragraph. Position has
// been consumed by layout reconstruction and no longer applies.
type Run struct {
	Text     string
	Font     string
	FontSize float64
	Color    string
	Bold     bool
	Italic   bool
}

// Paragraph is an ordered sequence of merged runs.
type Paragraph struct {
	Runs []Run
}

// Text returns the paragraph's text with runs joined by single spaces.
func (p Paragraph) Text() string {
	parts := make([]string, len(p.Runs))
	for i, r := range p.Runs {
		parts[i] = r.Text
	}
	return strings.Join(parts, " ")
}

// Document is the final document model: paragraph-level content items plus
// the distinct font names used, in first-use order.
type Document struct {
	Paragraphs []Paragraph
	Fonts      []string
}

// Empty reports whether the document carries no runs at all.
func (d Document) Empty() bool {
	for _, p := range d.Paragraphs {
		if len(p.Runs) > 0 {
			return false
		}
	}
	return true
}
