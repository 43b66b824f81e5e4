package resolver

import "strings"

// DefaultFont is the family used when no mapping applies.
const DefaultFont = "Calibri"

// standardFonts maps the 14 standard PDF font names to Word families.
var standardFonts = map[string]string{
	"Times-Roman":           "Times New Roman",
	"Times-Bold":            "Times New Roman",
	"Times-Italic":          "Times New Roman",
	"Times-BoldItalic":      "Times New Roman",
	"Helvetica":             "Arial",
	"Helvetica-Bold":        "Arial",
	"Helvetica-Oblique":     "Arial",
	"Helvetica-BoldOblique": "Arial",
	"Courier":               "Courier New",
	"Courier-Bold":          "Courier New",
	"Courier-Oblique":       "Courier New",
	"Courier-BoldOblique":   "Courier New",
	"Symbol":                "Symbol",
	"ZapfDingbats":          "Wingdings",
}

var boldKeywords = []string{"BOLD", "-B", ",B", "-BD", "HEAVY", "BLACK"}
var italicKeywords = []string{"ITALIC", "OBLIQUE", "-I", ",I", "-IT", "SLANT"}

// Font is a resolved font: a Word-compatible family name and independent
// style flags detected from the PDF name.
type Font struct {
	Name   string
	Bold   bool
	Italic bool
}

// MapFont maps a PDF font name to a Word family. Resolution order: exact
// match against the standard 14; prefix match on the family portion before
// the hyphen; keyword containment for the Times/Helvetica/Courier families;
// otherwise DefaultFont. A leading slash is stripped first.
func MapFont(pdfName string) string {
	clean := strings.TrimPrefix(pdfName, "/")

	if mapped, ok := standardFonts[clean]; ok {
		return mapped
	}

	for stdName, mapped := range standardFonts {
		family := stdName
		if i := strings.Index(stdName, "-"); i >= 0 {
			family = stdName[:i]
		}
		if strings.HasPrefix(clean, family) {
			return mapped
		}
	}

	base := clean
	if i := strings.IndexAny(base, "-,"); i >= 0 {
		base = base[:i]
	}
	switch {
	case strings.Contains(base, "Times"):
		return "Times New Roman"
	case strings.Contains(base, "Helvetica"), strings.Contains(base, "Arial"):
		return "Arial"
	case strings.Contains(base, "Courier"):
		return "Courier New"
	}

	return DefaultFont
}

// DetectStyle scans a font name case-insensitively for bold and italic
// keywords. The flags are independent; a BoldOblique name sets both.
func DetectStyle(fontName string) (bold, italic bool) {
	upper := strings.ToUpper(fontName)
	for _, kw := range boldKeywords {
		if strings.Contains(upper, kw) {
			bold = true
			break
		}
	}
	for _, kw := range italicKeywords {
		if strings.Contains(upper, kw) {
			italic = true
			break
		}
	}
	return bold, italic
}

// ResolveFont maps the family and detects style in one step. Style keywords
// are read from the original PDF name, before mapping discards them.
func ResolveFont(pdfName string) Font {
	bold, italic := DetectStyle(strings.TrimPrefix(pdfName, "/"))
	return Font{
		Name:   MapFont(pdfName),
		Bold:   bold,
		Italic: italic,
	}
}
