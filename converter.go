package transmute

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/transmute/contentstream"
	"github.com/tsawler/transmute/core"
	"github.com/tsawler/transmute/docx"
	"github.com/tsawler/transmute/internal/filters"
	"github.com/tsawler/transmute/layout"
	"github.com/tsawler/transmute/model"
	"github.com/tsawler/transmute/resolver"
)

// placeholderText fills the output document when nothing could be recovered
// from the input, so the conversion still yields a valid file.
const placeholderText = "No text could be extracted from PDF"

// Converter provides a fluent interface for converting a PDF to DOCX.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source (exactly one is set)
	filename string
	data     []byte

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Converter with a deep copy of options.
// This ensures immutability: each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		data:     c.data,
		options:  c.options.clone(),
		err:      c.err,
		warnings: append([]Warning(nil), c.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// LineTolerance sets the maximum vertical distance, in points, between runs
// that still share a line. The default is 2.
//
// Example:
//
//	docxBytes, _, err := transmute.Open("doc.pdf").LineTolerance(3).DOCX()
func (c *Converter) LineTolerance(points float64) *Converter {
	newConv := c.clone()
	newConv.options.layout.LineTolerance = points
	return newConv
}

// ParagraphGap sets the vertical gap, in points, beyond which consecutive
// lines start a new paragraph. The default is 20.
//
// Example:
//
//	docxBytes, _, err := transmute.Open("doc.pdf").ParagraphGap(30).DOCX()
func (c *Converter) ParagraphGap(points float64) *Converter {
	newConv := c.clone()
	newConv.options.layout.ParagraphGap = points
	return newConv
}

// Creator sets the creator name recorded in the output document properties.
// The default is "transmute".
//
// Example:
//
//	docxBytes, _, err := transmute.Open("doc.pdf").Creator("report-tool").DOCX()
func (c *Converter) Creator(name string) *Converter {
	newConv := c.clone()
	newConv.options.creator = name
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// DOCX runs the conversion and returns the document as DOCX archive bytes.
//
// Returns the archive, any warnings encountered during processing, and an
// error if conversion failed. Warnings indicate non-fatal issues (e.g. an
// unsupported compression filter) where conversion succeeded but the result
// may be degraded.
//
// Example:
//
//	docxBytes, warnings, err := transmute.Open("report.pdf").DOCX()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", transmute.FormatWarnings(warnings))
//	}
func (c *Converter) DOCX() ([]byte, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	doc, warnings, err := c.buildDocument()
	if err != nil {
		return nil, warnings, err
	}

	writer := docx.Writer{Creator: c.options.creator}
	out, err := writer.Write(doc)
	if err != nil {
		return nil, warnings, fmt.Errorf("writing DOCX: %w", err)
	}
	return out, warnings, nil
}

// ToFile runs the conversion and writes the DOCX archive to path.
//
// Example:
//
//	warnings, err := transmute.Open("report.pdf").ToFile("report.docx")
func (c *Converter) ToFile(path string) ([]Warning, error) {
	out, warnings, err := c.DOCX()
	if err != nil {
		return warnings, err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return warnings, fmt.Errorf("writing %s: %w", path, err)
	}
	return warnings, nil
}

// Text runs the extraction stages of the conversion and returns plain text,
// paragraphs separated by blank lines. No DOCX archive is produced.
//
// Example:
//
//	text, warnings, err := transmute.Open("report.pdf").Text()
func (c *Converter) Text() (string, []Warning, error) {
	if c.err != nil {
		return "", nil, c.err
	}

	data, err := c.source()
	if err != nil {
		return "", nil, err
	}

	result, err := c.extract(data)
	if err != nil {
		return "", result.warnings, err
	}

	if len(result.paragraphs) == 0 {
		result.warnings = append(result.warnings, Warning{
			Code:    WarnNoText,
			Message: "no text found in any content stream",
		})
		return "", result.warnings, nil
	}

	texts := make([]string, 0, len(result.paragraphs))
	for _, para := range result.paragraphs {
		if t := para.Text(); t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, "\n\n"), result.warnings, nil
}

// Info describes the structure of a parsed PDF without converting it.
type Info struct {
	// Version is the header version, e.g. "1.7".
	Version string

	// Object and stream counts from the full-document scan
	ObjectCount int
	StreamCount int

	// Compression is the per-filter census over all content streams.
	Compression CompressionInfo

	// Fonts lists the font objects declared in the document.
	Fonts []core.FontInfo
}

// CompressionInfo summarizes how the document's streams are encoded.
type CompressionInfo struct {
	TotalStreams        int
	CompressedStreams   int
	UncompressedStreams int

	// Methods counts compressed streams per filter name.
	Methods map[string]int

	EncodedBytes int64
	DecodedBytes int64
}

// Inspect parses the document and returns structural information: version,
// object and stream counts, the compression census, and declared fonts.
// This is a terminal operation; no DOCX output is produced.
//
// Example:
//
//	info, warnings, err := transmute.Open("report.pdf").Inspect()
//	fmt.Printf("PDF %s, %d objects\n", info.Version, info.ObjectCount)
func (c *Converter) Inspect() (*Info, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	data, err := c.source()
	if err != nil {
		return nil, nil, err
	}

	doc, err := core.Parse(data)
	if err != nil {
		return nil, nil, err
	}

	warnings := append([]Warning(nil), c.warnings...)
	if doc.XrefErr != nil {
		warnings = append(warnings, Warning{
			Code:    WarnXref,
			Message: doc.XrefErr.Error(),
		})
	}

	stats := filters.NewStats()
	for _, stream := range doc.Streams {
		decoded, decodeErr := filters.Decode(stream.Raw, stream.FilterName())
		if decodeErr != nil {
			decoded = stream.Raw
		}
		stats.Record(stream.FilterName(), len(stream.Raw), len(decoded))
	}

	return &Info{
		Version:     doc.Version,
		ObjectCount: doc.ObjectCount(),
		StreamCount: doc.StreamCount(),
		Compression: compressionInfo(stats),
		Fonts:       doc.Fonts(),
	}, warnings, nil
}

// ============================================================================
// Internal pipeline
// ============================================================================

// extractResult carries the output of the extraction stages.
type extractResult struct {
	paragraphs []model.Paragraph
	fonts      []string
	warnings   []Warning
}

// source returns the input bytes, reading the file on first use.
func (c *Converter) source() ([]byte, error) {
	if c.data != nil {
		return c.data, nil
	}
	if c.filename == "" {
		return nil, fmt.Errorf("no input specified")
	}
	data, err := os.ReadFile(c.filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.filename, err)
	}
	return data, nil
}

// buildDocument runs the full pipeline and always yields a writable
// document: formatted extraction, then the plain-text fallback, then the
// placeholder.
func (c *Converter) buildDocument() (*model.Document, []Warning, error) {
	data, err := c.source()
	if err != nil {
		return nil, nil, err
	}

	result, err := c.extract(data)
	if err != nil {
		return nil, result.warnings, err
	}

	if len(result.paragraphs) == 0 {
		result.warnings = append(result.warnings, Warning{
			Code:    WarnNoText,
			Message: "no text found; writing placeholder document",
		})
		result.paragraphs = []model.Paragraph{{
			Runs: []model.Run{{
				Text:     placeholderText,
				Font:     resolver.DefaultFont,
				FontSize: 11,
				Color:    resolver.DefaultColor,
			}},
		}}
		result.fonts = []string{resolver.DefaultFont}
	}

	return &model.Document{
		Paragraphs: result.paragraphs,
		Fonts:      result.fonts,
	}, result.warnings, nil
}

// extract parses the PDF and runs formatted extraction over every content
// stream, falling back to the plain string harvest when no positioned run
// survives. Only an invalid header is fatal.
func (c *Converter) extract(data []byte) (extractResult, error) {
	result := extractResult{warnings: append([]Warning(nil), c.warnings...)}

	doc, err := core.Parse(data)
	if err != nil {
		return result, err
	}
	if doc.XrefErr != nil {
		result.warnings = append(result.warnings, Warning{
			Code:    WarnXref,
			Message: doc.XrefErr.Error(),
		})
	}

	decoded := make([][]byte, 0, len(doc.Streams))
	for _, stream := range doc.Streams {
		payload, decodeErr := filters.Decode(stream.Raw, stream.FilterName())
		if decodeErr != nil {
			if filters.IsUnsupported(decodeErr) {
				result.warnings = append(result.warnings, Warning{
					Code:    WarnUnsupportedFilter,
					Message: fmt.Sprintf("object %d: %v", stream.Number, decodeErr),
				})
				// payload already holds the raw bytes
			} else {
				result.warnings = append(result.warnings, Warning{
					Code:    WarnDecompression,
					Message: fmt.Sprintf("object %d: %v", stream.Number, decodeErr),
				})
				payload = stream.Raw
			}
		}
		decoded = append(decoded, payload)
	}

	var runs []model.TextRun
	for _, payload := range decoded {
		state := contentstream.NewGraphicsState()
		runs = append(runs, contentstream.InterpretBytes(payload, &state)...)
	}

	if len(runs) > 0 {
		result.paragraphs = layout.Reconstruct(runs, c.options.layout)
		result.fonts = collectFonts(runs)
		return result, nil
	}

	// Formatted interpretation found nothing; harvest plain strings.
	var texts []string
	for _, payload := range decoded {
		texts = append(texts, contentstream.ExtractPlainText(payload)...)
	}
	if len(texts) > 0 {
		result.warnings = append(result.warnings, Warning{
			Code:    WarnPlainTextFallback,
			Message: "formatted extraction found no text; fonts and layout were discarded",
		})
		result.paragraphs = []model.Paragraph{{
			Runs: []model.Run{{
				Text:     strings.Join(texts, " "),
				Font:     resolver.DefaultFont,
				FontSize: 11,
				Color:    resolver.DefaultColor,
			}},
		}}
		result.fonts = []string{resolver.DefaultFont}
	}
	return result, nil
}

// collectFonts returns the unique resolved font names in first-use order.
func collectFonts(runs []model.TextRun) []string {
	seen := make(map[string]bool)
	var fonts []string
	for _, run := range runs {
		if run.Font == "" || seen[run.Font] {
			continue
		}
		seen[run.Font] = true
		fonts = append(fonts, run.Font)
	}
	return fonts
}

func compressionInfo(stats *filters.Stats) CompressionInfo {
	methods := make(map[string]int, len(stats.Methods))
	for name, count := range stats.Methods {
		methods[name] = count
	}
	return CompressionInfo{
		TotalStreams:        stats.TotalStreams,
		CompressedStreams:   stats.CompressedStreams,
		UncompressedStreams: stats.UncompressedStreams,
		Methods:             methods,
		EncodedBytes:        stats.EncodedBytes,
		DecodedBytes:        stats.DecodedBytes,
	}
}
