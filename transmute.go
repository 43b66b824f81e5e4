// Package transmute converts PDF files to DOCX, parsing the PDF and
// assembling the OOXML package from scratch.
//
// Basic usage:
//
//	docxBytes, warnings, err := transmute.Open("report.pdf").DOCX()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", transmute.FormatWarnings(warnings))
//	}
//
// With options:
//
//	warnings, err := transmute.Open("report.pdf").
//	    ParagraphGap(30).
//	    Creator("report-tool").
//	    ToFile("report.docx")
//
// The converter recovers what it can from damaged files: a broken
// cross-reference table, an unsupported compression filter, or a stream with
// no recognizable text degrade the output and surface as warnings rather
// than failing the conversion. Only a file without a valid PDF header and
// trailer is rejected outright.
//
// For advanced use cases, the lower-level core, contentstream, layout, and
// docx packages are also available.
package transmute

// Open prepares a conversion of the named PDF file. The file is read when a
// terminal operation such as [Converter.DOCX] or [Converter.Text] runs.
//
// Example:
//
//	docxBytes, warnings, err := transmute.Open("report.pdf").DOCX()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes prepares a conversion of an in-memory PDF.
//
// Example:
//
//	docxBytes, warnings, err := transmute.FromBytes(data).DOCX()
func FromBytes(data []byte) *Converter {
	return &Converter{
		data:    data,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	docxBytes := transmute.MustConvert(transmute.Open("report.pdf").DOCX())
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
