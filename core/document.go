package core

// Document is the structural parse result for one PDF: the header version,
// every object the full-document scan found, the content streams among them,
// and whatever the cross-reference table yielded.
type Document struct {
	// Version is the header version string, e.g. "1.7".
	Version string

	// Objects holds every scanned indirect object in file order.
	Objects []RawObject

	// Streams are the objects carrying stream...endstream bodies.
	Streams []*ContentStream

	// Xref maps object index to declared offset. Nil when the table was
	// absent or structurally invalid; see XrefErr.
	Xref map[int]XrefEntry

	// XrefErr records why Xref is nil. Always a *StructuralError, never
	// fatal: object content comes from the scan regardless.
	XrefErr error
}

// Parse runs the complete structural pass over data. Only a failed header or
// %%EOF check is fatal; a broken cross-reference table is recorded on the
// document and the object scan proceeds as the authoritative source.
func Parse(data []byte) (*Document, error) {
	if err := ValidateHeader(data); err != nil {
		return nil, err
	}

	doc := &Document{Version: ExtractVersion(data)}
	doc.Xref, doc.XrefErr = ParseXref(data)
	doc.Objects = ScanObjects(data)
	doc.Streams = FindContentStreams(doc.Objects)
	return doc, nil
}

// ObjectCount returns the number of scanned objects.
func (d *Document) ObjectCount() int { return len(d.Objects) }

// StreamCount returns the number of registered content streams.
func (d *Document) StreamCount() int { return len(d.Streams) }

// FontInfo summarizes one /Type /Font object for diagnostics.
type FontInfo struct {
	Number   int
	BaseFont string
	Subtype  string
	Encoding string
}

// Fonts returns a summary of every font object in the document, in file
// order.
func (d *Document) Fonts() []FontInfo {
	var fonts []FontInfo
	for _, obj := range d.Objects {
		span := FindDictionary(obj.Body)
		if span == nil {
			continue
		}
		dict := ParseDictionary(span)
		if typ, ok := dict.GetName("Type"); !ok || typ != "Font" {
			continue
		}

		info := FontInfo{Number: obj.Number}
		if n, ok := dict.GetName("BaseFont"); ok {
			info.BaseFont = string(n)
		}
		if n, ok := dict.GetName("Subtype"); ok {
			info.Subtype = string(n)
		}
		if n, ok := dict.GetName("Encoding"); ok {
			info.Encoding = string(n)
		}
		fonts = append(fonts, info)
	}
	return fonts
}
