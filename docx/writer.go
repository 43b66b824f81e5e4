package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/transmute/model"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/fontTable.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable" Target="fontTable.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/>
        <w:sz w:val="22"/>
      </w:rPr>
    </w:rPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:qFormat/>
  </w:style>
</w:styles>`

const appPropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
  <Application>transmute</Application>
  <DocSecurity>0</DocSecurity>
  <ScaleCrop>false</ScaleCrop>
  <Company></Company>
  <LinksUpToDate>false</LinksUpToDate>
  <SharedDoc>false</SharedDoc>
  <HyperlinksChanged>false</HyperlinksChanged>
  <AppVersion>1.0</AppVersion>
</Properties>`

// Writer assembles a complete .docx package in memory. The zero value is
// usable; Creator and Now exist so tests and callers can pin the metadata.
type Writer struct {
	// Creator names the authoring application in docProps/core.xml.
	// Empty means "transmute".
	Creator string

	// Now supplies the created/modified timestamps. Nil means time.Now.
	Now func() time.Time
}

// Write serializes doc into a ZIP archive holding the eight package parts
// and returns the archive bytes.
func (w *Writer) Write(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(doc)},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/fontTable.xml", fontTableXML(doc.Fonts)},
		{"docProps/core.xml", w.corePropsXML()},
		{"docProps/app.xml", appPropsXML},
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// documentXML renders the body: one w:p per paragraph, one w:r per run.
// A document with no paragraphs gets a single empty one so that word
// processors accept the file.
func documentXML(doc *model.Document) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n")
	b.WriteString("  <w:body>\n")

	wrote := false
	for _, para := range doc.Paragraphs {
		if strings.TrimSpace(para.Text()) == "" {
			continue
		}
		wrote = true
		b.WriteString("    <w:p>\n")
		b.WriteString("      <w:pPr>\n")
		b.WriteString("        <w:jc w:val=\"left\"/>\n")
		b.WriteString("      </w:pPr>\n")
		for _, run := range para.Runs {
			if run.Text == "" {
				continue
			}
			writeRun(&b, run)
		}
		b.WriteString("    </w:p>\n")
	}
	if !wrote {
		b.WriteString("    <w:p/>\n")
	}

	b.WriteString("  </w:body>\n")
	b.WriteString("</w:document>")
	return b.String()
}

func writeRun(b *strings.Builder, run model.Run) {
	b.WriteString("      <w:r>\n")
	b.WriteString("        <w:rPr>\n")
	if run.Font != "" {
		font := escape(run.Font)
		fmt.Fprintf(b, "          <w:rFonts w:ascii=\"%s\" w:hAnsi=\"%s\"/>\n", font, font)
	}
	if run.FontSize > 0 {
		half := int(math.Round(run.FontSize * 2))
		fmt.Fprintf(b, "          <w:sz w:val=\"%d\"/>\n", half)
		fmt.Fprintf(b, "          <w:szCs w:val=\"%d\"/>\n", half)
	}
	if run.Color != "" {
		fmt.Fprintf(b, "          <w:color w:val=\"%s\"/>\n", escape(run.Color))
	}
	if run.Bold {
		b.WriteString("          <w:b/>\n")
	}
	if run.Italic {
		b.WriteString("          <w:i/>\n")
	}
	b.WriteString("        </w:rPr>\n")
	fmt.Fprintf(b, "        <w:t xml:space=\"preserve\">%s</w:t>\n", escape(run.Text))
	b.WriteString("      </w:r>\n")
}

// fontTableXML lists the unique fonts in sorted order. An empty list still
// declares Calibri, the document default.
func fontTableXML(fonts []string) string {
	unique := map[string]bool{}
	for _, f := range fonts {
		if f != "" {
			unique[f] = true
		}
	}
	if len(unique) == 0 {
		unique["Calibri"] = true
	}
	names := make([]string, 0, len(unique))
	for name := range unique {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:fonts xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  <w:font w:name=\"%s\">\n", escape(name))
		b.WriteString("    <w:panose1 w:val=\"00000000000000000000\"/>\n")
		b.WriteString("    <w:charset w:val=\"00\"/>\n")
		b.WriteString("    <w:family w:val=\"auto\"/>\n")
		b.WriteString("    <w:pitch w:val=\"variable\"/>\n")
		b.WriteString("  </w:font>\n")
	}
	b.WriteString("</w:fonts>")
	return b.String()
}

func (w *Writer) corePropsXML() string {
	creator := w.Creator
	if creator == "" {
		creator = "transmute"
	}
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	stamp := now().UTC().Format("2006-01-02T15:04:05Z")
	creator = escape(creator)
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` + "\n" +
		"  <dc:creator>" + creator + "</dc:creator>\n" +
		"  <cp:lastModifiedBy>" + creator + "</cp:lastModifiedBy>\n" +
		`  <dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + "</dcterms:created>\n" +
		`  <dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + "</dcterms:modified>\n" +
		"</cp:coreProperties>"
}

// escape runs text through the encoding/xml escaper.
func escape(s string) string {
	var b bytes.Buffer
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
