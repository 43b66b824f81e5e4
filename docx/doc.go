// Package docx assembles WordprocessingML packages from scratch.
//
// A .docx file is a ZIP archive of XML parts. [Writer] emits the eight
// parts a minimal valid document needs: the content types manifest, the
// package and document relationship files, the document body, a styles
// part, a font table, and the core and extended property parts. No
// document library is involved; the XML is built directly and text is
// escaped with encoding/xml.
//
// The body is produced from a [model.Document]: one w:p per paragraph,
// one w:r per run, with fonts, half-point sizes, colors, and bold/italic
// flags carried into the run properties.
package docx
