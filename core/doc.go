// Package core provides low-level PDF structural parsing.
//
// This package turns a raw PDF byte sequence into an object table and a set
// of content stream descriptors. It implements the subset of PDF syntax that
// text conversion needs: header and %%EOF validation, the classic
// cross-reference table, a tolerant full-document object scan, flat
// dictionary parsing, and stream body extraction.
//
// # Object Values
//
// Dictionary values are modeled as a closed set of types satisfying the
// Object interface:
//
//   - [Name] - a PDF name with the slash stripped (e.g. "Filter")
//   - [Int], [Real] - numbers
//   - [String] - a literal string, bytes kept verbatim
//   - [Array] - an array of scalars
//   - [Ref] - an indirect reference (N G R)
//   - [Raw] - any token no other variant claims
//
// # Object Discovery
//
// Discovery uses two strategies with defined precedence. [ParseXref] parses
// the startxref pointer and the table at its offset; any defect there is a
// recoverable [StructuralError]. [ScanObjects] regex-scans the whole file for
// `N G obj ... endobj` spans and is the authoritative source of object
// content, tolerant of most real-world corruption. [Parse] runs both and
// assembles a [Document].
package core
