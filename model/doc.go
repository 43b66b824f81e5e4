// Package model provides the intermediate representation for converted
// document content.
//
// The interpreter emits [TextRun] values: positioned snapshots of text plus
// the graphics state active when it was shown. Layout reconstruction turns
// those into [Paragraph] values holding merged [Run] spans, and the whole
// result is carried by [Document], the input to package serialization.
package model
