// Package contentstream interprets decoded PDF content streams.
//
// [Parser] tokenizes a stream into [Operation] values: operands followed by
// an operator. Parsing is deliberately tolerant -- content streams from
// real-world files carry operators this pipeline does not model, and a
// malformed token must cost one observation, never the whole stream.
//
// [Interpret] walks the operations with an explicit [GraphicsState] threaded
// through the call, mutating font, color, and text position as operators are
// consumed and emitting a positioned text run for every Tj. Text payload
// bytes are decoded by [DecodeText] (UTF-16 by byte-order mark, then 8-bit
// encodings) and escape sequences resolved afterwards by [Unescape].
//
// [ExtractPlainText] is the unformatted fallback: it harvests every literal
// string payload in a stream without maintaining any state.
package contentstream
