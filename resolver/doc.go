// Package resolver maps PDF font names and color observations onto values a
// word processor understands.
//
// [ResolveFont] turns a PDF base font name (e.g. "Helvetica-BoldOblique")
// into a Word-compatible family plus independent bold and italic flags.
// [HexRGB], [HexCMYK], and [HexGray] convert color operator operands to the
// 6-hex-digit uppercase strings used in run properties.
package resolver
