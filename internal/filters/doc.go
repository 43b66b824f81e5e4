// Package filters provides PDF stream decompression.
//
// Dispatch happens on the stream's declared /Filter name via [Decode].
//
// FlateDecode (zlib/deflate) is the one filter that is actually inflated:
//
//	decoded, err := filters.FlateDecode(data)
//
// The zlib-wrapped form is tried first, then headerless raw deflate.
// DCTDecode (embedded JPEG) passes through unchanged. LZWDecode,
// ASCII85Decode, and CCITTFaxDecode are recognized but unsupported; [Decode]
// returns the original bytes together with an [UnsupportedFilterError] so the
// caller can continue in degraded mode with a warning instead of aborting.
//
// [Stats] accumulates a per-conversion compression census for diagnostics.
package filters
