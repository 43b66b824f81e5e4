package transmute

import "strings"

// WarningCode identifies a class of non-fatal conversion problem.
type WarningCode string

const (
	// WarnXref means the cross-reference table was missing or unreadable.
	// Object content still comes from the full-document scan.
	WarnXref WarningCode = "xref-unreadable"

	// WarnUnsupportedFilter means a stream declared a compression filter
	// this package does not decode. The raw bytes were used instead.
	WarnUnsupportedFilter WarningCode = "unsupported-filter"

	// WarnDecompression means a FlateDecode stream failed both zlib and
	// raw-deflate decompression.
	WarnDecompression WarningCode = "decompression-failed"

	// WarnPlainTextFallback means formatted extraction found nothing and
	// the plain string harvest was used, losing fonts and positions.
	WarnPlainTextFallback WarningCode = "plain-text-fallback"

	// WarnNoText means no text could be recovered at all.
	WarnNoText WarningCode = "no-text"
)

// Warning is a non-fatal problem encountered during conversion. Conversion
// succeeded, but the result may be degraded in the way Message describes.
type Warning struct {
	Code    WarningCode
	Message string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return string(w.Code) + ": " + w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated string
// suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
