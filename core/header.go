package core

import (
	"bytes"
	"fmt"
)

// eofWindow is how far from the end of the file the %%EOF marker may sit.
const eofWindow = 1024

// ValidateHeader checks that data looks like a PDF: it must begin with the
// %PDF- magic and carry a %%EOF marker within the final 1024 bytes. Any other
// shape fails with ErrInvalidFormat.
func ValidateHeader(data []byte) error {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return fmt.Errorf("%w: missing %%PDF- header", ErrInvalidFormat)
	}

	tail := data
	if len(tail) > eofWindow {
		tail = tail[len(tail)-eofWindow:]
	}
	if !bytes.Contains(tail, []byte("%%EOF")) {
		return fmt.Errorf("%w: missing %%%%EOF marker in final %d bytes", ErrInvalidFormat, eofWindow)
	}

	return nil
}

// ExtractVersion returns the version string from the first header line,
// e.g. "1.7" for a file beginning with %PDF-1.7. The caller is expected to
// have validated the header first; an unreadable version yields "".
func ExtractVersion(data []byte) string {
	line := data
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		line = data[:i]
	}
	if !bytes.HasPrefix(line, []byte("%PDF-")) {
		return ""
	}
	return string(bytes.TrimSpace(line[len("%PDF-"):]))
}
