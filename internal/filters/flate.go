package filters

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateError wraps a failure of both inflate attempts. Callers treat it as
// non-fatal and keep the original bytes.
type FlateError struct {
	Zlib error
	Raw  error
}

func (e *FlateError) Error() string {
	return fmt.Sprintf("flate decode failed: zlib: %v; raw deflate: %v", e.Zlib, e.Raw)
}

// FlateDecode decompresses FlateDecode data. The standard zlib-wrapped form
// is tried first; streams written without the zlib header are retried as raw
// deflate. When both fail the error is a *FlateError.
func FlateDecode(data []byte) ([]byte, error) {
	out, zlibErr := zlibDecompress(data)
	if zlibErr == nil {
		return out, nil
	}

	out, rawErr := rawDeflateDecompress(data)
	if rawErr == nil {
		return out, nil
	}

	return nil, &FlateError{Zlib: zlibErr, Raw: rawErr}
}

// zlibDecompress decompresses zlib-wrapped deflate data.
func zlibDecompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return buf.Bytes(), nil
}

// rawDeflateDecompress decompresses headerless deflate data.
func rawDeflateDecompress(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return buf.Bytes(), nil
}
