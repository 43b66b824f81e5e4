package filters

import (
	"errors"
	"fmt"
)

// UnsupportedFilterError reports a filter that is recognized but not
// implemented. The caller decides per stream whether to degrade; the encoded
// bytes stay available.
type UnsupportedFilterError struct {
	Name string
}

func (e *UnsupportedFilterError) Error() string {
	return fmt.Sprintf("unsupported filter: %s", e.Name)
}

// IsUnsupported reports whether err is an UnsupportedFilterError.
func IsUnsupported(err error) bool {
	var ufe *UnsupportedFilterError
	return errors.As(err, &ufe)
}

// Decode applies a single named decompression filter. An empty name means no
// filter and passes the data through. DCTDecode is embedded JPEG and also
// passes through: the bytes are image data, not inflated. LZWDecode,
// ASCII85Decode, CCITTFaxDecode and anything unrecognized return an
// *UnsupportedFilterError alongside the original bytes so the pipeline can
// continue in degraded mode.
func Decode(data []byte, filterName string) ([]byte, error) {
	switch filterName {
	case "":
		return data, nil

	case "FlateDecode", "Fl":
		return FlateDecode(data)

	case "DCTDecode", "DCT":
		return data, nil

	default:
		return data, &UnsupportedFilterError{Name: filterName}
	}
}
