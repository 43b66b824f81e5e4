package filters

// Stats accumulates the compression census for one conversion: how many
// streams carried which filter and how byte counts changed across decoding.
// Exposed for diagnostics; nothing downstream depends on it.
type Stats struct {
	TotalStreams        int
	CompressedStreams   int
	UncompressedStreams int
	Methods             map[string]int
	EncodedBytes        int64
	DecodedBytes        int64
}

// NewStats returns an empty census.
func NewStats() *Stats {
	return &Stats{Methods: make(map[string]int)}
}

// Record accounts for one stream: its declared filter ("" for none) and its
// byte counts before and after decoding.
func (s *Stats) Record(filterName string, encoded, decoded int) {
	s.TotalStreams++
	s.EncodedBytes += int64(encoded)
	s.DecodedBytes += int64(decoded)

	if filterName == "" {
		s.UncompressedStreams++
		return
	}
	s.CompressedStreams++
	s.Methods[filterName]++
}
