package core

import (
	"bytes"
	"strconv"
)

// XrefEntry records the byte offset and generation of one in-use object as
// declared by the cross-reference table. Offsets are auxiliary metadata only;
// object content always comes from the full-document scan.
type XrefEntry struct {
	Offset     int64
	Generation int
}

// ParseXref locates the startxref pointer and parses the classic
// cross-reference table at its offset: 20-byte entries of the form
// "nnnnnnnnnn ggggg n", keyed by a running object index that subsection
// headers reset. Only in-use (n) entries are recorded. Every failure mode
// returns a *StructuralError so callers can fall back to the scan.
func ParseXref(data []byte) (map[int]XrefEntry, error) {
	pos := bytes.LastIndex(data, []byte("startxref"))
	if pos < 0 {
		return nil, &StructuralError{Detail: "no startxref marker"}
	}

	offset, err := readStartxrefOffset(data[pos+len("startxref"):])
	if err != nil {
		return nil, &StructuralError{Detail: "unreadable startxref offset", Err: err}
	}
	if offset < 0 || offset >= int64(len(data)) {
		return nil, &StructuralError{Detail: "startxref offset out of range"}
	}

	table := data[offset:]
	if !bytes.HasPrefix(bytes.TrimLeft(table, " \r\n"), []byte("xref")) {
		return nil, &StructuralError{Detail: "no xref table at startxref offset"}
	}

	entries := make(map[int]XrefEntry)
	index := 0

	for _, line := range bytes.Split(table, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if bytes.Equal(trimmed, []byte("trailer")) {
			break
		}
		if bytes.Equal(trimmed, []byte("xref")) || len(trimmed) == 0 {
			continue
		}

		// Subsection header: "start count"
		if start, ok := parseSubsectionHeader(trimmed); ok {
			index = start
			continue
		}

		// Entries are fixed-width 20-byte records (19 + line terminator).
		entry := trimmed
		if len(line) >= 20 {
			entry = bytes.TrimRight(line[:20], " \r\n")
		}
		if len(entry) < 18 {
			continue
		}

		off, err1 := strconv.ParseInt(string(bytes.TrimSpace(entry[0:10])), 10, 64)
		gen, err2 := strconv.Atoi(string(bytes.TrimSpace(entry[11:16])))
		if err1 != nil || err2 != nil {
			continue
		}
		if entry[17] == 'n' {
			entries[index] = XrefEntry{Offset: off, Generation: gen}
		}
		index++
	}

	if len(entries) == 0 {
		return nil, &StructuralError{Detail: "xref table holds no in-use entries"}
	}
	return entries, nil
}

// readStartxrefOffset reads the decimal offset on the line after startxref.
func readStartxrefOffset(rest []byte) (int64, error) {
	lines := bytes.SplitN(rest, []byte("\n"), 3)
	if len(lines) < 2 {
		return 0, &StructuralError{Detail: "startxref not followed by an offset line"}
	}
	return strconv.ParseInt(string(bytes.TrimSpace(lines[1])), 10, 64)
}

// parseSubsectionHeader recognizes "start count" lines between entry blocks.
func parseSubsectionHeader(line []byte) (int, bool) {
	fields := bytes.Fields(line)
	if len(fields) != 2 {
		return 0, false
	}
	start, err1 := strconv.Atoi(string(fields[0]))
	_, err2 := strconv.Atoi(string(fields[1]))
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return start, true
}
