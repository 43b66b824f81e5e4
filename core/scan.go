package core

import (
	"bytes"
	"regexp"
	"strconv"
)

// objPattern matches indirect object definitions anywhere in the byte stream.
// The scan is tolerant of most structural corruption, which is why it is the
// authoritative source of object content.
var objPattern = regexp.MustCompile(`(?s)(\d+)\s+(\d+)\s+obj(.*?)endobj`)

// RawObject is one indirect object found by the full-document scan: its
// identity and the raw byte span between the obj and endobj keywords.
type RawObject struct {
	Number     int
	Generation int
	Body       []byte
}

// ContentStream describes a stream-carrying object: the owning object, its
// parsed dictionary, and the raw (still encoded) stream bytes.
type ContentStream struct {
	Number     int
	Generation int
	Dict       Dict
	Raw        []byte
}

// FilterName returns the declared /Filter name, or "" when the stream is
// unfiltered. A filter array degrades to its first entry.
func (cs *ContentStream) FilterName() string {
	obj := cs.Dict.Get("Filter")
	switch v := obj.(type) {
	case Name:
		return string(v)
	case Array:
		if len(v) > 0 {
			if n, ok := v[0].(Name); ok {
				return string(n)
			}
		}
	}
	return ""
}

// ScanObjects finds every `N G obj ... endobj` span in data. Objects appear
// in file order; a repeated (number, generation) pair keeps its first
// position but takes the later body.
func ScanObjects(data []byte) []RawObject {
	matches := objPattern.FindAllSubmatch(data, -1)
	if len(matches) == 0 {
		return nil
	}

	type objKey struct{ num, gen int }
	index := make(map[objKey]int, len(matches))
	objects := make([]RawObject, 0, len(matches))

	for _, m := range matches {
		num, err := strconv.Atoi(string(m[1]))
		if err != nil {
			continue
		}
		gen, err := strconv.Atoi(string(m[2]))
		if err != nil {
			continue
		}

		key := objKey{num, gen}
		if at, ok := index[key]; ok {
			objects[at].Body = m[3]
			continue
		}
		index[key] = len(objects)
		objects = append(objects, RawObject{Number: num, Generation: gen, Body: m[3]})
	}

	return objects
}

// ExtractStream pulls the stream body out of an object body. The body begins
// immediately after the stream keyword and any run of CR, LF, or space, and
// ends at the endstream keyword. Returns false when the object carries no
// complete stream pair.
func ExtractStream(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("stream"))
	if start < 0 {
		return nil, false
	}
	start += len("stream")
	for start < len(body) && (body[start] == '\r' || body[start] == '\n' || body[start] == ' ') {
		start++
	}

	end := bytes.Index(body[start:], []byte("endstream"))
	if end < 0 {
		return nil, false
	}
	return body[start : start+end], true
}

// FindContentStreams registers a ContentStream for every scanned object whose
// body carries both stream and endstream keywords. The dictionary preceding
// the stream keyword is parsed for filter dispatch.
func FindContentStreams(objects []RawObject) []*ContentStream {
	var streams []*ContentStream
	for _, obj := range objects {
		raw, ok := ExtractStream(obj.Body)
		if !ok {
			continue
		}

		var dict Dict
		if span := FindDictionary(obj.Body); span != nil {
			dict = ParseDictionary(span)
		} else {
			dict = make(Dict)
		}

		streams = append(streams, &ContentStream{
			Number:     obj.Number,
			Generation: obj.Generation,
			Dict:       dict,
			Raw:        raw,
		})
	}
	return streams
}
