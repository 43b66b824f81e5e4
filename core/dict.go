package core

import (
	"bytes"
	"strconv"
)

// FindDictionary returns the first << ... >> span in body, including the
// delimiters, honoring nesting. Returns nil when no complete dictionary is
// present.
func FindDictionary(body []byte) []byte {
	start := bytes.Index(body, []byte("<<"))
	if start < 0 {
		return nil
	}

	depth := 0
	for i := start; i+1 < len(body); i++ {
		switch {
		case body[i] == '<' && body[i+1] == '<':
			depth++
			i++
		case body[i] == '>' && body[i+1] == '>':
			depth--
			i++
			if depth == 0 {
				return body[start : i+1]
			}
		}
	}
	return nil
}

// ParseDictionary parses << /Key value /Key2 value2 >> content by whitespace
// tokenization. Tokens beginning with / become keys; name-shaped values have
// the slash stripped; numbers become Int or Real; N G R triples become Ref;
// bracketed runs become Array. Anything else is carried as Raw. This is
// deliberately shallow -- content streams and filters only ever need the flat
// key set of real-world stream dictionaries.
func ParseDictionary(raw []byte) Dict {
	content := bytes.TrimSpace(raw)
	content = bytes.TrimPrefix(content, []byte("<<"))
	content = bytes.TrimSuffix(content, []byte(">>"))

	tokens := tokenizeDict(content)
	dict := make(Dict)

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if len(tok) < 2 || tok[0] != '/' {
			i++
			continue
		}
		key := string(tok[1:])
		if i+1 >= len(tokens) {
			break
		}

		value, consumed := parseDictValue(tokens[i+1:])
		dict[key] = value
		i += 1 + consumed
	}

	return dict
}

// tokenizeDict splits dictionary content on whitespace, additionally breaking
// off [ and ] so arrays written without surrounding spaces still tokenize.
func tokenizeDict(content []byte) [][]byte {
	var tokens [][]byte
	for _, field := range bytes.Fields(content) {
		for len(field) > 0 {
			switch {
			case field[0] == '[':
				tokens = append(tokens, field[:1])
				field = field[1:]
			case field[len(field)-1] == ']':
				rest := field[:len(field)-1]
				if len(rest) > 0 {
					tokens = append(tokens, rest)
				}
				tokens = append(tokens, field[len(field)-1:])
				field = nil
			default:
				tokens = append(tokens, field)
				field = nil
			}
		}
	}
	return tokens
}

// parseDictValue interprets the value starting at tokens[0] and reports how
// many tokens it consumed.
func parseDictValue(tokens [][]byte) (Object, int) {
	tok := tokens[0]

	// N G R indirect reference
	if num, ok := parseInt(tok); ok && len(tokens) >= 3 && bytes.Equal(tokens[2], []byte("R")) {
		if gen, ok := parseInt(tokens[1]); ok {
			return Ref{Number: int(num), Generation: int(gen)}, 3
		}
	}

	// [ ... ] array of scalars
	if bytes.Equal(tok, []byte("[")) {
		var arr Array
		consumed := 1
		for consumed < len(tokens) {
			t := tokens[consumed]
			consumed++
			if bytes.Equal(t, []byte("]")) {
				return arr, consumed
			}
			arr = append(arr, parseScalar(t))
		}
		return arr, consumed
	}

	return parseScalar(tok), 1
}

// parseScalar classifies a single token as Name, Int, Real, or Raw.
func parseScalar(tok []byte) Object {
	if len(tok) > 1 && tok[0] == '/' {
		return Name(tok[1:])
	}
	if i, ok := parseInt(tok); ok {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(string(tok), 64); err == nil {
		return Real(f)
	}
	return Raw(tok)
}

func parseInt(tok []byte) (int64, bool) {
	i, err := strconv.ParseInt(string(tok), 10, 64)
	return i, err == nil
}
