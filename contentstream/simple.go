package contentstream

// ExtractPlainText harvests every literal string payload from a decoded
// stream without tracking graphics state. It is the fallback when formatted
// interpretation yields nothing: positioning, font, and color are lost, but
// the words survive. Escaped parentheses inside a payload do not terminate
// it; unclosed payloads are dropped.
func ExtractPlainText(data []byte) []string {
	var out []string
	for i := 0; i < len(data); i++ {
		if data[i] != '(' {
			continue
		}
		end := -1
		for j := i + 1; j < len(data); j++ {
			if data[j] == '\\' {
				j++
				continue
			}
			if data[j] == ')' {
				end = j
				break
			}
		}
		if end < 0 {
			break
		}
		text := Unescape(DecodeText(data[i+1 : end]))
		if text != "" {
			out = append(out, text)
		}
		i = end
	}
	return out
}
