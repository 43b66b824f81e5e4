package contentstream

import (
	"reflect"
	"testing"
)

// TestExtractPlainText tests stateless string harvesting from a stream.
func TestExtractPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"two strings",
			"BT (Hello) Tj (World) Tj ET",
			[]string{"Hello", "World"},
		},
		{
			"escaped paren inside",
			`(a\)b) Tj`,
			[]string{"a)b"},
		},
		{
			"empty string skipped",
			"() Tj (x) Tj",
			[]string{"x"},
		},
		{
			"unclosed dropped",
			"(done) Tj (never ends",
			[]string{"done"},
		},
		{
			"no strings",
			"q 1 0 0 1 0 0 cm Q",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPlainText([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
