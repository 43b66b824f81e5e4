package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestValidateHeader tests header and %%EOF validation
func TestValidateHeader(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"minimal valid", []byte("%PDF-1.4\n%%EOF"), false},
		{"valid with body", []byte("%PDF-1.7\n1 0 obj\n<< >>\nendobj\n%%EOF\n"), false},
		{"missing header", []byte("PDF-1.4\n%%EOF"), true},
		{"empty input", []byte{}, true},
		{"missing eof", []byte("%PDF-1.4\nno trailer here"), true},
		{"eof outside window", append(append([]byte("%PDF-1.4\n%%EOF"), bytes.Repeat([]byte("x"), 2000)...)), true},
		{"eof just inside window", append([]byte("%PDF-1.4\n%%EOF"), bytes.Repeat([]byte("x"), 1019)...), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeader(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestExtractVersion tests version extraction from the first header line
func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"version 1.4", "%PDF-1.4\nrest", "1.4"},
		{"version 1.7", "%PDF-1.7\r\nrest", "1.7"},
		{"version 2.0", "%PDF-2.0\n", "2.0"},
		{"no newline", "%PDF-1.3", "1.3"},
		{"not a pdf", "hello world", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVersion([]byte(tt.data))
			if got != tt.want {
				t.Errorf("ExtractVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestValidateHeaderLargeTail ensures the %%EOF search only covers the final window
func TestValidateHeaderLargeTail(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("%PDF-1.4\n")
	sb.WriteString(strings.Repeat("0123456789\n", 500))
	sb.WriteString("%%EOF\n")

	if err := ValidateHeader([]byte(sb.String())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
