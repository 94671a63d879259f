package report

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello..."},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.in, tt.n); got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestPreviewMultibyte(t *testing.T) {
	// Truncation must not split runes
	got := Preview("héllo wörld", 5)
	if got != "héllo..." {
		t.Errorf("Preview = %q, want \"héllo...\"", got)
	}
}

func TestJSON(t *testing.T) {
	got := JSON(map[string]int{"answer": 42})
	if !strings.Contains(got, "\"answer\": 42") {
		t.Errorf("JSON output missing indented field: %q", got)
	}
}

func TestJSONUnmarshallable(t *testing.T) {
	// Channels cannot be marshalled; fall back to %v
	got := JSON(make(chan int))
	if got == "" {
		t.Error("expected non-empty fallback rendering")
	}
}
