package textutil

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello world", "hello world"},
		{"line one\nline two", "line one line two"},
		{"line one\r\nline two", "line one line two"},
		{"  extra   spaces  ", "extra spaces"},
		{"\n\n", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.input); got != tt.expected {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Physics 101", "physics_101"},
		{"room/with:unsafe*chars", "room_with_unsafe_chars"},
		{"already-safe_token", "already-safe_token"},
		{"", "unknown"},
		{"___", "unknown"},
	}

	for _, tt := range tests {
		if got := SanitizeToken(tt.input); got != tt.expected {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
