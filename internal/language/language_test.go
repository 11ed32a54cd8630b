package language

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ES", "es"},
		{"  fr ", "fr"},
		{"cmn", "zh"},
		{"nl", "nl"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("es") {
		t.Error("es should be supported")
	}
	if !IsSupported("CMN") {
		t.Error("cmn should normalize to zh and be supported")
	}
	if IsSupported("tlh") {
		t.Error("tlh should not be supported")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"es", "Spanish"},
		{"cmn", "Chinese"},
		{"nl", "Dutch"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	langs := Supported()
	if len(langs) == 0 {
		t.Fatal("expected supported languages")
	}
	langs[0].Code = "mutated"
	if Supported()[0].Code == "mutated" {
		t.Error("Supported should return a defensive copy")
	}
}
