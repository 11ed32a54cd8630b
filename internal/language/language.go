package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language describes one supported caption language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// The set offered by the classroom capture agent.
var supported = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "ar", Name: "Arabic", Flag: "🇸🇦"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "pt", Name: "Portuguese", Flag: "🇵🇹"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷"},
}

// Codes the capture agent historically emitted for languages it already
// covers under a different tag.
var aliases = map[string]string{
	"cmn": "zh",
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(supported))
	for _, lang := range supported {
		m[lang.Code] = lang
	}
	return m
}()

// Supported returns the ordered list of supported caption languages.
func Supported() []Language {
	cp := make([]Language, len(supported))
	copy(cp, supported)
	return cp
}

// IsSupported reports whether a code (after normalization) is in the
// supported set.
func IsSupported(code string) bool {
	_, ok := byCode[Normalize(code)]
	return ok
}

// Normalize lowercases and trims a language code and resolves known aliases.
// Unrecognized codes pass through so stored translations in unlisted
// languages remain addressable.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if mapped, ok := aliases[code]; ok {
		return mapped
	}
	return code
}

// DisplayName returns a human-readable name for any language code. Supported
// languages use the registry name; anything else falls back to CLDR data,
// then to the uppercased code.
func DisplayName(code string) string {
	normalized := Normalize(code)
	if normalized == "" {
		return "Unknown"
	}
	if lang, ok := byCode[normalized]; ok {
		return lang.Name
	}
	if tag, err := language.Parse(normalized); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return strings.ToUpper(normalized)
}
