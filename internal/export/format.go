package export

import (
	"fmt"
	"strings"
)

// Format identifies a caption output format.
type Format string

const (
	FormatSRT        Format = "srt"
	FormatVTT        Format = "vtt"
	FormatTranscript Format = "txt"
)

// Formats lists every supported format in preference order.
func Formats() []Format {
	return []Format{FormatSRT, FormatVTT, FormatTranscript}
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "srt":
		return FormatSRT, nil
	case "vtt", "webvtt":
		return FormatVTT, nil
	case "txt", "text", "transcript":
		return FormatTranscript, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
}

// Extension returns the file extension without a leading dot.
func (f Format) Extension() string {
	return string(f)
}

// MIMEType returns the content type served for the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatSRT:
		return "application/x-subrip"
	case FormatVTT:
		return "text/vtt"
	default:
		return "text/plain"
	}
}
