package subtitle

import (
	"strings"

	"lectern/internal/textutil"
)

// noOriginalPlaceholder stands in for cues with no matched transcription in
// the plain-text rendering.
const noOriginalPlaceholder = "(no original)"

// EncodeTranscript renders cues as a human-readable, diff-friendly
// transcript. The output carries no playback contract; it only needs to be
// deterministic for identical input.
func EncodeTranscript(cues []Cue) []byte {
	var sb strings.Builder
	for _, cue := range cues {
		sb.WriteByte('[')
		sb.WriteString(formatTimestamp(cue.Start, '.'))
		sb.WriteString("–")
		sb.WriteString(formatTimestamp(cue.End, '.'))
		sb.WriteString("] ")
		original := noOriginalPlaceholder
		if cue.HasOriginal {
			if line := textutil.CollapseWhitespace(cue.Original); line != "" {
				original = line
			}
		}
		sb.WriteString(original)
		sb.WriteString("\n  → ")
		sb.WriteString(textutil.CollapseWhitespace(cue.Translated))
		sb.WriteString("\n\n")
	}
	return []byte(sb.String())
}
