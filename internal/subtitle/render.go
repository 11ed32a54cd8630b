package subtitle

import (
	"strings"

	"lectern/internal/textutil"
)

// writeCueBody emits the text lines of one cue: the original-language line
// when a transcription was matched, then the translated line. Embedded line
// breaks are collapsed so block parsers never see a premature terminator,
// and a missing original never produces an empty first line.
//
// Both the SRT and VTT encoders call this routine; cue content cannot
// diverge between the two formats.
func writeCueBody(sb *strings.Builder, cue Cue) {
	if cue.HasOriginal {
		if line := textutil.CollapseWhitespace(cue.Original); line != "" {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(textutil.CollapseWhitespace(cue.Translated))
	sb.WriteByte('\n')
}
