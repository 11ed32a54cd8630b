package subtitle

import (
	"strconv"
	"strings"
)

// EncodeSRT renders cues as a SubRip document: numbered blocks with
// comma-separated millisecond timestamps, every block terminated by a blank
// line.
func EncodeSRT(cues []Cue) []byte {
	var sb strings.Builder
	for _, cue := range cues {
		sb.WriteString(strconv.Itoa(cue.Sequence))
		sb.WriteByte('\n')
		sb.WriteString(formatTimestamp(cue.Start, ','))
		sb.WriteString(" --> ")
		sb.WriteString(formatTimestamp(cue.End, ','))
		sb.WriteByte('\n')
		writeCueBody(&sb, cue)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
