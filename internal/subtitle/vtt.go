package subtitle

import "strings"

// EncodeVTT renders cues as a WebVTT document: the mandatory WEBVTT header,
// then timestamp lines with period-separated milliseconds. Cue identifiers
// are omitted; they are optional in WebVTT and leaving them out keeps the
// output fully determined by the cue sequence.
func EncodeVTT(cues []Cue) []byte {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n")
	for _, cue := range cues {
		sb.WriteByte('\n')
		sb.WriteString(formatTimestamp(cue.Start, '.'))
		sb.WriteString(" --> ")
		sb.WriteString(formatTimestamp(cue.End, '.'))
		sb.WriteByte('\n')
		writeCueBody(&sb, cue)
	}
	return []byte(sb.String())
}
