package subtitle

import "sort"

// Alignment is the result of merging a transcription stream with a
// translation stream.
type Alignment struct {
	Cues []Cue
	// DroppedTranscriptions and DroppedTranslations count segments excluded
	// for missing, negative, or non-finite start times.
	DroppedTranscriptions int
	DroppedTranslations   int
}

// Dropped returns the total number of excluded segments.
func (a Alignment) Dropped() int {
	return a.DroppedTranscriptions + a.DroppedTranslations
}

// Align builds one cue per usable translation segment, pairing each with the
// transcription segment whose start time is nearest. The result is sorted by
// start time ascending; ties keep the translation input order. Align is a
// pure function of its inputs and is safe to run concurrently across
// requests.
func Align(transcriptions []TranscriptionSegment, translations []TranslationSegment) Alignment {
	var result Alignment

	sorted := make([]TranscriptionSegment, 0, len(transcriptions))
	for _, seg := range transcriptions {
		if !validStart(seg.Start) {
			result.DroppedTranscriptions++
			continue
		}
		sorted = append(sorted, seg)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	cues := make([]Cue, 0, len(translations))
	for _, seg := range translations {
		if !validStart(seg.Start) {
			result.DroppedTranslations++
			continue
		}
		cue := Cue{
			Start:      int64(seg.Start),
			End:        cueEnd(seg.Start, seg.End),
			Translated: seg.Text,
			Language:   seg.Language,
		}
		if match, ok := nearestByStart(sorted, seg.Start); ok {
			cue.Original = match.Text
			cue.HasOriginal = true
		}
		cues = append(cues, cue)
	}

	// Stable sort preserves translation input order on equal start times.
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Start < cues[j].Start })
	for i := range cues {
		cues[i].Sequence = i + 1
	}

	result.Cues = cues
	return result
}

// nearestByStart finds the transcription segment with minimal start-time
// distance using a binary search over the pre-sorted slice. Equidistant
// candidates resolve to the smaller start time so the result is independent
// of input ordering.
func nearestByStart(sorted []TranscriptionSegment, start float64) (TranscriptionSegment, bool) {
	if len(sorted) == 0 {
		return TranscriptionSegment{}, false
	}
	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i].Start >= start })
	if idx == 0 {
		return sorted[0], true
	}
	if idx == len(sorted) {
		return sorted[len(sorted)-1], true
	}
	before := sorted[idx-1]
	after := sorted[idx]
	if after.Start-start < start-before.Start {
		return after, true
	}
	return before, true
}

// cueEnd clamps unusable end times to the start so encoders always see a
// well-formed range.
func cueEnd(start, end float64) int64 {
	if !validStart(end) || end < start {
		return int64(start)
	}
	return int64(end)
}
