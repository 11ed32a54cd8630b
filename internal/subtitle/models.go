package subtitle

import "math"

// TranscriptionSegment is one original-language utterance captured during a
// recording. Timings are in milliseconds; a missing start time is
// represented as NaN so it can be detected and dropped during alignment.
type TranscriptionSegment struct {
	ID      string
	Start   float64
	End     float64
	Text    string
	Speaker string
}

// TranslationSegment is one translated utterance, timestamped independently
// of the transcription stream.
type TranslationSegment struct {
	ID       string
	Start    float64
	End      float64
	Text     string
	Language string
}

// Cue is one time-coded bilingual line, the common currency of all encoders.
// Text fields are snapshot copies; a Cue does not reference the segment
// collections it was built from.
type Cue struct {
	// Sequence is 1-based and assigned after the final ordering.
	Sequence   int
	Start      int64 // milliseconds
	End        int64
	Original   string
	Translated string
	Language   string
	// HasOriginal is false when no transcription segment could be matched.
	HasOriginal bool
}

// MissingTime is the sentinel value for absent segment timings.
func MissingTime() float64 {
	return math.NaN()
}

// validStart reports whether a segment start time is usable for alignment.
func validStart(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}
