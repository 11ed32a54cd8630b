// Package subtitle turns recorded transcription and translation segments
// into time-ordered bilingual cues and renders them as SubRip (SRT), WebVTT,
// or plain transcript text.
//
// Alignment pairs each translation segment with the transcription segment
// whose start time is nearest, using a binary search over the sorted
// transcription list. Segments with missing, negative, or non-finite start
// times are dropped and counted rather than failing the whole export.
//
// The SRT and VTT encoders share one body-rendering routine so the two
// formats can never diverge in cue content; they differ only in the header
// line and the millisecond separator character.
package subtitle
