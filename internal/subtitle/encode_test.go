package subtitle

import (
	"strings"
	"testing"
)

func sampleCues() []Cue {
	return []Cue{
		{
			Sequence:    1,
			Start:       0,
			End:         900,
			Original:    "Good morning everyone",
			Translated:  "Buenos días a todos",
			Language:    "es",
			HasOriginal: true,
		},
		{
			Sequence:   2,
			Start:      75500,
			End:        76400,
			Translated: "Abran sus libros",
			Language:   "es",
		},
	}
}

func TestEncodeSRT(t *testing.T) {
	got := string(EncodeSRT(sampleCues()))
	want := "1\n" +
		"00:00:00,000 --> 00:00:00,900\n" +
		"Good morning everyone\n" +
		"Buenos días a todos\n" +
		"\n" +
		"2\n" +
		"00:01:15,500 --> 00:01:16,400\n" +
		"Abran sus libros\n" +
		"\n"
	if got != want {
		t.Errorf("EncodeSRT mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestEncodeVTT(t *testing.T) {
	got := string(EncodeVTT(sampleCues()))
	want := "WEBVTT\n" +
		"\n" +
		"00:00:00.000 --> 00:00:00.900\n" +
		"Good morning everyone\n" +
		"Buenos días a todos\n" +
		"\n" +
		"00:01:15.500 --> 00:01:16.400\n" +
		"Abran sus libros\n"
	if got != want {
		t.Errorf("EncodeVTT mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestEncodeTranscript(t *testing.T) {
	got := string(EncodeTranscript(sampleCues()))
	want := "[00:00:00.000–00:00:00.900] Good morning everyone\n" +
		"  → Buenos días a todos\n" +
		"\n" +
		"[00:01:15.500–00:01:16.400] (no original)\n" +
		"  → Abran sus libros\n" +
		"\n"
	if got != want {
		t.Errorf("EncodeTranscript mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestEncodersCollapseEmbeddedNewlines(t *testing.T) {
	cues := []Cue{{
		Sequence:    1,
		Start:       0,
		End:         1000,
		Original:    "line one\nline two",
		Translated:  "línea uno\n\nlínea dos",
		Language:    "es",
		HasOriginal: true,
	}}
	srt := string(EncodeSRT(cues))
	if strings.Contains(srt, "line one\nline two") {
		t.Error("SRT output kept an embedded newline in the original text")
	}
	if !strings.Contains(srt, "line one line two") {
		t.Errorf("SRT output missing collapsed original: %q", srt)
	}
	if !strings.Contains(srt, "línea uno línea dos") {
		t.Errorf("SRT output missing collapsed translation: %q", srt)
	}
}

func TestEncodeEmptyCueList(t *testing.T) {
	if got := string(EncodeSRT(nil)); got != "" {
		t.Errorf("EncodeSRT(nil) = %q, want empty", got)
	}
	if got := string(EncodeVTT(nil)); got != "WEBVTT\n" {
		t.Errorf("EncodeVTT(nil) = %q, want header only", got)
	}
	if got := string(EncodeTranscript(nil)); got != "" {
		t.Errorf("EncodeTranscript(nil) = %q, want empty", got)
	}
}

func TestBlockEncodersTerminateFinalBlock(t *testing.T) {
	cues := sampleCues()
	for name, data := range map[string][]byte{
		"srt": EncodeSRT(cues),
		"txt": EncodeTranscript(cues),
	} {
		if !strings.HasSuffix(string(data), "\n\n") {
			t.Errorf("%s output missing blank line after final block: %q", name, data)
		}
	}
}

func TestSRTVTTRoundTripParity(t *testing.T) {
	cues := sampleCues()

	fromSRT, err := ParseSRT(EncodeSRT(cues))
	if err != nil {
		t.Fatalf("ParseSRT: %v", err)
	}
	fromVTT, err := ParseVTT(EncodeVTT(cues))
	if err != nil {
		t.Fatalf("ParseVTT: %v", err)
	}
	if len(fromSRT) != len(cues) || len(fromVTT) != len(cues) {
		t.Fatalf("cue counts: srt=%d vtt=%d want %d", len(fromSRT), len(fromVTT), len(cues))
	}
	for i := range cues {
		s, v := fromSRT[i], fromVTT[i]
		if s.Sequence != cues[i].Sequence {
			t.Errorf("cue %d: srt sequence %d, want %d", i, s.Sequence, cues[i].Sequence)
		}
		if s.Start != cues[i].Start || s.End != cues[i].End {
			t.Errorf("cue %d: srt timing %d-%d, want %d-%d", i, s.Start, s.End, cues[i].Start, cues[i].End)
		}
		if s.Start != v.Start || s.End != v.End {
			t.Errorf("cue %d: srt/vtt timing disagree: %d-%d vs %d-%d", i, s.Start, s.End, v.Start, v.End)
		}
		if strings.Join(s.Lines, "\n") != strings.Join(v.Lines, "\n") {
			t.Errorf("cue %d: srt/vtt bodies disagree: %q vs %q", i, s.Lines, v.Lines)
		}
	}
}
