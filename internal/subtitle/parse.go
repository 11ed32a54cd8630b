package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsedCue is a cue read back from an encoded document.
type ParsedCue struct {
	Sequence int
	Start    int64
	End      int64
	Lines    []string
}

// ParseSRT reads a SubRip document into its cue blocks.
func ParseSRT(data []byte) ([]ParsedCue, error) {
	var cues []ParsedCue
	for _, block := range splitBlocks(string(data)) {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			return nil, fmt.Errorf("short cue block %q", block)
		}
		seq, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid cue number %q: %w", lines[0], err)
		}
		start, end, err := parseTimingLine(lines[1])
		if err != nil {
			return nil, err
		}
		cues = append(cues, ParsedCue{Sequence: seq, Start: start, End: end, Lines: lines[2:]})
	}
	return cues, nil
}

// ParseVTT reads a WebVTT document into its cue blocks. Sequence numbers are
// assigned by position since the encoder emits no cue identifiers.
func ParseVTT(data []byte) ([]ParsedCue, error) {
	text := strings.TrimPrefix(string(data), "\uFEFF")
	blocks := splitBlocks(text)
	if len(blocks) == 0 || !strings.HasPrefix(blocks[0], "WEBVTT") {
		return nil, fmt.Errorf("missing WEBVTT header")
	}
	var cues []ParsedCue
	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		if !strings.Contains(lines[0], "-->") {
			// Skip NOTE and STYLE blocks.
			continue
		}
		start, end, err := parseTimingLine(lines[0])
		if err != nil {
			return nil, err
		}
		cues = append(cues, ParsedCue{Sequence: len(cues) + 1, Start: start, End: end, Lines: lines[1:]})
	}
	return cues, nil
}

func parseTimingLine(line string) (int64, int64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func splitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}
