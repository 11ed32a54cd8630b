package store

import "time"

// Recording is one captured classroom session.
type Recording struct {
	ID        string
	Room      string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecordingSummary augments a recording with segment counts for listings.
type RecordingSummary struct {
	Recording
	TranscriptionCount int
	TranslationCount   int
	Languages          []string
}
