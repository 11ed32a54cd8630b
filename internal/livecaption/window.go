package livecaption

import "sync"

// Caption is one live caption entry. SegmentID ties interim and final
// revisions of the same utterance together.
type Caption struct {
	SegmentID  string `json:"segment_id"`
	Room       string `json:"room"`
	Language   string `json:"language"`
	Original   string `json:"original,omitempty"`
	Translated string `json:"translated"`
	Final      bool   `json:"final"`
	StartMS    int64  `json:"start_ms"`
	EndMS      int64  `json:"end_ms"`
}

// Window holds the most recent captions for one room and language pair. A
// caption sharing a segment identifier with an existing entry replaces it in
// place; otherwise it is appended and the oldest entries are evicted past
// capacity.
type Window struct {
	mu       sync.Mutex
	capacity int
	entries  []Caption
}

// NewWindow returns a window holding at most capacity captions. A
// non-positive capacity is treated as 1.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{capacity: capacity}
}

// Add inserts or revises a caption and reports whether an existing segment
// was replaced.
func (w *Window) Add(caption Caption) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caption.SegmentID != "" {
		for i := range w.entries {
			if w.entries[i].SegmentID == caption.SegmentID {
				w.entries[i] = caption
				return true
			}
		}
	}
	w.entries = append(w.entries, caption)
	if len(w.entries) > w.capacity {
		w.entries = w.entries[len(w.entries)-w.capacity:]
	}
	return false
}

// Snapshot returns the captions oldest first.
func (w *Window) Snapshot() []Caption {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Caption, len(w.entries))
	copy(out, w.entries)
	return out
}

// Len returns the number of captions currently held.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}
