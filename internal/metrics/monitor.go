package metrics

import (
	"sync"
	"time"
)

const defaultWindowSize = 100

// Monitor accumulates export outcomes. All methods are safe for concurrent
// use.
type Monitor struct {
	mu         sync.Mutex
	windowSize int
	durations  []time.Duration
	successes  int64
	failures   int64
	byFormat   map[string]int64
	started    time.Time
}

// Snapshot is a point-in-time copy of the monitor state.
type Snapshot struct {
	Successes       int64            `json:"successes"`
	Failures        int64            `json:"failures"`
	AverageDuration time.Duration    `json:"average_duration_ns"`
	MaxDuration     time.Duration    `json:"max_duration_ns"`
	WindowCount     int              `json:"window_count"`
	ByFormat        map[string]int64 `json:"by_format"`
	Uptime          time.Duration    `json:"uptime_ns"`
}

// NewMonitor returns a monitor keeping the last windowSize durations. A
// non-positive windowSize falls back to the default.
func NewMonitor(windowSize int) *Monitor {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &Monitor{
		windowSize: windowSize,
		byFormat:   make(map[string]int64),
		started:    time.Now(),
	}
}

// RecordSuccess notes one completed export in the given format.
func (m *Monitor) RecordSuccess(format string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes++
	m.byFormat[format]++
	m.durations = append(m.durations, duration)
	if len(m.durations) > m.windowSize {
		m.durations = m.durations[len(m.durations)-m.windowSize:]
	}
}

// RecordFailure notes one failed export.
func (m *Monitor) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures++
}

// Snapshot returns a copy of the current counters.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Successes:   m.successes,
		Failures:    m.failures,
		WindowCount: len(m.durations),
		ByFormat:    make(map[string]int64, len(m.byFormat)),
		Uptime:      time.Since(m.started),
	}
	for format, count := range m.byFormat {
		snap.ByFormat[format] = count
	}
	var total time.Duration
	for _, d := range m.durations {
		total += d
		if d > snap.MaxDuration {
			snap.MaxDuration = d
		}
	}
	if len(m.durations) > 0 {
		snap.AverageDuration = total / time.Duration(len(m.durations))
	}
	return snap
}
