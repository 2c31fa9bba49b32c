package core

// WorkWindow describes the slice of the candidate list assigned to this
// run. TotalKeyspace is either caller-supplied or the counted line count of
// the candidate list. Immutable once the run starts.
type WorkWindow struct {
	TotalKeyspace int64
	Skip          int64
	Limit         int64 // 0 means no limit configured
}

// ProgressState tracks the worker's reported position through the window.
// It is owned exclusively by the supervisor loop; no locking is required
// because the loop is the sole mutator and reader.
type ProgressState struct {
	window   WorkWindow
	position int64
	speed    int64
	found    int64
	complete bool
}

// NewProgressState creates the progress state for one run window.
func NewProgressState(window WorkWindow) *ProgressState {
	return &ProgressState{window: window}
}

// ApplyProgress overwrites position, speed and found count from a worker
// progress report. Last write wins; the worker's own stream is totally
// ordered.
func (s *ProgressState) ApplyProgress(position, speed, found int64) {
	s.position = position
	s.speed = speed
	s.found = found
}

// AddFound increments the found counter. Used when a result line arrives
// without an accompanying progress line in the same reporting window.
func (s *ProgressState) AddFound(n int64) {
	s.found += n
}

// MarkComplete pins the reported percentage at 10000. Idempotent.
func (s *ProgressState) MarkComplete() {
	s.complete = true
}

// Complete reports whether MarkComplete has been called.
func (s *ProgressState) Complete() bool {
	return s.complete
}

// Percentage returns progress through the window scaled to [0, 10000].
// A completed run always reports 10000; an empty keyspace reports 0. No
// placeholder is fabricated before the first progress report.
func (s *ProgressState) Percentage() int64 {
	if s.complete {
		return 10000
	}
	if s.window.TotalKeyspace <= 0 {
		return 0
	}
	rel := s.position - s.window.Skip
	if rel < 0 {
		rel = 0
	}
	p := (rel*10000 + s.window.TotalKeyspace/2) / s.window.TotalKeyspace
	if p > 10000 {
		p = 10000
	}
	return p
}

// SpeedValue returns the last hash-rate-derived speed in base units.
func (s *ProgressState) SpeedValue() int64 {
	return s.speed
}

// Position returns the last reported absolute candidate-list position.
func (s *ProgressState) Position() int64 {
	return s.position
}

// FoundCount returns the current cracked-hash count.
func (s *ProgressState) FoundCount() int64 {
	return s.found
}

// LimitReached reports whether a configured processing limit has been
// crossed: the worker's absolute position reached skip+limit.
func (s *ProgressState) LimitReached() bool {
	if s.window.Limit <= 0 {
		return false
	}
	return s.position >= s.window.Skip+s.window.Limit
}
