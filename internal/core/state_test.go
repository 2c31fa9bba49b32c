package core

import "testing"

func TestPercentageBounds(t *testing.T) {
	tests := []struct {
		name     string
		window   WorkWindow
		position int64
		expected int64
	}{
		{"no progress yet", WorkWindow{TotalKeyspace: 1000}, 0, 0},
		{"halfway", WorkWindow{TotalKeyspace: 1000}, 500, 5000},
		{"done", WorkWindow{TotalKeyspace: 1000}, 1000, 10000},
		{"overshoot clamps", WorkWindow{TotalKeyspace: 1000}, 1500, 10000},
		{"position below skip clamps to zero", WorkWindow{TotalKeyspace: 1000, Skip: 200}, 100, 0},
		{"skip offset applied", WorkWindow{TotalKeyspace: 1000, Skip: 200}, 700, 5000},
		{"zero keyspace", WorkWindow{}, 500, 0},
		{"rounding", WorkWindow{TotalKeyspace: 3}, 1, 3333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProgressState(tt.window)
			s.ApplyProgress(tt.position, 0, 0)
			if got := s.Percentage(); got != tt.expected {
				t.Errorf("Percentage() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestPercentageMonotonic(t *testing.T) {
	s := NewProgressState(WorkWindow{TotalKeyspace: 1000, Skip: 100})
	last := int64(-1)
	for _, pos := range []int64{0, 50, 100, 101, 250, 500, 900, 1100, 1100} {
		s.ApplyProgress(pos, 0, 0)
		p := s.Percentage()
		if p < last {
			t.Fatalf("percentage regressed: %d after %d (position %d)", p, last, pos)
		}
		if p < 0 || p > 10000 {
			t.Fatalf("percentage out of range: %d (position %d)", p, pos)
		}
		last = p
	}
}

func TestMarkCompletePins(t *testing.T) {
	s := NewProgressState(WorkWindow{TotalKeyspace: 1000})
	s.ApplyProgress(10, 5000, 0)
	s.MarkComplete()
	if got := s.Percentage(); got != 10000 {
		t.Errorf("Percentage() after MarkComplete = %d, want 10000", got)
	}
	// Later progress reports do not unpin.
	s.ApplyProgress(20, 6000, 1)
	if got := s.Percentage(); got != 10000 {
		t.Errorf("Percentage() = %d after progress, want 10000", got)
	}
	s.MarkComplete() // idempotent
	if !s.Complete() {
		t.Error("Complete() = false after MarkComplete")
	}
}

func TestSpeedAndFound(t *testing.T) {
	s := NewProgressState(WorkWindow{TotalKeyspace: 1000})
	s.ApplyProgress(100, 12860000, 2)
	if got := s.SpeedValue(); got != 12860000 {
		t.Errorf("SpeedValue() = %d, want 12860000", got)
	}
	s.AddFound(1)
	if got := s.FoundCount(); got != 3 {
		t.Errorf("FoundCount() = %d, want 3", got)
	}
}

func TestLimitReached(t *testing.T) {
	s := NewProgressState(WorkWindow{TotalKeyspace: 1000, Skip: 100, Limit: 50})
	for _, pos := range []int64{0, 100, 149} {
		s.ApplyProgress(pos, 0, 0)
		if s.LimitReached() {
			t.Errorf("LimitReached() at position %d, want false", pos)
		}
	}
	s.ApplyProgress(150, 0, 0)
	if !s.LimitReached() {
		t.Error("LimitReached() = false at position 150, want true")
	}

	unlimited := NewProgressState(WorkWindow{TotalKeyspace: 1000, Skip: 100})
	unlimited.ApplyProgress(10000, 0, 0)
	if unlimited.LimitReached() {
		t.Error("LimitReached() = true with no limit configured")
	}
}
