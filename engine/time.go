package engine

import (
	"time"
)

// Time tracks the progression of the fixed step simulation.
type Time struct {
	// Ticks counts the update ticks executed so far.
	Ticks uint64

	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64
}

func (t *Time) advance(ticksPerSecond int) {
	t.Ticks += 1
	t.Delta = time.Second / time.Duration(ticksPerSecond)
	t.DeltaSecs = t.Delta.Seconds()
	t.Elapsed += t.Delta
}

// Phase is a part of a frame the engine measures.
type Phase uint8

const (
	PhaseUpdate Phase = iota
	PhaseDraw
)

func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "update"
	case PhaseDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Timings summarizes all measured durations of one phase.
type Timings struct {
	Count    int
	Latest   time.Duration
	Total    time.Duration
	Min, Max time.Duration
}

// Mean is the average duration, zero if nothing was measured yet.
func (t Timings) Mean() time.Duration {
	if t.Count == 0 {
		return 0
	}

	return t.Total / time.Duration(t.Count)
}

func (t *Timings) record(d time.Duration) {
	if t.Count == 0 || d < t.Min {
		t.Min = d
	}

	t.Max = max(t.Max, d)
	t.Latest = d
	t.Total += d
	t.Count += 1
}

// Stats holds the timings of the engines update and draw phases.
type Stats struct {
	Update Timings
	Draw   Timings
}

// Of returns the timings of the given phase.
func (s *Stats) Of(phase Phase) *Timings {
	if phase == PhaseDraw {
		return &s.Draw
	}

	return &s.Update
}

// Measure starts timing the phase. The returned function stops the
// measurement and records it:
//
//	defer stats.Measure(PhaseUpdate)()
func (s *Stats) Measure(phase Phase) func() {
	return s.MeasureSince(phase, time.Now)
}

// MeasureSince is Measure with an explicit clock.
func (s *Stats) MeasureSince(phase Phase, now func() time.Time) func() {
	startTime := now()
	timings := s.Of(phase)

	return func() {
		timings.record(now().Sub(startTime))
	}
}
