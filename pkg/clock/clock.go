// Package clock provides the time sources used by game sessions.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current wall time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function into a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Stopwatch measures the time a game has been running. It starts paused and
// only accumulates while running, so a paused game does not advance.
type Stopwatch struct {
	mu      sync.Mutex
	clock   Clock
	running bool
	started time.Time
	elapsed time.Duration
}

// NewStopwatch returns a paused stopwatch reading 0. A nil clock uses the system clock.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Stopwatch{clock: clock}
}

// Start resumes the stopwatch. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.started = s.clock.Now()
}

// Pause stops accumulating time. Pausing a paused stopwatch is a no-op.
func (s *Stopwatch) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.elapsed += s.clock.Now().Sub(s.started)
	s.running = false
}

// Reset sets the reading back to 0 and pauses the stopwatch.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.elapsed = 0
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the accumulated running time.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return s.elapsed
	}
	return s.elapsed + s.clock.Now().Sub(s.started)
}

// Seconds returns the accumulated running time in seconds.
func (s *Stopwatch) Seconds() float64 {
	return s.Elapsed().Seconds()
}
