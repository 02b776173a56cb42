package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestStopwatch(t *testing.T) {
	fc := &fakeClock{now: time.Unix(1000, 0)}
	sw := NewStopwatch(fc)

	assert.False(t, sw.Running())
	fc.advance(time.Second)
	assert.Equal(t, time.Duration(0), sw.Elapsed(), "paused stopwatch must not advance")

	sw.Start()
	fc.advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, sw.Elapsed())
	assert.Equal(t, 2.0, sw.Seconds())

	sw.Pause()
	fc.advance(5 * time.Second)
	assert.Equal(t, 2*time.Second, sw.Elapsed())

	sw.Start()
	sw.Start()
	fc.advance(500 * time.Millisecond)
	assert.Equal(t, 2500*time.Millisecond, sw.Elapsed())
	assert.True(t, sw.Running())

	sw.Reset()
	assert.False(t, sw.Running())
	assert.Equal(t, time.Duration(0), sw.Elapsed())
}

func TestClockFunc(t *testing.T) {
	want := time.Unix(42, 0)
	c := ClockFunc(func() time.Time { return want })
	assert.Equal(t, want, c.Now())
}

func TestNewStopwatchDefaultsToSystemClock(t *testing.T) {
	sw := NewStopwatch(nil)
	sw.Start()
	assert.GreaterOrEqual(t, sw.Elapsed(), time.Duration(0))
}
