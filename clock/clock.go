// Package clock is the only place that reads the wall clock. Everything that needs "the current
// year" takes a Clock so that tests can pin it.
package clock

import (
	"sync/atomic"
	"time"
)

type Clock interface {
	UTCNow() time.Time
}

type systemClock struct{}

// System reads time.Now, subject to the process-wide override
var System Clock = systemClock{}

func (systemClock) UTCNow() time.Time {
	return UTCNow()
}

type fixedClock time.Time

func Fixed(t time.Time) Clock {
	return fixedClock(t.UTC())
}

func (c fixedClock) UTCNow() time.Time {
	return time.Time(c)
}

// Year is the calendar year of the clock's current instant
func Year(c Clock) int {
	return c.UTCNow().Year()
}

var utcNowOverride atomic.Pointer[time.Time]

func MustSetUTCNowOverride(t time.Time) {
	if !isUTC(t) {
		panic("Expected UTC override")
	}
	utcNowOverride.Store(&t)
}

func IsSetUTCNowOverride() bool {
	return utcNowOverride.Load() != nil
}

func ResetUTCNowOverride() {
	utcNowOverride.Store(nil)
}

func UTCNow() time.Time {
	if override := utcNowOverride.Load(); override != nil {
		return *override
	}
	return time.Now().UTC()
}

func isUTC(t time.Time) bool {
	if t.Location().String() == "UTC" {
		return true
	}
	if name, offset := t.Zone(); name == "" && offset == 0 {
		return true
	}
	return false
}
