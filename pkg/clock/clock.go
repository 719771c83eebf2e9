package clock

import (
	"sync"
	"time"
)

var (
	clockMu        sync.RWMutex
	clockSingleton Clock = DefaultClock{}
)

type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c DefaultClock) Now() time.Time {
	return time.Now()
}

type TestClock struct {
	now time.Time
}

func NewTestClock() *TestClock {
	return NewTestClockAt(time.Now())
}

func NewTestClockAt(date time.Time) *TestClock {
	return &TestClock{
		now: date,
	}
}

func (c *TestClock) FastForward(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func (c *TestClock) Now() time.Time {
	return c.now
}

func CurrentClock() Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clockSingleton
}

// Same as time.Now() but makes possible to control time from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

func FreezeAt(now time.Time) *TestClock {
	testClock := NewTestClockAt(now)
	setClock(testClock)
	return testClock
}

func Freeze() *TestClock {
	testClock := NewTestClock()
	setClock(testClock)
	return testClock
}

func Unfreeze() {
	setClock(DefaultClock{})
}

func setClock(c Clock) {
	clockMu.Lock()
	defer clockMu.Unlock()
	clockSingleton = c
}
