package fridge

import (
	"sync"
	"testing"
	"time"

	"fridged/pkg/types"
)

// testClock is a settable clock shared by an engine under test.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// newTestEngine builds an engine with the default 5x4 grid, a memory
// publisher and no persistence.
func newTestEngine(t *testing.T) (*Engine, *MemoryPublisher, *testClock) {
	t.Helper()
	clock := newTestClock()
	pub := NewMemoryPublisher()
	e := NewWithConfig(Config{Publisher: pub, Clock: clock.Now})
	return e, pub, clock
}

// cls is a shorthand classification for placement tests.
func cls(name string, level, section, shelfDays int) types.Classification {
	return types.Classification{
		Name:          name,
		Category:      "other",
		OptimalTemp:   4,
		ShelfLifeDays: shelfDays,
		Level:         level,
		Section:       section,
	}
}
