package fridge

import (
	"sync"
	"sync/atomic"
	"time"

	"fridged/pkg/types"
)

// Engine owns the inventory snapshot: the item table, the occupancy grid
// and the durable copy on disk. All mutation goes through PlaceItem and
// RemoveItem, serialized behind mu so a placement decision and its persist
// form one atomic unit.
type Engine struct {
	mu sync.RWMutex

	// Immutable after construction.
	levelTemps []int
	sections   int
	statePath  string
	soonWindow int
	pub        EventPublisher
	rec        Recognizer
	now        func() time.Time
	startTime  time.Time

	// Guarded by mu.
	items  map[string]*types.Item
	order  []string   // item ids in insertion order
	cells  [][]string // cells[level][section] = item id, "" when free
	lastID int64      // monotonic guard for id generation

	placements   atomic.Uint64
	removals     atomic.Uint64
	persistFails atomic.Uint64
}

// Levels reports the configured level count.
func (e *Engine) Levels() int { return len(e.levelTemps) }

// Sections reports the configured sections per level.
func (e *Engine) Sections() int { return e.sections }

// Ready reports whether the engine can accept operations. The grid is set
// up (and any snapshot restored) during construction, so a constructed
// engine is always ready.
func (e *Engine) Ready() bool {
	return len(e.cells) > 0
}
