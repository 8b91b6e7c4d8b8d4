package fridge

import (
	"context"
	"time"

	"fridged/pkg/types"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultSectionsPerLevel = 4
	defaultShelfLifeDays    = 7
	defaultSoonWindowDays   = 2
	defaultMonitorInterval  = 60 * time.Second

	// Horizon substituted for the indefinite shelf-life sentinel so that
	// expiry comparisons stay total-order-safe (about one century).
	indefiniteHorizonDays = 36500
)

// Default profile for malformed classification records. Availability wins
// over precision: a bad record still becomes an item.
const (
	defaultItemName = "unknown item"
	defaultCategory = "other"
	defaultOptTemp  = 4
)

// defaultLevelTemps mirrors the physical unit: two freezer tiers at the
// bottom, two chiller tiers above, one crisper tier on top.
var defaultLevelTemps = []int{-18, -5, 2, 6, 10}

// Recognizer turns a capture image into a classification record. The
// implementation (a remote vision model) lives outside this package.
type Recognizer interface {
	Classify(ctx context.Context, imageRef string) (types.Classification, error)
}

// Config encapsulates all tunables for Engine construction.
type Config struct {
	// Fixed temperature per level in degrees Celsius, ascending level index.
	LevelTemps []int
	// Sections per level.
	SectionsPerLevel int
	// Snapshot file path; empty disables persistence.
	StatePath string
	// Remaining-days window that counts as "expiring soon".
	SoonWindowDays int
	// Receives item_placed/item_taken domain events. Defaults to a no-op.
	Publisher EventPublisher
	// Classifies capture images. May be nil; capture events are then dropped.
	Recognizer Recognizer
	// Clock override for tests. Defaults to time.Now.
	Clock func() time.Time
}

// NewWithConfig constructs an Engine, applies defaults and restores the
// persisted snapshot when one exists.
func NewWithConfig(cfg Config) *Engine {
	e := &Engine{
		levelTemps: cfg.LevelTemps,
		sections:   cfg.SectionsPerLevel,
		statePath:  cfg.StatePath,
		soonWindow: cfg.SoonWindowDays,
		pub:        cfg.Publisher,
		rec:        cfg.Recognizer,
		now:        cfg.Clock,
		items:      make(map[string]*types.Item),
	}
	if len(e.levelTemps) == 0 {
		e.levelTemps = append([]int(nil), defaultLevelTemps...)
	}
	if e.sections <= 0 {
		e.sections = defaultSectionsPerLevel
	}
	if e.soonWindow <= 0 {
		e.soonWindow = defaultSoonWindowDays
	}
	if e.pub == nil {
		e.pub = noopPublisher{}
	}
	if e.now == nil {
		e.now = time.Now
	}
	e.cells = make([][]string, len(e.levelTemps))
	for l := range e.cells {
		e.cells[l] = make([]string, e.sections)
	}
	e.startTime = e.now()
	e.restore()
	return e
}
