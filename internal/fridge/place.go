package fridge

import (
	"log"
	"strconv"
	"strings"
	"time"

	"fridged/internal/bus"
	"fridged/pkg/types"
)

// PlaceItem allocates a cell for a classified item, records it and
// persists the snapshot before returning. Allocation is deterministic:
// the requested cell first, then the lowest free section on the requested
// level, then the lowest (level, section) pair across the whole grid.
// Fails with a storage-full error when no cell is free anywhere; the grid
// is unchanged and no event is published in that case.
func (e *Engine) PlaceItem(cls types.Classification) (types.Item, error) {
	cls = e.normalize(cls)

	e.mu.Lock()
	level, section, ok := e.allocate(cls.Level, cls.Section)
	if !ok {
		e.mu.Unlock()
		log.Printf("fridge event=place_full name=%q", cls.Name)
		return types.Item{}, ErrStorageFull()
	}
	now := e.now()
	it := &types.Item{
		ID:          e.nextID(now),
		Name:        cls.Name,
		Category:    cls.Category,
		Level:       level,
		Section:     section,
		OptimalTemp: cls.OptimalTemp,
		AddedAt:     now,
		ExpiryAt:    expiryFrom(now, cls.ShelfLifeDays),
		ImageRef:    cls.ImageRef,
		Rationale:   cls.Rationale,
	}
	e.items[it.ID] = it
	e.order = append(e.order, it.ID)
	e.cells[level][section] = it.ID
	e.persistLocked()
	placed := *it
	e.mu.Unlock()

	e.placements.Add(1)
	placementsTotal.Inc()
	itemsGauge.Set(float64(e.itemCount()))
	log.Printf("fridge event=place_ok id=%s name=%q level=%d section=%d expiry=%s",
		placed.ID, placed.Name, placed.Level, placed.Section, placed.ExpiryAt.Format(time.RFC3339))
	e.pub.Publish(bus.NewEvent("fridge", bus.ItemPlacedPayload{
		Name:     placed.Name,
		Category: placed.Category,
		Level:    placed.Level,
		Section:  placed.Section,
	}, 0))
	return placed, nil
}

// allocate picks the cell for a placement. Callers hold e.mu.
func (e *Engine) allocate(level, section int) (int, int, bool) {
	if e.cells[level][section] == "" {
		return level, section, true
	}
	for s := 0; s < e.sections; s++ {
		if e.cells[level][s] == "" {
			return level, s, true
		}
	}
	for l := range e.cells {
		for s := 0; s < e.sections; s++ {
			if e.cells[l][s] == "" {
				return l, s, true
			}
		}
	}
	return 0, 0, false
}

// normalize substitutes the default profile for missing or unparseable
// classification fields instead of rejecting the record.
func (e *Engine) normalize(cls types.Classification) types.Classification {
	if strings.TrimSpace(cls.Name) == "" {
		cls.Name = defaultItemName
	}
	if strings.TrimSpace(cls.Category) == "" {
		cls.Category = defaultCategory
	}
	if cls.ShelfLifeDays == 0 || cls.ShelfLifeDays < types.IndefiniteShelfLife {
		cls.ShelfLifeDays = defaultShelfLifeDays
	}
	if cls.Level < 0 || cls.Level >= len(e.levelTemps) {
		cls.Level = e.FindBestLevel(cls.OptimalTemp)
	}
	if cls.Section < 0 || cls.Section >= e.sections {
		cls.Section = 0
	}
	return cls
}

// nextID generates a collision-free monotonic id. Callers hold e.mu.
func (e *Engine) nextID(now time.Time) string {
	n := now.UnixNano()
	if n <= e.lastID {
		n = e.lastID + 1
	}
	e.lastID = n
	return "item_" + strconv.FormatInt(n, 10)
}

func expiryFrom(now time.Time, shelfLifeDays int) time.Time {
	if shelfLifeDays == types.IndefiniteShelfLife {
		shelfLifeDays = indefiniteHorizonDays
	}
	return now.Add(time.Duration(shelfLifeDays) * 24 * time.Hour)
}

func (e *Engine) itemCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.items)
}
