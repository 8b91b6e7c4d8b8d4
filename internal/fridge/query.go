package fridge

import (
	"math"
	"time"

	"fridged/pkg/types"
)

// Inventory returns read-only views of all current items in insertion
// order, with derived freshness fields. Never fails and has no side
// effects.
func (e *Engine) Inventory() []types.ItemView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	now := e.now()
	out := make([]types.ItemView, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, viewOf(e.items[id], now))
	}
	return out
}

// FindBestLevel returns the level whose fixed temperature is closest to
// optimalTemp. Ties resolve to the lower level index.
func (e *Engine) FindBestLevel(optimalTemp int) int {
	best := 0
	bestDiff := math.MaxInt
	for i, t := range e.levelTemps {
		d := t - optimalTemp
		if d < 0 {
			d = -d
		}
		if d < bestDiff {
			bestDiff = d
			best = i
		}
	}
	return best
}

// remainingDays floors the time until expiry to whole days; negative when
// the item is past expiry.
func remainingDays(expiry, now time.Time) int {
	return int(math.Floor(expiry.Sub(now).Hours() / 24))
}

func viewOf(it *types.Item, now time.Time) types.ItemView {
	days := remainingDays(it.ExpiryAt, now)
	v := types.ItemView{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Level:         it.Level,
		Section:       it.Section,
		OptimalTemp:   it.OptimalTemp,
		RemainingDays: days,
		IsExpired:     days < 0,
	}
	if v.RemainingDays < 0 {
		v.RemainingDays = 0
	}
	return v
}
