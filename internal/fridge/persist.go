package fridge

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"fridged/pkg/types"
)

// snapshotFile is the single durable document: the item table plus the
// occupancy grid, written and read as one unit.
type snapshotFile struct {
	Items      map[string]*types.Item `json:"items"`
	Order      []string               `json:"order"`
	Cells      [][]string             `json:"cells"`
	LastUpdate time.Time              `json:"last_update"`
}

// persistLocked rewrites the whole snapshot document. Callers hold e.mu.
// The write goes to a sibling tmp file first and is renamed into place so
// a crash mid-write cannot leave a truncated snapshot. A failed write is
// logged and counted; the in-memory snapshot stays the source of truth
// for the rest of the process lifetime.
func (e *Engine) persistLocked() {
	if e.statePath == "" {
		return
	}
	snap := snapshotFile{
		Items:      e.items,
		Order:      e.order,
		Cells:      e.cells,
		LastUpdate: e.now(),
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		e.persistFails.Add(1)
		persistErrorsTotal.Inc()
		log.Printf("fridge event=persist_error path=%s err=%v", e.statePath, err)
		return
	}
	tmp := e.statePath + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		e.persistFails.Add(1)
		persistErrorsTotal.Inc()
		log.Printf("fridge event=persist_error path=%s err=%v", tmp, err)
		return
	}
	if err := os.Rename(tmp, e.statePath); err != nil {
		e.persistFails.Add(1)
		persistErrorsTotal.Inc()
		log.Printf("fridge event=persist_error path=%s err=%v", e.statePath, err)
	}
}

// restore loads the snapshot file when present. Occupancy is rebuilt from
// the item records themselves so a hand-edited or stale cells table cannot
// break the one-item-per-cell invariant; items that no longer fit the
// configured grid are dropped with a log line.
func (e *Engine) restore() {
	if e.statePath == "" {
		return
	}
	b, err := os.ReadFile(e.statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("fridge event=state_read_error path=%s err=%v", e.statePath, err)
		}
		return
	}
	var snap snapshotFile
	if err := json.Unmarshal(b, &snap); err != nil {
		log.Printf("fridge event=state_corrupt path=%s err=%v", e.statePath, err)
		return
	}

	ids := snap.Order
	// Older snapshots may lack the order list; fall back to added-time order.
	if len(ids) != len(snap.Items) {
		ids = ids[:0]
		for id := range snap.Items {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			a, b := snap.Items[ids[i]], snap.Items[ids[j]]
			if !a.AddedAt.Equal(b.AddedAt) {
				return a.AddedAt.Before(b.AddedAt)
			}
			return ids[i] < ids[j]
		})
	}

	dropped := 0
	for _, id := range ids {
		it, ok := snap.Items[id]
		if !ok {
			continue
		}
		if it.Level < 0 || it.Level >= len(e.levelTemps) ||
			it.Section < 0 || it.Section >= e.sections ||
			e.cells[it.Level][it.Section] != "" {
			dropped++
			continue
		}
		e.items[id] = it
		e.order = append(e.order, id)
		e.cells[it.Level][it.Section] = id
		if n := idSeq(id); n > e.lastID {
			e.lastID = n
		}
	}
	if dropped > 0 {
		log.Printf("fridge event=state_dropped path=%s dropped=%d", e.statePath, dropped)
	}
	log.Printf("fridge event=state_loaded path=%s items=%d", e.statePath, len(e.items))
	itemsGauge.Set(float64(len(e.items)))
}

// idSeq extracts the numeric part of an item id, 0 when absent.
func idSeq(id string) int64 {
	n, _ := strconv.ParseInt(strings.TrimPrefix(id, "item_"), 10, 64)
	return n
}
