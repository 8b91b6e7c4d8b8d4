package fridge

import (
	"log"

	"fridged/internal/bus"
	"fridged/pkg/types"
)

// RemoveItem takes the item out of the grid, frees its cell and persists
// the snapshot. reason travels on the item_taken event (expired,
// expiring_soon, user_request). Fails with an item-not-found error for
// unknown ids; state is unchanged on failure.
func (e *Engine) RemoveItem(id, reason string) (types.Item, error) {
	e.mu.Lock()
	it, ok := e.items[id]
	if !ok {
		e.mu.Unlock()
		return types.Item{}, ErrItemNotFound(id)
	}
	delete(e.items, id)
	for i, oid := range e.order {
		if oid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	if e.cells[it.Level][it.Section] == id {
		e.cells[it.Level][it.Section] = ""
	}
	e.persistLocked()
	removed := *it
	e.mu.Unlock()

	e.removals.Add(1)
	removalsTotal.Inc()
	itemsGauge.Set(float64(e.itemCount()))
	log.Printf("fridge event=remove_ok id=%s name=%q reason=%s", removed.ID, removed.Name, reason)
	e.pub.Publish(bus.NewEvent("fridge", bus.ItemTakenPayload{
		Name:     removed.Name,
		Category: removed.Category,
		Reason:   reason,
	}, 0))
	return removed, nil
}

// RemoveRecommended removes whichever item Recommend currently suggests
// taking out. Fails with a no-recommendation error when nothing is expired
// or expiring soon.
func (e *Engine) RemoveRecommended() (types.Item, error) {
	rec := e.Recommend()
	if rec.TakeOut == nil {
		return types.Item{}, ErrNoRecommendation()
	}
	return e.RemoveItem(rec.TakeOut.ID, rec.TakeOut.Reason)
}
