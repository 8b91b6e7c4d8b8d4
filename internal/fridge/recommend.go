package fridge

import "fridged/pkg/types"

// Recommend classifies current items by freshness and proposes at most one
// removal: the first expired item in insertion order, else the first item
// expiring soon. Pure read over the snapshot; never mutates and never
// fails (collections are empty when nothing qualifies).
func (e *Engine) Recommend() types.Recommendations {
	e.mu.RLock()
	defer e.mu.RUnlock()
	now := e.now()
	rec := types.Recommendations{
		Expired:      []types.ItemView{},
		ExpiringSoon: []types.ItemView{},
		Suggestions:  []string{},
	}
	for _, id := range e.order {
		it := e.items[id]
		switch days := remainingDays(it.ExpiryAt, now); {
		case days <= 0:
			rec.Expired = append(rec.Expired, viewOf(it, now))
		case days <= e.soonWindow:
			rec.ExpiringSoon = append(rec.ExpiringSoon, viewOf(it, now))
		}
	}
	switch {
	case len(rec.Expired) > 0:
		v := rec.Expired[0]
		rec.TakeOut = &types.TakeOutSuggestion{ID: v.ID, Name: v.Name, Category: v.Category, Reason: types.ReasonExpired}
		rec.Suggestions = append(rec.Suggestions, "expired items found, remove them now")
	case len(rec.ExpiringSoon) > 0:
		v := rec.ExpiringSoon[0]
		rec.TakeOut = &types.TakeOutSuggestion{ID: v.ID, Name: v.Name, Category: v.Category, Reason: types.ReasonExpiringSoon}
		rec.Suggestions = append(rec.Suggestions, "items expiring soon, use them first")
	}
	return rec
}
