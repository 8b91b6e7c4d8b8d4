package fridge

import "fridged/pkg/types"

// Status builds a detailed status response for GET /api/status.
func (e *Engine) Status() types.StatusResponse {
	e.mu.RLock()
	defer e.mu.RUnlock()
	now := e.now()
	resp := types.StatusResponse{
		TotalItems:         len(e.items),
		Capacity:           len(e.levelTemps) * e.sections,
		UptimeSeconds:      int64(now.Sub(e.startTime).Seconds()),
		ServerTimeUnix:     now.Unix(),
		PlacementsTotal:    e.placements.Load(),
		RemovalsTotal:      e.removals.Load(),
		PersistErrorsTotal: e.persistFails.Load(),
	}
	resp.Levels = make([]types.LevelStatus, 0, len(e.levelTemps))
	free := 0
	for l, temp := range e.levelTemps {
		sections := make([]string, e.sections)
		copy(sections, e.cells[l])
		for _, id := range sections {
			if id == "" {
				free++
			}
		}
		resp.Levels = append(resp.Levels, types.LevelStatus{
			Level:        l,
			TemperatureC: temp,
			Sections:     sections,
		})
	}
	resp.FreeCells = free
	for _, it := range e.items {
		if remainingDays(it.ExpiryAt, now) < 0 {
			resp.ExpiredItems++
		}
	}
	return resp
}
