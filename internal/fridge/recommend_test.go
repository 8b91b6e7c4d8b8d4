package fridge

import (
	"testing"
	"time"

	"fridged/pkg/types"
)

func TestRecommendEmptyGrid(t *testing.T) {
	e, _, _ := newTestEngine(t)

	rec := e.Recommend()
	if rec.TakeOut != nil {
		t.Fatalf("expected no suggestion, got %+v", rec.TakeOut)
	}
	if rec.Expired == nil || rec.ExpiringSoon == nil || rec.Suggestions == nil {
		t.Fatalf("collections must be empty, not nil: %+v", rec)
	}
	if len(rec.Expired) != 0 || len(rec.ExpiringSoon) != 0 {
		t.Fatalf("expected empty collections: %+v", rec)
	}
}

// Boundary placement: 0 remaining days is expired, 2 is expiring soon,
// 3 is fresh.
func TestRecommendClassificationBoundaries(t *testing.T) {
	e2, _, clock := newTestEngine(t)
	states := []struct {
		name  string
		shelf int
	}{
		{"zero", 3},  // after advancing 3 days: 0 remaining -> expired
		{"soon", 5},  // 2 remaining -> expiring soon
		{"fresh", 6}, // 3 remaining -> fresh
	}
	for i, s := range states {
		if _, err := e2.PlaceItem(cls(s.name, 0, i, s.shelf)); err != nil {
			t.Fatalf("place %s: %v", s.name, err)
		}
	}
	clock.Advance(3 * 24 * time.Hour)

	rec := e2.Recommend()
	if len(rec.Expired) != 1 || rec.Expired[0].Name != "zero" {
		t.Fatalf("expected only 'zero' expired, got %+v", rec.Expired)
	}
	if len(rec.ExpiringSoon) != 1 || rec.ExpiringSoon[0].Name != "soon" {
		t.Fatalf("expected only 'soon' expiring, got %+v", rec.ExpiringSoon)
	}
	if rec.TakeOut == nil || rec.TakeOut.Name != "zero" || rec.TakeOut.Reason != types.ReasonExpired {
		t.Fatalf("expected 'zero' suggested as expired, got %+v", rec.TakeOut)
	}
}

func TestRecommendSuggestsFirstExpiredInInsertionOrder(t *testing.T) {
	e, _, clock := newTestEngine(t)

	first, err := e.PlaceItem(cls("first", 0, 0, 1))
	if err != nil {
		t.Fatalf("place first: %v", err)
	}
	if _, err := e.PlaceItem(cls("second", 0, 1, 1)); err != nil {
		t.Fatalf("place second: %v", err)
	}
	clock.Advance(48 * time.Hour)

	rec := e.Recommend()
	if len(rec.Expired) != 2 {
		t.Fatalf("expected 2 expired, got %d", len(rec.Expired))
	}
	if rec.TakeOut == nil || rec.TakeOut.ID != first.ID {
		t.Fatalf("expected first-placed item suggested, got %+v", rec.TakeOut)
	}
}

func TestRecommendFallsBackToExpiringSoon(t *testing.T) {
	e, _, clock := newTestEngine(t)

	if _, err := e.PlaceItem(cls("fresh", 0, 0, 30)); err != nil {
		t.Fatalf("place fresh: %v", err)
	}
	soon, err := e.PlaceItem(cls("soon", 0, 1, 3))
	if err != nil {
		t.Fatalf("place soon: %v", err)
	}
	clock.Advance(24 * time.Hour)

	rec := e.Recommend()
	if len(rec.Expired) != 0 {
		t.Fatalf("expected nothing expired, got %+v", rec.Expired)
	}
	if rec.TakeOut == nil || rec.TakeOut.ID != soon.ID || rec.TakeOut.Reason != types.ReasonExpiringSoon {
		t.Fatalf("expected 'soon' suggested, got %+v", rec.TakeOut)
	}
}

func TestIndefiniteItemsNeverExpire(t *testing.T) {
	e, _, clock := newTestEngine(t)

	if _, err := e.PlaceItem(cls("violin", 3, 0, types.IndefiniteShelfLife)); err != nil {
		t.Fatalf("place: %v", err)
	}
	clock.Advance(1000 * 24 * time.Hour)

	rec := e.Recommend()
	if len(rec.Expired) != 0 || len(rec.ExpiringSoon) != 0 || rec.TakeOut != nil {
		t.Fatalf("indefinite item surfaced in recommendations: %+v", rec)
	}
	views := e.Inventory()
	if len(views) != 1 || views[0].IsExpired {
		t.Fatalf("indefinite item reported expired: %+v", views)
	}
}

func TestRecommendDoesNotMutate(t *testing.T) {
	e, _, clock := newTestEngine(t)

	if _, err := e.PlaceItem(cls("old", 0, 0, 1)); err != nil {
		t.Fatalf("place: %v", err)
	}
	clock.Advance(72 * time.Hour)

	for i := 0; i < 3; i++ {
		rec := e.Recommend()
		if len(rec.Expired) != 1 || rec.TakeOut == nil {
			t.Fatalf("recommend changed between calls: %+v", rec)
		}
	}
	if got := len(e.Inventory()); got != 1 {
		t.Fatalf("recommend evicted an item: %d left", got)
	}
}
