package fridge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newPersistentEngine(t *testing.T, path string) (*Engine, *testClock) {
	t.Helper()
	clock := newTestClock()
	e := NewWithConfig(Config{StatePath: path, Clock: clock.Now})
	return e, clock
}

func TestPersistWritesSnapshotAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	e, _ := newPersistentEngine(t, path)

	if _, err := e.PlaceItem(cls("milk", 1, 2, 7)); err != nil {
		t.Fatalf("place: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var snap snapshotFile
	if err := json.Unmarshal(b, &snap); err != nil {
		t.Fatalf("snapshot not valid json: %v", err)
	}
	if len(snap.Items) != 1 || len(snap.Order) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Cells[1][2] != snap.Order[0] {
		t.Fatalf("snapshot cells out of sync: %+v", snap)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file left behind: %v", err)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	e, _ := newPersistentEngine(t, path)

	a, err := e.PlaceItem(cls("a", 2, 0, 7))
	if err != nil {
		t.Fatalf("place a: %v", err)
	}
	b, err := e.PlaceItem(cls("b", 2, 1, 3))
	if err != nil {
		t.Fatalf("place b: %v", err)
	}
	if _, err := e.RemoveItem(a.ID, "test"); err != nil {
		t.Fatalf("remove a: %v", err)
	}

	e2, _ := newPersistentEngine(t, path)
	views := e2.Inventory()
	if len(views) != 1 || views[0].ID != b.ID || views[0].Name != "b" {
		t.Fatalf("unexpected restored inventory: %+v", views)
	}
	if views[0].Level != 2 || views[0].Section != 1 {
		t.Fatalf("restored item lost its cell: %+v", views[0])
	}
	// restored engine keeps the id sequence moving forward
	c, err := e2.PlaceItem(cls("c", 0, 0, 7))
	if err != nil {
		t.Fatalf("place after restore: %v", err)
	}
	if c.ID == a.ID || c.ID == b.ID {
		t.Fatalf("restored engine reused id %s", c.ID)
	}
	checkGridInvariant(t, e2)
}

func TestRestoreCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	e, _ := newPersistentEngine(t, path)
	if got := len(e.Inventory()); got != 0 {
		t.Fatalf("expected empty engine, got %d items", got)
	}
	// the engine remains usable and persists over the corrupt file
	if _, err := e.PlaceItem(cls("milk", 0, 0, 7)); err != nil {
		t.Fatalf("place: %v", err)
	}
	e2, _ := newPersistentEngine(t, path)
	if got := len(e2.Inventory()); got != 1 {
		t.Fatalf("expected recovered snapshot with 1 item, got %d", got)
	}
}

func TestRestoreDropsItemsOutsideGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	e, _ := newPersistentEngine(t, path)
	if _, err := e.PlaceItem(cls("keep", 4, 3, 7)); err != nil {
		t.Fatalf("place: %v", err)
	}

	// restore into a smaller grid: (4,3) no longer exists
	clock := newTestClock()
	e2 := NewWithConfig(Config{
		StatePath:        path,
		LevelTemps:       []int{0, 4},
		SectionsPerLevel: 2,
		Clock:            clock.Now,
	})
	if got := len(e2.Inventory()); got != 0 {
		t.Fatalf("expected misfit item dropped, got %d items", got)
	}
}

func TestEmptyStatePathDisablesPersistence(t *testing.T) {
	e := NewWithConfig(Config{Clock: newTestClock().Now})
	if _, err := e.PlaceItem(cls("milk", 0, 0, 7)); err != nil {
		t.Fatalf("place: %v", err)
	}
	if e.persistFails.Load() != 0 {
		t.Fatalf("persistence attempted with empty path")
	}
}

func TestPersistFailureDoesNotFailMutation(t *testing.T) {
	// a directory at the snapshot path makes the rename fail
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	e, _ := newPersistentEngine(t, path)

	it, err := e.PlaceItem(cls("milk", 0, 0, 7))
	if err != nil {
		t.Fatalf("placement must survive persist failure: %v", err)
	}
	if e.persistFails.Load() == 0 {
		t.Fatalf("expected persist failure counted")
	}
	if _, err := e.RemoveItem(it.ID, "test"); err != nil {
		t.Fatalf("removal must survive persist failure: %v", err)
	}
}
