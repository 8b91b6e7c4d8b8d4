// Package fridge owns the storage grid: slot allocation, expiry tracking,
// snapshot persistence and removal recommendations. It is structured into
// small files by concern:
//
//   - engine.go: core Engine type, constructor, grid setup.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - errors.go: error types and helpers (IsStorageFull, IsItemNotFound).
//   - place.go: PlaceItem allocation with deterministic fallback.
//   - remove.go: RemoveItem and RemoveRecommended.
//   - query.go: read-only projections (Inventory, FindBestLevel).
//   - recommend.go: freshness classification and take-out suggestion.
//   - persist.go: whole-document JSON snapshot (atomic tmp+rename).
//   - handlers.go: bus subscriptions for capture and button events.
//   - monitor.go: periodic read-only status loop.
//   - status_report.go: Status for the HTTP surface.
//
// Mutations (PlaceItem, RemoveItem) serialize behind one mutex covering
// the full read-occupancy, decide, mutate, persist sequence. Expiry is
// advisory: expired items are never evicted automatically, they are only
// surfaced through Recommend.
//
// External packages should construct the Engine with NewWithConfig and use
// public methods only. Internal state layout is subject to change.
package fridge
