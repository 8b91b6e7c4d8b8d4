package fridge

// storageFullError signals that no free cell exists anywhere in the grid.
type storageFullError struct{}

func (storageFullError) Error() string { return "storage full: no free section on any level" }

// ErrStorageFull constructs a storageFullError.
func ErrStorageFull() error { return storageFullError{} }

// IsStorageFull reports whether err indicates a completely occupied grid.
func IsStorageFull(err error) bool {
	_, ok := err.(storageFullError)
	return ok
}

// itemNotFoundError signals a removal for an id that is not stored.
type itemNotFoundError struct{ id string }

func (e itemNotFoundError) Error() string { return "item not found: " + e.id }

// ErrItemNotFound constructs an itemNotFoundError.
func ErrItemNotFound(id string) error { return itemNotFoundError{id: id} }

// IsItemNotFound reports whether err indicates a missing item id.
func IsItemNotFound(err error) bool {
	_, ok := err.(itemNotFoundError)
	return ok
}

// noRecommendationError signals that nothing qualifies for removal.
type noRecommendationError struct{}

func (noRecommendationError) Error() string { return "no item recommended for removal" }

// ErrNoRecommendation constructs a noRecommendationError.
func ErrNoRecommendation() error { return noRecommendationError{} }

// IsNoRecommendation reports whether err indicates an empty recommendation.
func IsNoRecommendation(err error) bool {
	_, ok := err.(noRecommendationError)
	return ok
}
