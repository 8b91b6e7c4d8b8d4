package types

import "time"

// IndefiniteShelfLife is the sentinel for items that do not meaningfully
// expire (instruments, tools and other non-food objects).
const IndefiniteShelfLife = -1

// Classification is a normalized recognition result for a captured item.
// Free-text temperature and shelf-life values must already be parsed into
// signed integers (or the indefinite sentinel) before the record reaches
// the inventory engine.
type Classification struct {
	// Recognized item name.
	// example: milk carton
	Name string `json:"name" example:"milk carton"`
	// Item category (fruit, vegetable, meat, dairy, grain, seafood, bakery, beverage, other).
	// example: dairy
	Category string `json:"category" example:"dairy"`
	// Optimal storage temperature in degrees Celsius.
	// example: 4
	OptimalTemp int `json:"optimal_temperature" example:"4"`
	// Shelf life in days; -1 means indefinite.
	// example: 7
	ShelfLifeDays int `json:"shelf_life_days" example:"7"`
	// Storage level requested by the recognizer.
	// example: 2
	Level int `json:"level" example:"2"`
	// Section within the level requested by the recognizer.
	// example: 0
	Section int `json:"section" example:"0"`
	// Placement rationale reported by the recognizer.
	// example: dairy keeps best at 2-6C
	Rationale string `json:"rationale,omitempty" example:"dairy keeps best at 2-6C"`
	// Reference to the source image (path or URL).
	ImageRef string `json:"image_ref,omitempty"`
}

// Item is a stored item occupying exactly one grid cell.
type Item struct {
	// Unique id generated at placement time.
	// example: item_1700000000123456789
	ID string `json:"id" example:"item_1700000000123456789"`
	// Item name as recognized.
	Name string `json:"name"`
	// Item category.
	Category string `json:"category"`
	// Level the item is stored on.
	Level int `json:"level"`
	// Section within the level.
	Section int `json:"section"`
	// Optimal storage temperature in degrees Celsius.
	OptimalTemp int `json:"optimal_temperature"`
	// Time the item was placed.
	AddedAt time.Time `json:"added_at"`
	// Expiry timestamp. Indefinite items carry a far-future horizon so
	// freshness comparisons stay total-order-safe.
	ExpiryAt time.Time `json:"expiry_at"`
	// Reference to the capture image the item was recognized from.
	ImageRef string `json:"image_ref,omitempty"`
	// Placement rationale from the recognizer.
	Rationale string `json:"rationale,omitempty"`
}

// ItemView is a read-only projection of an Item with derived freshness
// fields, as returned by inventory queries.
type ItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Section  int    `json:"section"`
	// Optimal storage temperature in degrees Celsius.
	OptimalTemp int `json:"optimal_temperature"`
	// Whole days until expiry, clamped to zero.
	// example: 3
	RemainingDays int `json:"remaining_days" example:"3"`
	// True when the expiry timestamp is in the past.
	IsExpired bool `json:"is_expired"`
}

// Removal reasons carried on item_taken events and take-out suggestions.
const (
	ReasonExpired      = "expired"
	ReasonExpiringSoon = "expiring_soon"
	ReasonUserRequest  = "user_request"
)

// TakeOutSuggestion names the single item the recommendation generator
// proposes removing next.
type TakeOutSuggestion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	// Why this item should come out (expired, expiring_soon).
	// example: expired
	Reason string `json:"reason" example:"expired"`
}

// Recommendations groups current items by freshness. Suggestion selection
// follows insertion order: first expired item, else first expiring soon.
type Recommendations struct {
	Expired      []ItemView         `json:"expired_items"`
	ExpiringSoon []ItemView         `json:"expiring_soon_items"`
	TakeOut      *TakeOutSuggestion `json:"take_out_item,omitempty"`
	Suggestions  []string           `json:"suggestions"`
}
