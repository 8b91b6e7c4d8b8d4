package types

// LevelStatus summarizes one storage level for GET /api/status.
type LevelStatus struct {
	// Level index, 0 is the bottom tier.
	// example: 0
	Level int `json:"level" example:"0"`
	// Fixed temperature of this level in degrees Celsius.
	// example: -18
	TemperatureC int `json:"temperature_c" example:"-18"`
	// Item id per section; empty string means the section is free.
	Sections []string `json:"sections"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	// Per-level occupancy.
	Levels []LevelStatus `json:"levels"`
	// Number of stored items.
	// example: 7
	TotalItems int `json:"total_items" example:"7"`
	// Number of stored items already past expiry.
	// example: 1
	ExpiredItems int `json:"expired_items" example:"1"`
	// Total cell count (levels * sections).
	// example: 20
	Capacity int `json:"capacity" example:"20"`
	// Free cell count.
	// example: 13
	FreeCells int `json:"free_cells" example:"13"`
	// Uptime of the engine in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Total placements performed since start.
	// example: 12
	PlacementsTotal uint64 `json:"placements_total" example:"12"`
	// Total removals performed since start.
	// example: 5
	RemovalsTotal uint64 `json:"removals_total" example:"5"`
	// Total snapshot write failures since start.
	PersistErrorsTotal uint64 `json:"persist_errors_total"`
	// Total event handler failures observed on the bus since start.
	BusErrorsTotal uint64 `json:"bus_errors_total"`
}

// InventoryResponse wraps the item list returned by GET /api/inventory.
type InventoryResponse struct {
	Items []ItemView `json:"items"`
	// example: 7
	Total int `json:"total" example:"7"`
}

// ButtonRequest is the payload of POST /api/button, posted by the hardware
// collaborator (or the UI standing in for it).
type ButtonRequest struct {
	// Button identity: place_item or take_item.
	// example: place_item
	ButtonType string `json:"button_type" example:"place_item"`
}

// CaptureRequest is the payload of POST /api/capture, posted by the camera
// collaborator after it has written the image.
type CaptureRequest struct {
	// Which camera captured the image: internal or external.
	// example: internal
	CameraType string `json:"camera_type" example:"internal"`
	// Reference to the captured image (path or URL).
	// example: /var/lib/fridged/captures/cap_001.jpg
	ImageRef string `json:"image_ref" example:"/var/lib/fridged/captures/cap_001.jpg"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: item not found: item_42
	Error string `json:"error" example:"item not found: item_42"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
