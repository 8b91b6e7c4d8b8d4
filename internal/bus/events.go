package bus

import "time"

// Kind identifies an event family. The set is closed: every kind has
// exactly one payload type.
type Kind string

const (
	ButtonPress     Kind = "button_press"
	CameraCapture   Kind = "camera_capture"
	FaceDetection   Kind = "face_detection"
	ProximitySensor Kind = "proximity_sensor"
	ItemPlaced      Kind = "item_placed"
	ItemTaken       Kind = "item_taken"
	SystemError     Kind = "system_error"
)

// Button identifiers published by the hardware collaborator.
const (
	ButtonPlaceItem = "place_item"
	ButtonTakeItem  = "take_item"
)

// Camera identifiers carried on capture events.
const (
	CameraInternal = "internal"
	CameraExternal = "external"
)

// Payload is the closed set of per-kind event payloads. Kind ties each
// payload type to the single event kind it is valid for, so an event can
// only be constructed with a matching payload.
type Payload interface {
	Kind() Kind
}

// ButtonPressPayload reports a hardware button press.
type ButtonPressPayload struct {
	ButtonType string `json:"button_type"`
}

func (ButtonPressPayload) Kind() Kind { return ButtonPress }

// CameraCapturePayload reports a stored capture image.
type CameraCapturePayload struct {
	CameraType string `json:"camera_type"`
	ImageRef   string `json:"image_ref"`
}

func (CameraCapturePayload) Kind() Kind { return CameraCapture }

// FaceDetectionPayload reports a face seen by the external camera.
type FaceDetectionPayload struct {
	Present bool `json:"present"`
}

func (FaceDetectionPayload) Kind() Kind { return FaceDetection }

// ProximityPayload reports an estimated user distance in centimeters.
type ProximityPayload struct {
	DistanceCM float64 `json:"distance_cm"`
}

func (ProximityPayload) Kind() Kind { return ProximitySensor }

// ItemPlacedPayload is the domain event for a completed placement.
type ItemPlacedPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Section  int    `json:"section"`
}

func (ItemPlacedPayload) Kind() Kind { return ItemPlaced }

// ItemTakenPayload is the domain event for a completed removal.
type ItemTakenPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

func (ItemTakenPayload) Kind() Kind { return ItemTaken }

// SystemErrorPayload reports a non-fatal component failure.
type SystemErrorPayload struct {
	Component string `json:"component"`
	Message   string `json:"message"`
}

func (SystemErrorPayload) Kind() Kind { return SystemError }

// Event is an immutable record handed to subscribers. The bus does not
// retain events after dispatch.
type Event struct {
	Kind      Kind      `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Payload   Payload   `json:"payload"`
	Priority  int       `json:"priority"`
}

// NewEvent builds an event for p's kind. The kind cannot disagree with the
// payload since it is derived from it.
func NewEvent(source string, p Payload, priority int) Event {
	return Event{
		Kind:      p.Kind(),
		Timestamp: time.Now(),
		Source:    source,
		Payload:   p,
		Priority:  priority,
	}
}
