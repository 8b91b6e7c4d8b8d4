package fridge

import (
	"context"
	"log"
	"time"

	"fridged/internal/bus"
)

// classifyTimeout bounds one recognition round trip.
const classifyTimeout = 30 * time.Second

// RegisterHandlers subscribes the engine to the sensor-side events it
// reacts to. The capture and button handlers run on bus goroutines;
// mutation still serializes behind the engine mutex.
func (e *Engine) RegisterHandlers(b *bus.Bus) {
	b.Subscribe(bus.CameraCapture, e.handleCameraCapture)
	b.Subscribe(bus.ButtonPress, e.handleButtonPress)
}

// handleCameraCapture classifies an internal-camera image and places the
// resulting item. External-camera captures are not inventory input.
func (e *Engine) handleCameraCapture(ev bus.Event) {
	p, ok := ev.Payload.(bus.CameraCapturePayload)
	if !ok || p.CameraType != bus.CameraInternal {
		return
	}
	if e.rec == nil {
		log.Printf("fridge event=capture_ignored image=%s reason=no_recognizer", p.ImageRef)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), classifyTimeout)
	defer cancel()
	cls, err := e.rec.Classify(ctx, p.ImageRef)
	if err != nil {
		log.Printf("fridge event=classify_error image=%s err=%v", p.ImageRef, err)
		e.pub.Publish(bus.NewEvent("fridge", bus.SystemErrorPayload{
			Component: "recognizer",
			Message:   err.Error(),
		}, 0))
		return
	}
	cls.ImageRef = p.ImageRef
	if _, err := e.PlaceItem(cls); err != nil {
		log.Printf("fridge event=place_error image=%s err=%v", p.ImageRef, err)
	}
}

// handleButtonPress acts on the two hardware buttons. place_item only
// announces intent; the capture collaborator follows up with a
// camera_capture event that carries the image. take_item performs the
// currently recommended removal.
func (e *Engine) handleButtonPress(ev bus.Event) {
	p, ok := ev.Payload.(bus.ButtonPressPayload)
	if !ok {
		return
	}
	switch p.ButtonType {
	case bus.ButtonPlaceItem:
		log.Printf("fridge event=await_capture")
	case bus.ButtonTakeItem:
		if _, err := e.RemoveRecommended(); err != nil {
			log.Printf("fridge event=take_button_noop err=%v", err)
		}
	default:
		log.Printf("fridge event=button_unknown type=%q", p.ButtonType)
	}
}
