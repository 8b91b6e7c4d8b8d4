package bus

import (
	"sync/atomic"
	"testing"
	"time"
)

func recvEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	b := New()
	ch := make(chan Event, 1)
	b.Subscribe(ButtonPress, func(e Event) { ch <- e })

	b.Publish(NewEvent("test", ButtonPressPayload{ButtonType: ButtonPlaceItem}, 0))

	e := recvEvent(t, ch)
	if e.Kind != ButtonPress {
		t.Fatalf("expected kind %s, got %s", ButtonPress, e.Kind)
	}
	p, ok := e.Payload.(ButtonPressPayload)
	if !ok || p.ButtonType != ButtonPlaceItem {
		t.Fatalf("unexpected payload: %#v", e.Payload)
	}
	if e.Source != "test" {
		t.Fatalf("expected source test, got %s", e.Source)
	}
}

func TestPublishOnlyMatchingKind(t *testing.T) {
	b := New()
	ch := make(chan Event, 1)
	b.Subscribe(ItemTaken, func(e Event) { ch <- e })

	b.Publish(NewEvent("test", ItemPlacedPayload{Name: "milk"}, 0))

	select {
	case e := <-ch:
		t.Fatalf("handler for item_taken received %s", e.Kind)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDuplicateHandlersBothFire(t *testing.T) {
	b := New()
	ch := make(chan Event, 2)
	h := func(e Event) { ch <- e }
	t1 := b.Subscribe(CameraCapture, h)
	t2 := b.Subscribe(CameraCapture, h)
	if t1 == t2 {
		t.Fatalf("duplicate subscriptions must get distinct tokens")
	}

	b.Publish(NewEvent("test", CameraCapturePayload{CameraType: CameraInternal, ImageRef: "x.jpg"}, 0))

	recvEvent(t, ch)
	recvEvent(t, ch)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	ch := make(chan Event, 1)
	tok := b.Subscribe(ItemPlaced, func(e Event) { ch <- e })
	b.Unsubscribe(ItemPlaced, tok)
	// removing again (or an unknown token) is a no-op
	b.Unsubscribe(ItemPlaced, tok)
	b.Unsubscribe(ItemPlaced, Token(9999))

	b.Publish(NewEvent("test", ItemPlacedPayload{Name: "milk"}, 0))

	select {
	case <-ch:
		t.Fatalf("unsubscribed handler still fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicIsIsolatedAndCounted(t *testing.T) {
	b := New()
	ch := make(chan Event, 1)
	b.Subscribe(SystemError, func(Event) { panic("boom") })
	b.Subscribe(SystemError, func(e Event) { ch <- e })

	b.Publish(NewEvent("test", SystemErrorPayload{Component: "x", Message: "y"}, 0))

	recvEvent(t, ch)
	deadline := time.Now().Add(2 * time.Second)
	for b.ErrorCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected error count to reach 1")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := b.ErrorCount(); got != 1 {
		t.Fatalf("expected error count 1, got %d", got)
	}
}

func TestPublishWithoutHandlersReturns(t *testing.T) {
	b := New()
	done := make(chan struct{})
	go func() {
		b.Publish(NewEvent("test", ProximityPayload{DistanceCM: 42}, 0))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked with no handlers")
	}
}

func TestPublishDoesNotWaitForHandlers(t *testing.T) {
	b := New()
	release := make(chan struct{})
	var started atomic.Int32
	b.Subscribe(ButtonPress, func(Event) {
		started.Add(1)
		<-release
	})

	start := time.Now()
	b.Publish(NewEvent("test", ButtonPressPayload{ButtonType: ButtonTakeItem}, 0))
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("publish waited on handler: %s", elapsed)
	}
	close(release)
}

func TestNewEventDerivesKindFromPayload(t *testing.T) {
	e := NewEvent("sensor", FaceDetectionPayload{Present: true}, 3)
	if e.Kind != FaceDetection {
		t.Fatalf("expected %s, got %s", FaceDetection, e.Kind)
	}
	if e.Priority != 3 {
		t.Fatalf("expected priority 3, got %d", e.Priority)
	}
	if e.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}
