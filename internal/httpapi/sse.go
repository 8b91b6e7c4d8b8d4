package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fridged/internal/bus"
)

// heartbeatInterval keeps idle SSE connections from being reaped by
// intermediaries.
const heartbeatInterval = 15 * time.Second

// sseFrame is one server-sent message body.
type sseFrame struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// eventStream relays item_placed/item_taken domain events to the client as
// server-sent events. Slow clients drop events rather than back up the
// bus: the relay channel is bounded and sends are non-blocking.
func eventStream(b *bus.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fl, ok := w.(http.Flusher)
		if !ok {
			writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ch := make(chan bus.Event, 16)
		forward := func(e bus.Event) {
			select {
			case ch <- e:
			default:
			}
		}
		placed := b.Subscribe(bus.ItemPlaced, forward)
		taken := b.Subscribe(bus.ItemTaken, forward)
		defer b.Unsubscribe(bus.ItemPlaced, placed)
		defer b.Unsubscribe(bus.ItemTaken, taken)

		sseClients.Inc()
		defer sseClients.Dec()

		writeFrame(w, sseFrame{Type: "connected", Timestamp: time.Now().Unix()})
		fl.Flush()

		hb := time.NewTicker(heartbeatInterval)
		defer hb.Stop()
		for {
			select {
			case <-r.Context().Done():
				return
			case e := <-ch:
				writeFrame(w, sseFrame{Type: string(e.Kind), Timestamp: e.Timestamp.Unix(), Data: e.Payload})
				fl.Flush()
			case <-hb.C:
				writeFrame(w, sseFrame{Type: "heartbeat", Timestamp: time.Now().Unix()})
				fl.Flush()
			}
		}
	}
}

func writeFrame(w http.ResponseWriter, f sseFrame) {
	b, err := json.Marshal(f)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", b)
}
