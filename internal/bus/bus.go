package bus

import (
	"log"
	"sync"
	"sync/atomic"
)

// Handler consumes one event. Handlers run on their own goroutine and may
// block; the bus never waits for them.
type Handler func(Event)

// Token identifies one subscription for later removal. Go funcs are not
// comparable, so removal goes through the token rather than the handler
// value; subscribing the same func twice yields two tokens and both fire.
type Token uint64

// Bus is an in-process typed publish/subscribe hub. Construct with New;
// the zero value is not usable.
type Bus struct {
	mu        sync.RWMutex
	nextToken Token
	handlers  map[Kind]map[Token]Handler

	errCount atomic.Uint64
}

func New() *Bus {
	return &Bus{handlers: make(map[Kind]map[Token]Handler)}
}

// Subscribe registers h for events of the given kind.
func (b *Bus) Subscribe(kind Kind, h Handler) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextToken++
	t := b.nextToken
	m := b.handlers[kind]
	if m == nil {
		m = make(map[Token]Handler)
		b.handlers[kind] = m
	}
	m[t] = h
	return t
}

// Unsubscribe removes a previously registered handler. Unknown tokens are
// a no-op.
func (b *Bus) Unsubscribe(kind Kind, t Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers[kind], t)
}

// Publish hands e to every handler currently subscribed for e.Kind, one
// goroutine per handler, and returns without waiting for any of them.
// There is no ordering guarantee between events published concurrently,
// nor between handlers of a single event.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers[e.Kind]))
	for _, h := range b.handlers[e.Kind] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	eventsPublished.WithLabelValues(string(e.Kind)).Inc()
	for _, h := range hs {
		go b.dispatch(e, h)
	}
}

// dispatch isolates one handler invocation: a panic is recovered, logged
// and counted, and never reaches the publisher or other handlers.
func (b *Bus) dispatch(e Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.errCount.Add(1)
			handlerErrors.WithLabelValues(string(e.Kind)).Inc()
			log.Printf("bus event=handler_panic kind=%s source=%s err=%v", e.Kind, e.Source, r)
		}
	}()
	h(e)
}

// ErrorCount reports handler failures observed since construction.
func (b *Bus) ErrorCount() uint64 { return b.errCount.Load() }
