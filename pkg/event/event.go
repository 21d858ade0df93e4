// Package event is an in-process event dispatcher. Services fire catalog
// changes here; listeners (the websocket hub, cache invalidation) react.
package event

import (
	"sync"
)

// Wildcard subscribes a listener to every event.
const Wildcard = "*"

// Handler receives the event name and its payload.
type Handler func(name string, payload interface{})

type listener struct {
	id uint64
	fn Handler
}

var (
	mu       sync.RWMutex
	nextID   uint64
	handlers = map[string][]listener{}
)

// Listen registers handler for event, or for everything with Wildcard.
// The returned func unregisters this handler only; calling it twice is safe.
func Listen(event string, handler Handler) func() {
	mu.Lock()
	defer mu.Unlock()
	nextID++
	id := nextID
	handlers[event] = append(handlers[event], listener{id: id, fn: handler})
	return func() { remove(event, id) }
}

func remove(event string, id uint64) {
	mu.Lock()
	defer mu.Unlock()
	ls := handlers[event]
	for i, l := range ls {
		if l.id == id {
			handlers[event] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(handlers[event]) == 0 {
		delete(handlers, event)
	}
}

func listeners(event string) []Handler {
	mu.RLock()
	defer mu.RUnlock()
	hs := make([]Handler, 0, len(handlers[event])+len(handlers[Wildcard]))
	for _, l := range handlers[event] {
		hs = append(hs, l.fn)
	}
	if event != Wildcard {
		for _, l := range handlers[Wildcard] {
			hs = append(hs, l.fn)
		}
	}
	return hs
}

// Fire calls every listener synchronously, in registration order.
func Fire(event string, payload interface{}) {
	for _, h := range listeners(event) {
		h(event, payload)
	}
}

// FireAsync calls each listener on its own goroutine and returns at once.
func FireAsync(event string, payload interface{}) {
	for _, h := range listeners(event) {
		go h(event, payload)
	}
}

// Flush removes all listeners.
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]listener{}
}
