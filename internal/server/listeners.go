package server

import (
	"github.com/shashiranjanraj/dinehub/app/services"
	"github.com/shashiranjanraj/dinehub/pkg/event"
	"github.com/shashiranjanraj/dinehub/pkg/metrics"
	"github.com/shashiranjanraj/dinehub/pkg/ws"
)

// ListenCatalogEvents forwards every catalog event to the websocket hub.
// The returned func removes that listener and leaves the others in place.
func ListenCatalogEvents(hub *ws.Hub) func() {
	return event.Listen(event.Wildcard, func(name string, payload interface{}) {
		if _, ok := payload.(services.CatalogEvent); !ok {
			return
		}
		metrics.CatalogEvents.WithLabelValues(name).Inc()
		hub.Publish(payload)
	})
}
