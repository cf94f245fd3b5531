package notify

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// EventItemEquipped is published on the event bus for every equip message
const EventItemEquipped = "equipbest.item_equipped"

// Event context keys
const (
	ContextKeyToken   = "token"
	ContextKeyMessage = "message"
)

// hero is the event source
type hero struct {
	name string
}

func (h *hero) GetID() string {
	return h.name
}

func (h *hero) GetType() string {
	return "hero"
}

var _ core.Entity = (*hero)(nil)

// Bus publishes equip messages on an rpg-toolkit event bus
type Bus struct {
	bus     events.EventBus
	catalog *Catalog
}

// NewBus returns a Bus publishing to bus
func NewBus(bus events.EventBus, catalog *Catalog) *Bus {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Bus{bus: bus, catalog: catalog}
}

// Notify publishes an EventItemEquipped event. Publish failures are logged.
func (b *Bus) Notify(ctx context.Context, token Token, heroName string) {
	event := events.NewGameEvent(EventItemEquipped, &hero{name: heroName}, nil)
	event.Context().Set(ContextKeyToken, string(token))
	event.Context().Set(ContextKeyMessage, b.catalog.Render(token, heroName))

	if err := b.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish equip event",
			"token", string(token),
			"hero", heroName,
			"error", err,
		)
	}
}
