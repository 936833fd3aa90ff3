package ability

import (
	"fmt"
	"slices"
	"sync"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
)

// HandlerRegistry is the dispatch table of the activation engine: one
// Handler per ability ID. An ability with no entry cannot be activated.
type HandlerRegistry struct {
	mu        sync.RWMutex
	byAbility map[abilities.ID]Handler
}

// NewHandlerRegistry creates an empty dispatch table
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		byAbility: make(map[abilities.ID]Handler),
	}
}

// Register binds handler to the ability it reports from Key. A later
// registration for the same ability wins, which lets tests swap in stubs.
// Binding the NonAbility sentinel is a programming error.
func (r *HandlerRegistry) Register(handler Handler) {
	id := handler.Key()
	if id == abilities.NonAbility {
		panic(fmt.Sprintf("handler %T registered for %s", handler, abilities.Name(id)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byAbility[id] = handler
}

// Get returns the handler bound to id
func (r *HandlerRegistry) Get(id abilities.ID) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.byAbility[id]
	return handler, ok
}

// List returns every ability with a handler, in table order
func (r *HandlerRegistry) List() []abilities.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]abilities.ID, 0, len(r.byAbility))
	for id := range r.byAbility {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
