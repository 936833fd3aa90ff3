package players

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	"github.com/KirkDiggler/crawl-talents/internal/uuid"
)

// InMemoryRepository keeps players in a map.
// Useful for testing and one-shot CLI runs.
type InMemoryRepository struct {
	mu      sync.RWMutex
	players map[string]*player.Player
	ids     uuid.Generator
}

// NewInMemory creates an in-memory repository. A nil generator falls back
// to random UUIDs.
func NewInMemory(ids uuid.Generator) Repository {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &InMemoryRepository{
		players: make(map[string]*player.Player),
		ids:     ids,
	}
}

// Create stores a new player
func (r *InMemoryRepository) Create(_ context.Context, p *player.Player) error {
	if p == nil {
		return dnderr.InvalidArgument("player cannot be nil")
	}
	if p.OwnerID == "" {
		return dnderr.InvalidArgument("player owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = r.ids.New()
	}
	if _, exists := r.players[p.ID]; exists {
		return dnderr.AlreadyExistsf("player with ID '%s' already exists", p.ID).
			WithMeta("player_id", p.ID)
	}

	// copies keep callers from mutating stored state
	r.players[p.ID] = p.Clone()
	return nil
}

// Get retrieves a player by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*player.Player, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.players[id]
	if !exists {
		return nil, dnderr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}
	return p.Clone(), nil
}

// Update replaces an existing player
func (r *InMemoryRepository) Update(_ context.Context, p *player.Player) error {
	if p == nil {
		return dnderr.InvalidArgument("player cannot be nil")
	}
	if p.ID == "" {
		return dnderr.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; !exists {
		return dnderr.NotFoundf("player with ID '%s' not found", p.ID).
			WithMeta("player_id", p.ID)
	}
	r.players[p.ID] = p.Clone()
	return nil
}

// Delete removes a player
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[id]; !exists {
		return dnderr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}
	delete(r.players, id)
	return nil
}

// ListByOwner retrieves every player belonging to an owner, sorted by name
func (r *InMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*player.Player, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*player.Player
	for _, p := range r.players {
		if p.OwnerID == ownerID {
			result = append(result, p.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
