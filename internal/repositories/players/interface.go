// Package players stores player save state between activations
package players

//go:generate mockgen -destination=mock/mock_repository.go -package=mockplayers -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Create stores a new player, assigning an ID when it has none
	Create(ctx context.Context, p *player.Player) error

	// Get retrieves a player by ID
	Get(ctx context.Context, id string) (*player.Player, error)

	// Update replaces an existing player
	Update(ctx context.Context, p *player.Player) error

	// Delete removes a player
	Delete(ctx context.Context, id string) error

	// ListByOwner retrieves every player belonging to an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error)
}
