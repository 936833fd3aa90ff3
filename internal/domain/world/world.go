// Package world describes the parts of the dungeon around the player that
// ability rules need to ask about. The game owns the map; rules only see
// this narrow view of it.
package world

//go:generate mockgen -destination=mock/mock_world.go -package=mockworld -source=world.go

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

// Terrain is the feature under the player
type Terrain int

const (
	TerrainFloor Terrain = iota
	TerrainShallowWater
	TerrainDeepWater
	TerrainLava
)

func (t Terrain) String() string {
	switch t {
	case TerrainShallowWater:
		return "shallow water"
	case TerrainDeepWater:
		return "deep water"
	case TerrainLava:
		return "lava"
	default:
		return "floor"
	}
}

// Dangerous reports whether standing here without flight kills
func (t Terrain) Dangerous() bool {
	return t == TerrainDeepWater || t == TerrainLava
}

// World is the environment collaborator
type World interface {
	// Silenced reports whether the player stands in silence
	Silenced() bool
	// AbyssExists is false in game modes without an Abyss branch
	AbyssExists() bool
	InAbyss() bool
	SanctuaryActive() bool
	// CorruptionBlocker is the reason the level cannot be corrupted, or
	// empty when it can.
	CorruptionBlocker() string
	// ReciteAudience reports whether any monster in view would listen
	ReciteAudience() bool
	// CloudHere reports whether the player stands in a cloud
	CloudHere() bool
	// OneLevelBranch reports whether the current branch has no level below
	OneLevelBranch() bool
	TerrainHere() Terrain
	// OrcPriestInView reports whether an orc priest who would accept a
	// convert can see the player
	OrcPriestInView() bool
	// CorpsesInRange counts corpses within spore range
	CorpsesInRange() int
	// Battlefield binds the monsters in view to the caster's range context
	Battlefield(rc spells.RangeContext) spells.Battlefield
}
