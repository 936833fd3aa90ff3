package world

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

// Monster is a visible monster, positioned relative to the player
type Monster struct {
	Name        string       `json:"name" yaml:"name"`
	Pos         shared.Coord `json:"pos" yaml:"pos"`
	Hostile     bool         `json:"hostile" yaml:"hostile"`
	Threatening bool         `json:"threatening" yaml:"threatening"`
}

// Snapshot is a fixed picture of the surroundings. The player stands at
// the origin.
type Snapshot struct {
	Silence       bool      `json:"silenced" yaml:"silenced"`
	NoAbyss       bool      `json:"no_abyss" yaml:"no_abyss"`
	Abyss         bool      `json:"in_abyss" yaml:"in_abyss"`
	Sanctuary     bool      `json:"sanctuary" yaml:"sanctuary"`
	Incorruptible string    `json:"incorruptible,omitempty" yaml:"incorruptible"`
	Cloud         bool      `json:"cloud" yaml:"cloud"`
	SingleLevel   bool      `json:"single_level" yaml:"single_level"`
	Terrain       Terrain   `json:"terrain" yaml:"terrain"`
	Corpses       int       `json:"corpses" yaml:"corpses"`
	OrcPriest     bool      `json:"orc_priest" yaml:"orc_priest"`
	Monsters      []Monster `json:"monsters,omitempty" yaml:"monsters"`
}

var _ World = (*Snapshot)(nil)

func (s *Snapshot) Silenced() bool            { return s.Silence }
func (s *Snapshot) AbyssExists() bool         { return !s.NoAbyss }
func (s *Snapshot) InAbyss() bool             { return s.Abyss }
func (s *Snapshot) SanctuaryActive() bool     { return s.Sanctuary }
func (s *Snapshot) CorruptionBlocker() string { return s.Incorruptible }
func (s *Snapshot) CloudHere() bool           { return s.Cloud }
func (s *Snapshot) OneLevelBranch() bool      { return s.SingleLevel }
func (s *Snapshot) TerrainHere() Terrain      { return s.Terrain }
func (s *Snapshot) CorpsesInRange() int       { return s.Corpses }
func (s *Snapshot) OrcPriestInView() bool     { return s.OrcPriest }

// ReciteAudience is true when a hostile monster is in view
func (s *Snapshot) ReciteAudience() bool {
	for _, m := range s.Monsters {
		if m.Hostile {
			return true
		}
	}
	return false
}

func (s *Snapshot) Battlefield(rc spells.RangeContext) spells.Battlefield {
	return &battlefield{RangeContext: rc, monsters: s.Monsters}
}
