// Package talent works out which abilities a player can use right now,
// how likely each is to fail and which hotkey it lives on.
package talent

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/world"
)

// Talent is an ability as the player currently has it
type Talent struct {
	Which        abilities.ID `json:"which"`
	Hotkey       rune         `json:"hotkey"` // 0 when unbound
	Fail         int          `json:"fail"`
	IsInvocation bool         `json:"is_invocation"`
}

// Name is the display name of the talent's ability
func (t Talent) Name() string {
	return abilities.Name(t.Which)
}

// Resolver builds talents for a player standing in a world
type Resolver struct {
	world       world.World
	letterRules []player.LetterRule
}

// ResolverConfig holds the collaborators of a Resolver
type ResolverConfig struct {
	World world.World
	// LetterRules are the auto_ability_letters preferences, checked in
	// order before falling back to the first free slot.
	LetterRules []player.LetterRule
}

// NewResolver creates a resolver
func NewResolver(cfg *ResolverConfig) *Resolver {
	if cfg == nil {
		panic("resolver config is required")
	}
	if cfg.World == nil {
		panic("world is required")
	}

	return &Resolver{
		world:       cfg.World,
		letterRules: cfg.LetterRules,
	}
}

// World is the environment the resolver reads
func (r *Resolver) World() world.World {
	return r.world
}

// GetTalent resolves a single ability. A confused player gets NonAbility
// back for abilities that need a clear head.
func (r *Resolver) GetTalent(p *player.Player, id abilities.ID, checkConfused bool) Talent {
	which := r.Fixup(p, id)
	result := Talent{Which: which}

	def := abilities.Lookup(which)
	if checkConfused && p.Confused() && !def.Flags.Has(abilities.FlagConfOK) {
		result.Which = abilities.NonAbility
		return result
	}

	if slot := r.lookupSlot(p, which); slot >= 0 {
		result.Hotkey = player.IndexToLetter(slot)
	}

	result.Fail, result.IsInvocation = r.FailureRate(p, id)
	return result
}

func (r *Resolver) lookupSlot(p *player.Player, id abilities.ID) int {
	if id == abilities.NonAbility {
		return -1
	}
	return p.AbilitySlot(id, func(a abilities.ID) abilities.ID {
		return r.Fixup(p, a)
	})
}

// TalentByHotkey finds the talent bound to key
func TalentByHotkey(list []Talent, key rune) (Talent, bool) {
	for _, t := range list {
		if key != 0 && t.Hotkey == key {
			return t, true
		}
	}
	return Talent{}, false
}
