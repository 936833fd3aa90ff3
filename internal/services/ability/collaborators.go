package ability

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockability -source=collaborators.go

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

// Messenger shows game text to the player
type Messenger interface {
	Say(msg string)
}

// Prompter asks the player to decide something
type Prompter interface {
	// YesNo asks a yes/no question; def is the answer on a bare return
	YesNo(prompt string, def bool) bool
	// ChooseSpell picks one of known, or returns spells.NoSpell on cancel
	ChooseSpell(prompt string, known []spells.ID) spells.ID
}

// TargetRequest describes what a directed ability may aim at
type TargetRequest struct {
	Ability abilities.ID
	Range   int
	Prompt  string
	// Hostile defaults the cursor to the nearest foe
	Hostile bool
	// NeedsPath is false for abilities that hit a cell directly
	NeedsPath bool
}

// Target is a chosen aim point relative to the player
type Target struct {
	Pos shared.Coord
}

// Self reports whether the player aimed at themself
func (t *Target) Self() bool {
	return t.Pos == shared.Coord{}
}

// Targeter asks the player where to aim
type Targeter interface {
	// ChooseTarget returns nil when the player cancels
	ChooseTarget(ctx context.Context, req TargetRequest) (*Target, error)
}

// ActionKind buckets counted actions for the player's statistics
type ActionKind string

const (
	ActionAbility ActionKind = "ability"
	ActionInvoke  ActionKind = "invoke"
)

// Progression records practice and action counts
type Progression interface {
	Practise(id abilities.ID)
	CountAction(kind ActionKind, id abilities.ID)
}

// Effect is a change to the dungeon the player model cannot make itself:
// summons, beams, terrain, items.
type Effect struct {
	Ability abilities.ID
	Power   int
	Target  *Target
	Range   int
	// Variant names the concrete beam, cloud or monster picked at random
	Variant string
	// Hostile summons turn on the player
	Hostile bool
}

// Effector applies dungeon effects on behalf of handlers
type Effector interface {
	// Apply reports false when the effect could not happen and the
	// activation should be abandoned without spending a turn.
	Apply(ctx context.Context, eff *Effect) (bool, error)
}
