package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/world"
	"github.com/KirkDiggler/crawl-talents/internal/services/talent"
)

// Outcome is what a handler reports back to the engine
type Outcome int

const (
	// OutcomeNone is never a valid handler result
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFail
	OutcomeAbort
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFail:
		return "fail"
	case OutcomeAbort:
		return "abort"
	default:
		return "none"
	}
}

// Handler performs the effect of one ability.
// Handlers never pay the ability's table costs; the engine settles those
// once the handler reports success.
type Handler interface {
	// Key returns the ability this handler performs
	Key() abilities.ID

	// Execute performs the ability. When in.Fail is set the handler must
	// return OutcomeFail at its failure point, unless the ability is
	// flagged Hostile and handles failure itself.
	Execute(ctx context.Context, in *ExecuteInput) (Outcome, error)
}

// ExecuteInput is everything a handler may look at or change
type ExecuteInput struct {
	Player *player.Player
	World  world.World
	Talent talent.Talent
	Fail   bool
	Roller dice.Roller
}
