package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// berserkExecutor handles Trog's berserk and evoked rage
type berserkExecutor struct {
	engine *Engine
	id     abilities.ID
}

func newBerserkExecutor(e *Engine, id abilities.ID) Handler {
	return &berserkExecutor{engine: e, id: id}
}

func (b *berserkExecutor) Key() abilities.ID {
	return b.id
}

func (b *berserkExecutor) Execute(_ context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	b.engine.say("A red film seems to cover your vision as you go berserk!")
	goBerserk(in.Player, in.Roller)
	return OutcomeSuccess, nil
}

func goBerserk(p *player.Player, r dice.Roller) {
	increaseDuration(p, shared.DurBerserk, 10+r.Random2Avg(25, 2), 0)
}
