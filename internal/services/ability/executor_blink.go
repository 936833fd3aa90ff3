package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
)

// blinkExecutor handles the blink mutation and evoked blinking
type blinkExecutor struct {
	engine *Engine
	id     abilities.ID
}

func newBlinkExecutor(e *Engine, id abilities.ID) Handler {
	return &blinkExecutor{engine: e, id: id}
}

func (b *blinkExecutor) Key() abilities.ID {
	return b.id
}

func (b *blinkExecutor) Execute(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	// a blink that lands nowhere still takes the turn
	if _, err := b.engine.apply(ctx, &Effect{Ability: b.id}); err != nil {
		return OutcomeNone, err
	}
	return OutcomeSuccess, nil
}
