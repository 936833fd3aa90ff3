package events

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
)

// BeforeActivationEvent is emitted after every check has passed and
// before the failure roll. Cancelling it aborts the activation without a
// turn being spent.
type BeforeActivationEvent struct {
	BaseEvent
	ActivationID string
	Ability      abilities.ID
	Fail         int // percent
}

// AfterActivationEvent is emitted once the outcome is known
type AfterActivationEvent struct {
	BaseEvent
	ActivationID string
	Ability      abilities.ID
	Outcome      string
	TurnUsed     bool
}

// CostsPaidEvent is emitted when a successful activation has been paid for
type CostsPaidEvent struct {
	BaseEvent
	ActivationID string
	Ability      abilities.ID
	MP           int
	HP           int
	Food         int
	Piety        int
	PermanentMP  bool
	PermanentHP  bool
}
