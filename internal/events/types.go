// Package events carries ability activation notices to whoever listens:
// the log, achievement tracking, a UI.
package events

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
)

// EventType represents the type of event
type EventType string

// Event is the base interface for all events
type Event interface {
	GetType() EventType
	GetActor() *player.Player
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Actor     *player.Player
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType       { return e.Type }
func (e *BaseEvent) GetActor() *player.Player { return e.Actor }
func (e *BaseEvent) IsCancelled() bool        { return e.Cancelled }
func (e *BaseEvent) Cancel()                  { e.Cancelled = true }
