package events

// Event type constants
const (
	EventTypeBeforeActivation EventType = "before_activation"
	EventTypeAfterActivation  EventType = "after_activation"
	EventTypeCostsPaid        EventType = "costs_paid"
)

// Priority levels, lower runs first
const (
	PriorityRules   = 0   // game rules that may veto
	PriorityDefault = 100 // ordinary listeners
	PriorityLogging = 500 // observers that only record
)
