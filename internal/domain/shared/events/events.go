package events

import "time"

// DomainEvent is implemented by every fact the domain wants published.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

