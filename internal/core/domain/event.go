package domain

import "time"

type OrderEventType string

const (
	OrderPlaced        OrderEventType = "placed"
	OrderStatusChanged OrderEventType = "status_changed"
	OrderDeleted       OrderEventType = "deleted"
)

type OrderEvent struct {
	Type       OrderEventType
	Order      Order
	OccurredAt time.Time
}

type ReviewEventType string

const (
	ReviewPosted  ReviewEventType = "posted"
	ReviewRevised ReviewEventType = "revised"
	ReviewRemoved ReviewEventType = "removed"
)

// A ReviewEvent carries the rating before a revision so consumers can
// keep running aggregates without reading the store.
type ReviewEvent struct {
	Type           ReviewEventType
	Review         Review
	PreviousRating int
	OccurredAt     time.Time
}
