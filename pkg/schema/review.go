package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const ReviewEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "emporium.reviews",
	"name": "review_event",
	"fields": [
		{"name": "event_type", "type": "string"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "review_id", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "customer_id", "type": "string"},
		{"name": "rating", "type": "int"},
		{"name": "previous_rating", "type": "int", "default": 0}
	]
}`

type ReviewEventV1 struct {
	EventType      string    `avro:"event_type"`
	OccurredAt     time.Time `avro:"occurred_at"`
	ReviewID       string    `avro:"review_id"`
	ProductID      string    `avro:"product_id"`
	CustomerID     string    `avro:"customer_id"`
	Rating         int       `avro:"rating"`
	PreviousRating int       `avro:"previous_rating"`
}

func ReviewEventV1Avro() avro.Schema {
	return avro.MustParse(ReviewEventSchemaTextV1)
}
