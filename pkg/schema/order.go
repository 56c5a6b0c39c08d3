package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const OrderEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "emporium.orders",
	"name": "order_event",
	"fields": [
		{"name": "event_type", "type": "string"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "order_id", "type": "string"},
		{"name": "customer_id", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "total_cents", "type": "long"},
		{"name": "items", "type": {"type": "array", "items": {
			"type": "record",
			"name": "order_item",
			"fields": [
				{"name": "product_id", "type": "string"},
				{"name": "quantity", "type": "int"},
				{"name": "price_cents", "type": "long"}
			]
		}}}
	]
}`

type (
	OrderEventV1 struct {
		EventType  string        `avro:"event_type"`
		OccurredAt time.Time     `avro:"occurred_at"`
		OrderID    string        `avro:"order_id"`
		CustomerID string        `avro:"customer_id"`
		Status     string        `avro:"status"`
		TotalCents int64         `avro:"total_cents"`
		Items      []OrderItemV1 `avro:"items"`
	}

	OrderItemV1 struct {
		ProductID  string `avro:"product_id"`
		Quantity   int    `avro:"quantity"`
		PriceCents int64  `avro:"price_cents"`
	}
)

func OrderEventV1Avro() avro.Schema {
	return avro.MustParse(OrderEventSchemaTextV1)
}
