package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

const RatingSummarySchemaTextV1 = `{
	"type": "record",
	"namespace": "emporium.ratings",
	"name": "rating_summary",
	"fields": [
		{"name": "product_id", "type": "string"},
		{"name": "count", "type": "long"},
		{"name": "sum", "type": "long"}
	]
}`

type RatingSummaryV1 struct {
	ProductID string `avro:"product_id"`
	Count     int64  `avro:"count"`
	Sum       int64  `avro:"sum"`
}

func RatingSummaryV1Avro() avro.Schema {
	return avro.MustParse(RatingSummarySchemaTextV1)
}

// A RatingSummaryCodec stores [RatingSummaryV1] values in plain avro,
// without registry framing. It is meant for state tables private to
// one consumer group.
type RatingSummaryCodec struct{}

func (RatingSummaryCodec) Encode(value any) ([]byte, error) {
	const op = "RatingSummaryCodec.Encode"

	v, ok := value.(RatingSummaryV1)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected type %T", op, value)
	}
	data, err := avro.Marshal(ratingSummarySchema, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

func (RatingSummaryCodec) Decode(data []byte) (any, error) {
	const op = "RatingSummaryCodec.Decode"

	var v RatingSummaryV1
	if err := avro.Unmarshal(ratingSummarySchema, data, &v); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

var ratingSummarySchema = RatingSummaryV1Avro()
