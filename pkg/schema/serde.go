package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

// A Serde frames avro payloads with the schema registry header of the
// schema it was registered with.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	SchemaID() int
}

type serde struct {
	srSerde *sr.Serde
	id      int
}

func (s serde) SchemaID() int {
	return s.id
}

func (s serde) Encode(v any) ([]byte, error) {
	return s.srSerde.Encode(v)
}

func (s serde) Decode(data []byte, v any) error {
	return s.srSerde.Decode(data, v)
}

type Opt func(*serdeOpts) error

type serdeOpts struct {
	subject string
	si      SchemaIdentifier
}

func SubjectOpt(subject string) Opt {
	return func(so *serdeOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		so.subject = subject
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(so *serdeOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		so.si = si
		return nil
	}
}

func NewSerdeOrderEventV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeOrderEventV1"
	return newSerde(ctx, op, OrderEventSchemaTextV1, OrderEventV1{}, opts)
}

func NewSerdeReviewEventV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeReviewEventV1"
	return newSerde(ctx, op, ReviewEventSchemaTextV1, ReviewEventV1{}, opts)
}

func (so *serdeOpts) apply(opts []Opt) error {
	for _, o := range opts {
		if err := o(so); err != nil {
			return err
		}
	}
	if so.subject == "" || so.si == nil {
		return ErrTooFewOpts
	}
	return nil
}

// newSerde registers schemaText under the subject and binds the returned
// id to values of the same type as example.
func newSerde(
	ctx context.Context, op, schemaText string, example any, opts []Opt,
) (Serde, error) {
	var so serdeOpts
	if err := so.apply(opts); err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}

	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := so.si.DetermineID(ctx, so.subject, schemaText)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}
	slog.Debug("schema registered", "op", op, "subject", so.subject, "id", id)

	var srSerde sr.Serde
	srSerde.Register(
		id,
		example,
		sr.EncodeFn(AvroEncodeFn(avroSchema)),
		sr.DecodeFn(AvroDecodeFn(avroSchema)),
	)
	return serde{srSerde: &srSerde, id: id}, nil
}
