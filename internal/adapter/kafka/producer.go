package kafka

import (
	"context"
	"log/slog"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
	"github.com/greenmart/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.InteractionsProducer = (*InteractionsProducer)(nil)

// A producer is used for composition.
//
// Producing records to kafka broker and closing the underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(ctx context.Context, rs ...*kgo.Record) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// An InteractionsProducer emits [domain.Interaction] events to the
// analytics stream. Records are keyed by the tally key so the counting
// processor sees all events of one key on one partition.
type InteractionsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewInteractionsProducer(
	opts ...ProducerOpt,
) (InteractionsProducer, error) {
	const op = "NewInteractionsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return InteractionsProducer{}, opErr(err, op)
		}
	}

	opPrefix := "InteractionsProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return InteractionsProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p InteractionsProducer) Close() {
	p.producer.close()
}

func (p InteractionsProducer) ProduceInteraction(
	ctx context.Context, v domain.Interaction,
) error {
	const op = "ProduceInteraction"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, &r); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p InteractionsProducer) createRecord(
	v domain.Interaction,
) (kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(v)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return kgo.Record{}, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(v.TallyKey())
	return kgo.Record{Key: msgKey, Value: b}, nil
}

func (InteractionsProducer) toSchema(v domain.Interaction) schema.InteractionV1 {
	return interactionToSchemaV1(v)
}
