package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/greenmart/storefront/internal/core/port"
	"github.com/greenmart/storefront/pkg/schema"
	"github.com/lovoo/goka"
)

var _ port.SearchTallyProcessor = (*SearchTallyProcessor)(nil)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// An interactionEventCodec used for serde [schema.InteractionV1]
type interactionEventCodec struct {
	serde Serde
}

func newInteractionEventCodec(s Serde) interactionEventCodec {
	return interactionEventCodec{s}
}

func (c interactionEventCodec) Encode(v any) ([]byte, error) {
	const op = "interactionEventCodec.Encode"
	if _, ok := v.(schema.InteractionV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c interactionEventCodec) Decode(data []byte) (any, error) {
	const op = "interactionEventCodec.Decode"
	var s schema.InteractionV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

// A tallyValue is the running count of interactions per tally key.
type tallyValue int64

// A tallyValueCodec used for serde [tallyValue]
type tallyValueCodec struct{}

func (tallyValueCodec) Encode(v any) ([]byte, error) {
	const op = "tallyValueCodec.Encode"
	tv, ok := v.(tallyValue)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendInt([]byte(nil), int64(tv), 10)
	return data, nil
}

func (tallyValueCodec) Decode(data []byte) (any, error) {
	const op = "tallyValueCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return tallyValue(n), nil
}

// A SearchTallyProcessor counts interactions per tally key
// (category tag or search term) from the stream into a group table.
type SearchTallyProcessor struct {
	opPrefix string
	proc     processor
}

func NewSearchTallyProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	interactionSerde Serde,
) (*SearchTallyProcessor, error) {
	const op = "NewSearchTallyProc"

	var p SearchTallyProcessor

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newInteractionEventCodec(interactionSerde),
			p.processFn,
		),
		goka.Persist(tallyValueCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.opPrefix = "SearchTallyProcessor"
	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}

	return &p, nil
}

func (p *SearchTallyProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *SearchTallyProcessor) Close() {
	p.proc.close()
}

func (p *SearchTallyProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.InteractionV1)

	var count tallyValue
	if v, ok := ctx.Value().(tallyValue); ok {
		count = v
	}
	count++
	ctx.SetValue(count)

	log.Info(
		"tallied interaction",
		"key", ctx.Key(),
		"kind", event.Kind,
		"count", int64(count),
	)
}
