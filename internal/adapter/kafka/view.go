package kafka

import (
	"context"
	"log/slog"

	"github.com/greenmart/storefront/internal/core/port"
	"github.com/lovoo/goka"
)

var _ port.StatsReader = (*InteractionStatsView)(nil)

// An InteractionStatsView serves lookups of the interaction tally
// group table.
type InteractionStatsView struct {
	gv *goka.View
}

func NewInteractionStatsView(
	seedBrokers []string, groupTable string,
) (InteractionStatsView, error) {
	const op = "NewInteractionStatsView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		tallyValueCodec{},
	)
	if err != nil {
		return InteractionStatsView{}, opErr(err, op)
	}

	return InteractionStatsView{gv}, nil
}

func (v InteractionStatsView) Run(ctx context.Context) {
	const op = "InteractionStatsView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// GetCount reports how many times the tally key was interacted with.
// A missing key reports zero.
func (v InteractionStatsView) GetCount(key string) (int64, error) {
	const op = "InteractionStatsView.GetCount"

	val, err := v.gv.Get(key)
	if err != nil {
		return 0, opErr(err, op)
	}
	if val == nil {
		return 0, nil
	}

	tv, ok := val.(tallyValue)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(tv), nil
}
