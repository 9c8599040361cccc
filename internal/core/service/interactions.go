package service

import (
	"context"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
)

var _ port.InteractionsProducer = noInteractions{}

type noInteractions struct{}

func (noInteractions) ProduceInteraction(context.Context, domain.Interaction) error {
	return nil
}

// NoInteractions discards interaction events. Wired when no broker is
// configured, so the page keeps working without the analytics stream.
var NoInteractions port.InteractionsProducer = noInteractions{}
