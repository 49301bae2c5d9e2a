package inscription

import (
	"context"

	"github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
)

// MarketplaceHook is called inside the block transaction for every successful inscription.
// An error aborts the whole block.
type MarketplaceHook interface {
	OnInscribe(ctx context.Context, tx datagateway.InscriptionDataGatewayWithTx, inscription *entity.Inscription) error
}

type NopMarketplaceHook struct{}

func (NopMarketplaceHook) OnInscribe(context.Context, datagateway.InscriptionDataGatewayWithTx, *entity.Inscription) error {
	return nil
}

// MarketplaceHookFunc adapts a function to MarketplaceHook.
type MarketplaceHookFunc func(ctx context.Context, tx datagateway.InscriptionDataGatewayWithTx, inscription *entity.Inscription) error

func (f MarketplaceHookFunc) OnInscribe(ctx context.Context, tx datagateway.InscriptionDataGatewayWithTx, inscription *entity.Inscription) error {
	return f(ctx, tx, inscription)
}
