package datagateway

import (
	"context"

	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
)

// SyncDataGateway is the write side used by the ingester to feed pending inscriptions and watermarks.
type SyncDataGateway interface {
	// CreatePendingInscription stores an inscription received from the chain. Its status must be pending.
	CreatePendingInscription(ctx context.Context, inscription *entity.Inscription) error
	SetTopInscriptionSyncId(ctx context.Context, id uint64) error
	SetSyncBlockNumber(ctx context.Context, blockNumber uint64) error
}
