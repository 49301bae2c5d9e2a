package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
)

func (u *Usecase) GetSyncState(ctx context.Context) (entity.SyncState, error) {
	topId, err := u.inscriptionDg.GetTopInscriptionId(ctx)
	if err != nil {
		return entity.SyncState{}, errors.Wrap(err, "error during GetTopInscriptionId")
	}
	syncId, err := u.inscriptionDg.GetTopInscriptionSyncId(ctx)
	if err != nil {
		return entity.SyncState{}, errors.Wrap(err, "error during GetTopInscriptionSyncId")
	}
	syncBlockNumber, err := u.inscriptionDg.GetSyncBlockNumber(ctx)
	if err != nil {
		return entity.SyncState{}, errors.Wrap(err, "error during GetSyncBlockNumber")
	}
	return entity.SyncState{
		TopInscriptionId:     topId,
		TopInscriptionSyncId: syncId,
		SyncBlockNumber:      syncBlockNumber,
	}, nil
}
