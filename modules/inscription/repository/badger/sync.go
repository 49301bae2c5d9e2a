package badger

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
)

func (r *Repository) CreatePendingInscription(ctx context.Context, inscription *entity.Inscription) error {
	if inscription.Verified != entity.VerifiedStatusPending {
		return errors.Wrapf(errs.InvalidArgument, "inscription %d is not pending", inscription.Id)
	}
	data, err := marshal(inscription)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		ok, err := exists(txn, inscriptionKey(inscription.Id))
		if err != nil {
			return errors.WithStack(err)
		}
		if ok {
			return errors.Wrapf(errs.Duplicate, "inscription %d already exists", inscription.Id)
		}
		if err := txn.Set(inscriptionKey(inscription.Id), data); err != nil {
			return errors.Wrap(err, "failed to set inscription")
		}
		return errors.Wrap(txn.Set(inscriptionTxKey(inscription.TxHash), encodeUint64(inscription.Id)), "failed to set inscription tx index")
	}))
}

func (r *Repository) SetTopInscriptionSyncId(ctx context.Context, id uint64) error {
	return r.setUint64(keyTopInscriptionSyncId, id)
}

func (r *Repository) SetSyncBlockNumber(ctx context.Context, blockNumber uint64) error {
	return r.setUint64(keySyncBlockNumber, blockNumber)
}
