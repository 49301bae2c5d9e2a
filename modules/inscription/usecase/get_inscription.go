package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
)

// InscriptionDetail is an inscription with its current NFT state.
type InscriptionDetail struct {
	Inscription  *entity.Inscription
	Holder       string // empty if the inscription has no holder
	CollectionTx string // empty if the inscription doesn't belong to any collection
	Transfers    []entity.NftTransfer
}

func (u *Usecase) GetInscriptionByTx(ctx context.Context, txHash string) (*InscriptionDetail, error) {
	inscription, err := u.inscriptionDg.GetInscriptionByTx(ctx, txHash)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetInscriptionByTx")
	}

	holder, err := u.inscriptionDg.GetInscriptionNftHolderById(ctx, inscription.Id)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return nil, errors.Wrap(err, "error during GetInscriptionNftHolderById")
	}
	collectionTx, err := u.inscriptionDg.GetInscriptionNftCollectionById(ctx, inscription.Id)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return nil, errors.Wrap(err, "error during GetInscriptionNftCollectionById")
	}
	transfers, err := u.inscriptionDg.GetNftTransfersByInscriptionId(ctx, inscription.Id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetNftTransfersByInscriptionId")
	}

	return &InscriptionDetail{
		Inscription:  inscription,
		Holder:       holder,
		CollectionTx: collectionTx,
		Transfers:    transfers,
	}, nil
}

func (u *Usecase) GetNftCollectionByTx(ctx context.Context, txHash string) (*entity.NftCollection, error) {
	collection, err := u.inscriptionDg.GetNftCollectionByTx(ctx, txHash)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetNftCollectionByTx")
	}
	return collection, nil
}
