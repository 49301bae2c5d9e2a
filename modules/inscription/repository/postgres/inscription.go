package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/modules/inscription/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	cursorTopInscriptionId     = "top_inscription_id"
	cursorTopInscriptionSyncId = "top_inscription_sync_id"
	cursorSyncBlockNumber      = "sync_block_number"
)

func (r *Repository) getCursor(ctx context.Context, name string) (uint64, error) {
	value, err := r.queries.GetCursor(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "error during query %s", name)
	}
	return uint64(value), nil
}

func (r *Repository) setCursor(ctx context.Context, name string, value uint64) error {
	if err := r.queries.SetCursor(ctx, gen.SetCursorParams{Name: name, Value: int64(value)}); err != nil {
		return errors.Wrapf(err, "error during exec %s", name)
	}
	return nil
}

func (r *Repository) GetTopInscriptionId(ctx context.Context) (uint64, error) {
	return r.getCursor(ctx, cursorTopInscriptionId)
}

func (r *Repository) GetTopInscriptionSyncId(ctx context.Context) (uint64, error) {
	return r.getCursor(ctx, cursorTopInscriptionSyncId)
}

func (r *Repository) GetSyncBlockNumber(ctx context.Context) (uint64, error) {
	return r.getCursor(ctx, cursorSyncBlockNumber)
}

func (r *Repository) SetTopInscriptionId(ctx context.Context, id uint64) error {
	return r.setCursor(ctx, cursorTopInscriptionId, id)
}

func (r *Repository) GetInscriptionById(ctx context.Context, id uint64) (*entity.Inscription, error) {
	model, err := r.queries.GetInscriptionById(ctx, int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	inscription, err := mapInscriptionModelToType(model)
	return inscription, errors.WithStack(err)
}

func (r *Repository) GetInscriptionByTx(ctx context.Context, txHash string) (*entity.Inscription, error) {
	model, err := r.queries.GetInscriptionByTx(ctx, txHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	inscription, err := mapInscriptionModelToType(model)
	return inscription, errors.WithStack(err)
}

func (r *Repository) InscriptionSignExists(ctx context.Context, signature string) (bool, error) {
	ok, err := r.queries.InscriptionSignExists(ctx, signature)
	if err != nil {
		return false, errors.Wrap(err, "error during query")
	}
	return ok, nil
}

func (r *Repository) InscriptionInscribe(ctx context.Context, inscription *entity.Inscription) error {
	params, err := mapInscriptionTypeToParams(inscription)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := r.queries.UpsertInscription(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec UpsertInscription")
	}
	if inscription.Signature != "" && inscription.IsSuccessful() {
		if err := r.queries.CreateInscriptionSignature(ctx, gen.CreateInscriptionSignatureParams{
			Signature:     inscription.Signature,
			InscriptionID: int64(inscription.Id),
		}); err != nil {
			return errors.Wrap(err, "error during exec CreateInscriptionSignature")
		}
	}
	if inscription.HasHolder() {
		if err := r.InscriptionNftHolderUpdate(ctx, inscription.Id, inscription.To); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func (r *Repository) GetInscriptionNftHolderById(ctx context.Context, id uint64) (string, error) {
	holder, err := r.queries.GetNftHolder(ctx, int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errors.WithStack(errs.NotFound)
		}
		return "", errors.Wrap(err, "error during query")
	}
	return holder, nil
}

func (r *Repository) InscriptionNftHolderUpdate(ctx context.Context, id uint64, address string) error {
	if err := r.queries.UpsertNftHolder(ctx, gen.UpsertNftHolderParams{
		InscriptionID: int64(id),
		Address:       address,
	}); err != nil {
		return errors.Wrap(err, "error during exec UpsertNftHolder")
	}
	return nil
}

func (r *Repository) GetInscriptionNftCollectionById(ctx context.Context, id uint64) (string, error) {
	collectionTx, err := r.queries.GetNftCollectionOf(ctx, int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errors.WithStack(errs.NotFound)
		}
		return "", errors.Wrap(err, "error during query")
	}
	return collectionTx, nil
}

func (r *Repository) GetNftCollectionByTx(ctx context.Context, txHash string) (*entity.NftCollection, error) {
	model, err := r.queries.GetNftCollection(ctx, txHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	return mapNftCollectionModelToType(model), nil
}

func (r *Repository) InscriptionNftCollectionInsert(ctx context.Context, collection *entity.NftCollection) error {
	affected, err := r.queries.CreateNftCollection(ctx, mapNftCollectionTypeToParams(collection))
	if err != nil {
		return errors.Wrap(err, "error during exec CreateNftCollection")
	}
	if affected == 0 {
		return errors.Wrapf(errs.Duplicate, "collection %s already exists", collection.TxHash)
	}
	return nil
}

func (r *Repository) InscriptionNftSetCollection(ctx context.Context, id uint64, collectionTx string) error {
	affected, err := r.queries.CreateNftCollectionMember(ctx, gen.CreateNftCollectionMemberParams{
		InscriptionID:    int64(id),
		CollectionTxHash: strings.ToLower(collectionTx),
	})
	if err != nil {
		return errors.Wrap(err, "error during exec CreateNftCollectionMember")
	}
	if affected == 0 {
		return errors.Wrapf(errs.Duplicate, "inscription %d already belongs to a collection", id)
	}
	return nil
}

func (r *Repository) InscriptionNftTransferInsert(ctx context.Context, transfer entity.NftTransfer) error {
	if err := r.queries.CreateNftTransfer(ctx, gen.CreateNftTransferParams{
		InscriptionID: int64(transfer.InscriptionId),
		Idx:           int32(transfer.Index),
		NftID:         int64(transfer.NftId),
	}); err != nil {
		return errors.Wrap(err, "error during exec CreateNftTransfer")
	}
	return nil
}

func (r *Repository) GetNftTransfersByInscriptionId(ctx context.Context, id uint64) ([]entity.NftTransfer, error) {
	models, err := r.queries.GetNftTransfersByInscriptionId(ctx, int64(id))
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(m gen.InscriptionNftTransfer, _ int) entity.NftTransfer {
		return entity.NftTransfer{
			InscriptionId: uint64(m.InscriptionID),
			NftId:         uint64(m.NftID),
			Index:         uint32(m.Idx),
		}
	}), nil
}

func (r *Repository) GetTokens(ctx context.Context) (map[string]*entity.Token, error) {
	models, err := r.queries.GetTokens(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	tokens := make(map[string]*entity.Token, len(models))
	for _, model := range models {
		token, err := mapTokenModelToType(model)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to map token %s", model.Tick)
		}
		tokens[token.Tick] = token
	}
	return tokens, nil
}

func (r *Repository) GetToken(ctx context.Context, tick string) (*entity.Token, error) {
	model, err := r.queries.GetToken(ctx, tick)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	token, err := mapTokenModelToType(model)
	return token, errors.WithStack(err)
}

func (r *Repository) InscriptionTokenInsert(ctx context.Context, token *entity.Token) error {
	affected, err := r.queries.CreateToken(ctx, mapTokenTypeToParams(token))
	if err != nil {
		return errors.Wrap(err, "error during exec CreateToken")
	}
	if affected == 0 {
		return errors.Wrapf(errs.Duplicate, "token %s already exists", token.Tick)
	}
	return nil
}

func (r *Repository) InscriptionTokenUpdate(ctx context.Context, token *entity.Token) error {
	affected, err := r.queries.UpdateToken(ctx, gen.UpdateTokenParams{
		Tick:    token.Tick,
		Minted:  numericFromDecimal(token.Minted),
		Holders: int64(token.Holders),
	})
	if err != nil {
		return errors.Wrap(err, "error during exec UpdateToken")
	}
	if affected == 0 {
		return errors.Wrapf(errs.NotFound, "token %s not found", token.Tick)
	}
	return nil
}

func (r *Repository) GetTokenBalance(ctx context.Context, tick string, address string) (decimal.Decimal, error) {
	amount, err := r.queries.GetTokenBalance(ctx, gen.GetTokenBalanceParams{
		Tick:    tick,
		Address: strings.ToLower(address),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, errors.Wrap(err, "error during query")
	}
	balance, err := decimalFromNumeric(amount)
	return balance, errors.WithStack(err)
}

func (r *Repository) InscriptionTokenBalanceUpdate(ctx context.Context, tick string, address string, delta decimal.Decimal) (int64, error) {
	address = strings.ToLower(address)

	prev := decimal.Zero
	amount, err := r.queries.GetTokenBalanceForUpdate(ctx, gen.GetTokenBalanceForUpdateParams{
		Tick:    tick,
		Address: address,
	})
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return 0, errors.Wrap(err, "error during query")
	default:
		prev, err = decimalFromNumeric(amount)
		if err != nil {
			return 0, errors.WithStack(err)
		}
	}

	next := prev.Add(delta)
	if next.IsNegative() {
		return 0, errors.Wrapf(errs.InvalidArgument, "negative balance of %s for %s", tick, address)
	}
	if next.IsZero() {
		if err := r.queries.DeleteTokenBalance(ctx, gen.DeleteTokenBalanceParams{
			Tick:    tick,
			Address: address,
		}); err != nil {
			return 0, errors.Wrap(err, "error during exec DeleteTokenBalance")
		}
	} else if err := r.queries.UpsertTokenBalance(ctx, gen.UpsertTokenBalanceParams{
		Tick:    tick,
		Address: address,
		Amount:  numericFromDecimal(next),
	}); err != nil {
		return 0, errors.Wrap(err, "error during exec UpsertTokenBalance")
	}

	switch {
	case !prev.IsPositive() && next.IsPositive():
		return 1, nil
	case prev.IsPositive() && !next.IsPositive():
		return -1, nil
	}
	return 0, nil
}

func (r *Repository) InscriptionTokenTransferInsert(ctx context.Context, transfer entity.TokenTransfer) error {
	if err := r.queries.CreateTokenTransfer(ctx, gen.CreateTokenTransferParams{
		Tick:          transfer.Tick,
		InscriptionID: int64(transfer.InscriptionId),
	}); err != nil {
		return errors.Wrap(err, "error during exec CreateTokenTransfer")
	}
	return nil
}

func (r *Repository) GetTokenTransfers(ctx context.Context, tick string) ([]uint64, error) {
	ids, err := r.queries.GetTokenTransfers(ctx, tick)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(ids, func(id int64, _ int) uint64 { return uint64(id) }), nil
}
