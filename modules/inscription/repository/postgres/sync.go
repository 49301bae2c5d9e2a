package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/modules/inscription/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgUniqueViolation = "23505"

func (r *Repository) CreatePendingInscription(ctx context.Context, inscription *entity.Inscription) error {
	if inscription.Verified != entity.VerifiedStatusPending {
		return errors.Wrapf(errs.InvalidArgument, "inscription %d is not pending", inscription.Id)
	}
	params, err := mapInscriptionTypeToParams(inscription)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := r.queries.CreateInscription(ctx, gen.CreateInscriptionParams(params)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errors.Wrapf(errs.Duplicate, "inscription %d already exists", inscription.Id)
		}
		return errors.Wrap(err, "error during exec CreateInscription")
	}
	return nil
}

func (r *Repository) SetTopInscriptionSyncId(ctx context.Context, id uint64) error {
	return r.setCursor(ctx, cursorTopInscriptionSyncId, id)
}

func (r *Repository) SetSyncBlockNumber(ctx context.Context, blockNumber uint64) error {
	return r.setCursor(ctx, cursorSyncBlockNumber, blockNumber)
}
