package inscription

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/samber/lo"
)

// Save writes the block in one transaction. Nothing is visible if it fails, and the cursor stays where it was.
func (c *InscribeContext) Save(ctx context.Context) (err error) {
	if len(c.inscriptions) == 0 {
		return errors.Wrap(errs.InvalidArgument, "empty block")
	}
	var (
		first   = c.inscriptions[0]
		last    = c.inscriptions[len(c.inscriptions)-1]
		startAt = time.Now()
	)
	defer func() {
		observeBlockCommit(last.Id, err, startAt)
	}()

	err = c.store.WriteTx(ctx, func(tx datagateway.InscriptionDataGatewayWithTx) error {
		for _, insc := range c.inscriptions {
			if !insc.Verified.IsTerminal() {
				return errors.Wrapf(errs.InternalError, "inscription %d is not verified", insc.Id)
			}
			if err := tx.InscriptionInscribe(ctx, insc); err != nil {
				return errors.Wrapf(err, "failed to inscribe inscription %d", insc.Id)
			}
		}

		for _, insc := range c.inscriptions {
			if !insc.IsSuccessful() || insc.MimeCategory != entity.MimeCategoryJson {
				continue
			}
			if err := c.saveInscribeJson(ctx, tx, insc); err != nil {
				return errors.WithStack(err)
			}
		}

		for _, insc := range c.inscriptions {
			if !insc.IsSuccessful() {
				continue
			}
			if err := c.marketplace.OnInscribe(ctx, tx, insc); err != nil {
				return errors.Wrapf(err, "marketplace hook failed for inscription %d", insc.Id)
			}
		}

		if err := tx.SetTopInscriptionId(ctx, last.Id); err != nil {
			return errors.Wrap(err, "failed to set top inscription id")
		}

		if err := c.saveToken(ctx, tx); err != nil {
			return errors.WithStack(err)
		}

		for _, transfer := range c.tokenTransfers {
			if err := tx.InscriptionTokenTransferInsert(ctx, transfer); err != nil {
				return errors.Wrapf(err, "failed to insert token transfer %d", transfer.InscriptionId)
			}
		}

		for _, transfer := range c.nftTransfers {
			if err := tx.InscriptionNftTransferInsert(ctx, transfer); err != nil {
				return errors.Wrapf(err, "failed to insert nft transfer %d", transfer.InscriptionId)
			}
		}

		holderIds := lo.Keys(c.nftHolders)
		sort.Slice(holderIds, func(i, j int) bool { return holderIds[i] < holderIds[j] })
		for _, id := range holderIds {
			if err := tx.InscriptionNftHolderUpdate(ctx, id, c.nftHolders[id]); err != nil {
				return errors.Wrapf(err, "failed to update nft holder of %d", id)
			}
		}
		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}
	c.store.CacheInscriptions(c.inscriptions)

	logger.InfoContext(ctx, "Inscribed inscriptions",
		slog.Uint64("from_id", first.Id),
		slog.Int("count", len(c.inscriptions)),
		slog.Uint64("from_block", first.BlockNumber),
		slog.Uint64("to_block", last.BlockNumber),
		slog.Duration("duration", time.Since(startAt)),
	)
	return nil
}

func (c *InscribeContext) saveInscribeJson(ctx context.Context, tx datagateway.InscriptionDataGatewayWithTx, insc *entity.Inscription) error {
	deploy, ok := c.collections[insc.Id]
	if !ok {
		// token operations are written by saveToken
		return nil
	}
	if err := tx.InscriptionNftCollectionInsert(ctx, deploy.collection); err != nil {
		return errors.Wrapf(err, "failed to insert collection %s", deploy.collection.TxHash)
	}
	for _, id := range deploy.itemIds {
		if err := tx.InscriptionNftSetCollection(ctx, id, deploy.collection.TxHash); err != nil {
			return errors.Wrapf(err, "failed to set collection of %d", id)
		}
	}
	return nil
}

func (c *InscribeContext) saveToken(ctx context.Context, tx datagateway.InscriptionDataGatewayWithTx) error {
	ticks := lo.Keys(c.tokenCache)
	sort.Strings(ticks)

	for _, tick := range ticks {
		if t := c.tokenCache[tick]; t.Deploy {
			if err := tx.InscriptionTokenInsert(ctx, t); err != nil {
				return errors.Wrapf(err, "failed to insert token %s", tick)
			}
		}
	}

	changedTicks := lo.Keys(c.tokenBalanceChange)
	sort.Strings(changedTicks)
	for _, tick := range changedTicks {
		t, ok := c.tokenCache[tick]
		if !ok {
			return errors.Wrapf(errs.InternalError, "balance change of unknown token %s", tick)
		}
		changes := c.tokenBalanceChange[tick]
		addresses := lo.Keys(changes)
		sort.Strings(addresses)
		for _, address := range addresses {
			holderDelta, err := tx.InscriptionTokenBalanceUpdate(ctx, tick, address, changes[address])
			if err != nil {
				return errors.Wrapf(err, "failed to update %s balance of %s", tick, address)
			}
			t.AddHolders(holderDelta)
		}
		t.Updated = true
	}

	for _, tick := range ticks {
		if t := c.tokenCache[tick]; t.Updated {
			if err := tx.InscriptionTokenUpdate(ctx, t); err != nil {
				return errors.Wrapf(err, "failed to update token %s", tick)
			}
		}
	}
	return nil
}
