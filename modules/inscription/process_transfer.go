package inscription

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
)

// processTransfer moves every referenced inscription from the sender to the recipient.
// The payload is a sequence of TransferTxHexLength wide tx hashes, and it's all-or-nothing.
func (c *InscribeContext) processTransfer(ctx context.Context, insc *entity.Inscription) (bool, error) {
	data := insc.MimeData
	if len(data) == 0 || len(data)%TransferTxHexLength != 0 {
		return reject(ctx, "malformed transfer payload", slogx.Int("length", len(data)))
	}

	var (
		transfers = make([]entity.NftTransfer, 0, len(data)/TransferTxHexLength)
		holders   = make(map[uint64]string, len(data)/TransferTxHexLength)
		index     uint32
	)
	for i := 0; i < len(data); i += TransferTxHexLength {
		ref := data[i : i+TransferTxHexLength]

		target, ok, err := c.store.GetInscriptionByTx(ctx, ref)
		if err != nil {
			return false, errors.WithStack(err)
		}
		if !ok {
			return reject(ctx, "transfer target not found", slogx.String("target_tx", ref))
		}

		// an earlier reference of the same payload wins over the block state
		holder, ok := holders[target.Id]
		if !ok {
			holder, ok, err = c.nftHolder(ctx, target.Id)
			if err != nil {
				return false, errors.WithStack(err)
			}
			if !ok {
				return reject(ctx, "transfer target has no holder", slogx.Uint64("target_id", target.Id))
			}
		}
		if !sameAddress(holder, insc.From) {
			return reject(ctx, "sender is not the holder of transfer target",
				slogx.Uint64("target_id", target.Id),
				slogx.String("holder", holder),
			)
		}

		transfers = append(transfers, entity.NftTransfer{
			InscriptionId: insc.Id,
			NftId:         target.Id,
			Index:         index,
		})
		holders[target.Id] = insc.To
		index++
	}

	c.nftTransfers = append(c.nftTransfers, transfers...)
	for id, holder := range holders {
		c.nftHolders[id] = holder
	}
	return true, nil
}
