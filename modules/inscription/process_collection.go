package inscription

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
)

type nftCollectionDeploy struct {
	collection *entity.NftCollection
	itemIds    []uint64 // same order as collection.Items
}

// processCollectionDeploy accepts a collection only if the deployer holds every item
// and none of them belongs to a collection yet.
func (c *InscribeContext) processCollectionDeploy(ctx context.Context, insc *entity.Inscription) (bool, error) {
	collection := &entity.NftCollection{
		TxHash:        insc.TxHash,
		InscriptionId: insc.Id,
		Deployer:      insc.From,
	}
	fields := []struct {
		key string
		dst *string
	}{
		{"name", &collection.Name},
		{"description", &collection.Description},
		{"url", &collection.Url},
		{"image", &collection.Image},
		{"icon", &collection.Icon},
	}
	for _, f := range fields {
		v, ok := insc.Json[f.key].(string)
		if !ok {
			return reject(ctx, "missing or invalid collection field", slogx.String("field", f.key))
		}
		*f.dst = v
	}

	items, ok := insc.Json["items"].([]any)
	if !ok {
		return reject(ctx, "missing or invalid collection items")
	}

	itemIds := make([]uint64, 0, len(items))
	seen := make(map[uint64]struct{}, len(items))
	collection.Items = make([]string, 0, len(items))
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return reject(ctx, "collection item is not an object", slogx.Int("item", i))
		}
		tx, ok := item["tx"].(string)
		if !ok {
			return reject(ctx, "missing or invalid collection item tx", slogx.Int("item", i))
		}

		target, ok, err := c.store.GetInscriptionByTx(ctx, tx)
		if err != nil {
			return false, errors.WithStack(err)
		}
		if !ok {
			return reject(ctx, "collection item not found", slogx.String("item_tx", tx))
		}
		if _, ok := seen[target.Id]; ok {
			return reject(ctx, "duplicate collection item", slogx.String("item_tx", tx))
		}
		if collectionTx, ok := c.collectedItems[target.Id]; ok {
			return reject(ctx, "collection item already collected in this block", slogx.String("item_tx", tx), slogx.String("collection_tx", collectionTx))
		}

		collectionTx, ok, err := c.store.GetNftCollection(ctx, target.Id)
		if err != nil {
			return false, errors.WithStack(err)
		}
		if ok {
			return reject(ctx, "collection item already belongs to a collection", slogx.String("item_tx", tx), slogx.String("collection_tx", collectionTx))
		}

		holder, ok, err := c.store.GetNftHolder(ctx, target.Id)
		if err != nil {
			return false, errors.WithStack(err)
		}
		if !ok || !sameAddress(holder, insc.From) {
			return reject(ctx, "deployer is not the holder of collection item", slogx.String("item_tx", tx), slogx.String("holder", holder))
		}

		seen[target.Id] = struct{}{}
		itemIds = append(itemIds, target.Id)
		collection.Items = append(collection.Items, target.TxHash)
	}

	for _, id := range itemIds {
		c.collectedItems[id] = collection.TxHash
	}
	c.collections[insc.Id] = &nftCollectionDeploy{
		collection: collection,
		itemIds:    itemIds,
	}
	return true, nil
}
