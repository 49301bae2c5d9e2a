package inscription

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/shopspring/decimal"
)

// InscribeContext is the single-use workspace of one block.
// Mutations made while validating are visible to the later inscriptions of the block, and reach the store only on Save.
type InscribeContext struct {
	store       *store
	filter      *InscribeFilter
	marketplace MarketplaceHook

	inscriptions []*entity.Inscription

	nftHolders         map[uint64]string // inscription id -> holder, overrides the persisted holder
	nftTransfers       []entity.NftTransfer
	tokenCache         map[string]*entity.Token
	tokenBalanceChange map[string]map[string]decimal.Decimal // tick -> address -> signed delta
	tokenTransfers     []entity.TokenTransfer

	signatures     map[string]uint64               // signatures of the block -> inscription id
	collections    map[uint64]*nftCollectionDeploy // deploy inscription id -> collection
	collectedItems map[uint64]string               // member inscription id -> collection tx, in this block
}

func newInscribeContext(ctx context.Context, store *store, filter *InscribeFilter, marketplace MarketplaceHook, inscriptions []*entity.Inscription) (*InscribeContext, error) {
	tokens, err := store.GetTokens(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if marketplace == nil {
		marketplace = NopMarketplaceHook{}
	}
	return &InscribeContext{
		store:              store,
		filter:             filter,
		marketplace:        marketplace,
		inscriptions:       inscriptions,
		nftHolders:         make(map[uint64]string),
		nftTransfers:       make([]entity.NftTransfer, 0),
		tokenCache:         tokens,
		tokenBalanceChange: make(map[string]map[string]decimal.Decimal),
		tokenTransfers:     make([]entity.TokenTransfer, 0),
		signatures:         make(map[string]uint64),
		collections:        make(map[uint64]*nftCollectionDeploy),
		collectedItems:     make(map[uint64]string),
	}, nil
}

// Inscribe validates every inscription of the block in order and sets its terminal status.
// Only store failures are returned, a rejected inscription is just marked as failed.
func (c *InscribeContext) Inscribe(ctx context.Context) error {
	for _, insc := range c.inscriptions {
		ctx := logger.WithContext(ctx,
			slogx.Uint64("inscription_id", insc.Id),
			slogx.String("tx_hash", insc.TxHash),
			slogx.Stringer("category", insc.MimeCategory),
		)

		if c.filter.ShouldReject(insc.TxHash, insc.BlockNumber) {
			logger.DebugContext(ctx, "Inscription is filtered out")
			insc.Verified = entity.VerifiedStatusFailed
			observeInscription(insc)
			continue
		}

		ok, err := c.process(ctx, insc)
		if err != nil {
			return errors.Wrapf(err, "failed to process inscription %d", insc.Id)
		}
		if ok {
			insc.Verified = entity.VerifiedStatusSuccessful
		} else {
			insc.Verified = entity.VerifiedStatusFailed
		}
		observeInscription(insc)
	}
	return nil
}

func (c *InscribeContext) process(ctx context.Context, insc *entity.Inscription) (bool, error) {
	if !insc.MimeCategory.IsValid() {
		logger.WarnContext(ctx, "Inscription has an unknown mime category, check the ingester", slogx.String("event", "unknown_mime_category"))
		return reject(ctx, "unknown mime category")
	}
	switch insc.MimeCategory {
	case entity.MimeCategoryText, entity.MimeCategoryImage:
		return c.processPlain(ctx, insc)
	case entity.MimeCategoryTransfer:
		return c.processTransfer(ctx, insc)
	case entity.MimeCategoryJson:
		return c.processJson(ctx, insc)
	case entity.MimeCategoryInvoke:
		return c.processInvoke(ctx, insc)
	default:
		return reject(ctx, "unsupported mime category")
	}
}

// nftHolder returns the in-block holder if the inscription moved in this block, or the persisted one.
func (c *InscribeContext) nftHolder(ctx context.Context, id uint64) (string, bool, error) {
	if holder, ok := c.nftHolders[id]; ok {
		return holder, true, nil
	}
	holder, ok, err := c.store.GetNftHolder(ctx, id)
	if err != nil {
		return "", false, errors.WithStack(err)
	}
	return holder, ok, nil
}

// tokenBalance returns the persisted balance plus the changes made in this block.
func (c *InscribeContext) tokenBalance(ctx context.Context, tick string, address string) (decimal.Decimal, error) {
	address = normalizeAddress(address)
	balance, err := c.store.GetTokenBalance(ctx, tick, address)
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	if delta, ok := c.tokenBalanceChange[tick][address]; ok {
		balance = balance.Add(delta)
	}
	return balance, nil
}

func (c *InscribeContext) addTokenBalance(tick string, address string, delta decimal.Decimal) {
	address = normalizeAddress(address)
	changes, ok := c.tokenBalanceChange[tick]
	if !ok {
		changes = make(map[string]decimal.Decimal)
		c.tokenBalanceChange[tick] = changes
	}
	changes[address] = changes[address].Add(delta)
}

func reject(ctx context.Context, reason string, args ...any) (bool, error) {
	logger.DebugContext(ctx, "Inscription rejected", append([]any{slog.String("reason", reason)}, args...)...)
	return false, nil
}

func normalizeTxHash(txHash string) string {
	return strings.ToLower(txHash)
}

func normalizeAddress(address string) string {
	return strings.ToLower(address)
}

func sameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}
