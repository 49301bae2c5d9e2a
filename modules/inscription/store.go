package inscription

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"
)

// store guards the data gateway with a coarse read/write lock.
// Every read takes the shared lock on its own. A write transaction holds the exclusive lock until it is committed or rolled back.
type store struct {
	mu      sync.RWMutex
	dg      datagateway.InscriptionDataGateway
	txCache *lru.Cache[string, entity.Inscription] // tx hash -> verified inscription
}

func newStore(dg datagateway.InscriptionDataGateway, txCacheSize int) (*store, error) {
	if txCacheSize <= 0 {
		txCacheSize = 1
	}
	txCache, err := lru.New[string, entity.Inscription](txCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tx cache")
	}
	return &store{
		dg:      dg,
		txCache: txCache,
	}, nil
}

func (s *store) GetSyncState(ctx context.Context) (entity.SyncState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topId, err := s.dg.GetTopInscriptionId(ctx)
	if err != nil {
		return entity.SyncState{}, errors.Wrap(err, "failed to get top inscription id")
	}
	syncId, err := s.dg.GetTopInscriptionSyncId(ctx)
	if err != nil {
		return entity.SyncState{}, errors.Wrap(err, "failed to get top inscription sync id")
	}
	syncBlockNumber, err := s.dg.GetSyncBlockNumber(ctx)
	if err != nil {
		return entity.SyncState{}, errors.Wrap(err, "failed to get sync block number")
	}
	return entity.SyncState{
		TopInscriptionId:     topId,
		TopInscriptionSyncId: syncId,
		SyncBlockNumber:      syncBlockNumber,
	}, nil
}

// GetInscriptionById returns false if the inscription does not exist.
func (s *store) GetInscriptionById(ctx context.Context, id uint64) (*entity.Inscription, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inscription, err := s.dg.GetInscriptionById(ctx, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get inscription %d", id)
	}
	return inscription, true, nil
}

// GetInscriptionByTx returns false if the inscription does not exist.
func (s *store) GetInscriptionByTx(ctx context.Context, txHash string) (*entity.Inscription, bool, error) {
	key := normalizeTxHash(txHash)
	if inscription, ok := s.txCache.Get(key); ok {
		return &inscription, true, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	inscription, err := s.dg.GetInscriptionByTx(ctx, txHash)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get inscription by tx %s", txHash)
	}
	// verified records never change again
	if inscription.Verified.IsTerminal() {
		s.txCache.Add(key, *inscription)
	}
	return inscription, true, nil
}

func (s *store) InscriptionSignExists(ctx context.Context, signature string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ok, err := s.dg.InscriptionSignExists(ctx, signature)
	if err != nil {
		return false, errors.Wrap(err, "failed to check inscription signature")
	}
	return ok, nil
}

// GetNftHolder returns false if the inscription has no holder.
func (s *store) GetNftHolder(ctx context.Context, id uint64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	holder, err := s.dg.GetInscriptionNftHolderById(ctx, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to get nft holder of %d", id)
	}
	return holder, true, nil
}

// GetNftCollection returns false if the inscription doesn't belong to any collection.
func (s *store) GetNftCollection(ctx context.Context, id uint64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collectionTx, err := s.dg.GetInscriptionNftCollectionById(ctx, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to get nft collection of %d", id)
	}
	return collectionTx, true, nil
}

func (s *store) GetTokens(ctx context.Context) (map[string]*entity.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens, err := s.dg.GetTokens(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tokens")
	}
	return tokens, nil
}

func (s *store) GetTokenBalance(ctx context.Context, tick string, address string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance, err := s.dg.GetTokenBalance(ctx, tick, address)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "failed to get %s balance of %s", tick, address)
	}
	return balance, nil
}

// WriteTx runs fn in a single transaction under the exclusive lock and commits it if fn succeeds.
func (s *store) WriteTx(ctx context.Context, fn func(tx datagateway.InscriptionDataGatewayWithTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.dg.BeginInscriptionTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction",
				slogx.Error(err),
				slogx.String("event", "rollback_inscription_block"),
			)
		}
	}()

	if err := fn(tx); err != nil {
		return errors.WithStack(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// CacheInscriptions warms the tx cache with committed inscriptions.
func (s *store) CacheInscriptions(inscriptions []*entity.Inscription) {
	for _, inscription := range inscriptions {
		if inscription.Verified.IsTerminal() {
			s.txCache.Add(normalizeTxHash(inscription.TxHash), *inscription)
		}
	}
}
