package datagateway

import (
	"context"

	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/shopspring/decimal"
)

type InscriptionDataGateway interface {
	InscriptionReaderDataGateway
	InscriptionWriterDataGateway

	// BeginInscriptionTx returns a new InscriptionDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginInscriptionTx(ctx context.Context) (InscriptionDataGatewayWithTx, error)
}

type InscriptionDataGatewayWithTx interface {
	InscriptionDataGateway
	Tx
}

type InscriptionReaderDataGateway interface {
	// GetTopInscriptionId returns the processed cursor. Returns 0 if nothing has been processed yet.
	GetTopInscriptionId(ctx context.Context) (uint64, error)
	// GetTopInscriptionSyncId returns the id of the last inscription written by the ingester.
	GetTopInscriptionSyncId(ctx context.Context) (uint64, error)
	// GetSyncBlockNumber returns the block number the ingester is currently writing. Blocks below it are complete.
	GetSyncBlockNumber(ctx context.Context) (uint64, error)

	// GetInscriptionById returns errs.NotFound if the inscription does not exist.
	GetInscriptionById(ctx context.Context, id uint64) (*entity.Inscription, error)
	// GetInscriptionByTx returns errs.NotFound if the inscription does not exist.
	GetInscriptionByTx(ctx context.Context, txHash string) (*entity.Inscription, error)
	InscriptionSignExists(ctx context.Context, signature string) (bool, error)

	// GetInscriptionNftHolderById returns errs.NotFound if the inscription has no holder.
	GetInscriptionNftHolderById(ctx context.Context, id uint64) (string, error)
	// GetInscriptionNftCollectionById returns the tx hash of the collection the inscription belongs to.
	// Returns errs.NotFound if it doesn't belong to any collection.
	GetInscriptionNftCollectionById(ctx context.Context, id uint64) (string, error)
	// GetNftCollectionByTx returns errs.NotFound if the collection does not exist.
	GetNftCollectionByTx(ctx context.Context, txHash string) (*entity.NftCollection, error)
	GetNftTransfersByInscriptionId(ctx context.Context, id uint64) ([]entity.NftTransfer, error)

	// GetTokens returns all deployed tokens keyed by tick.
	GetTokens(ctx context.Context) (map[string]*entity.Token, error)
	// GetToken returns errs.NotFound if the token does not exist.
	GetToken(ctx context.Context, tick string) (*entity.Token, error)
	// GetTokenBalance returns zero if the address never held the token.
	GetTokenBalance(ctx context.Context, tick string, address string) (decimal.Decimal, error)
	// GetTokenTransfers returns the ids of the transfer inscriptions of the tick, in ascending order.
	GetTokenTransfers(ctx context.Context, tick string) ([]uint64, error)
}

type InscriptionWriterDataGateway interface {
	SetTopInscriptionId(ctx context.Context, id uint64) error
	// InscriptionInscribe finalizes the inscription record. Successful text and image inscriptions
	// also get their recipient as the initial holder and their signature indexed.
	InscriptionInscribe(ctx context.Context, inscription *entity.Inscription) error

	InscriptionNftHolderUpdate(ctx context.Context, id uint64, address string) error
	InscriptionNftCollectionInsert(ctx context.Context, collection *entity.NftCollection) error
	InscriptionNftSetCollection(ctx context.Context, id uint64, collectionTx string) error
	InscriptionNftTransferInsert(ctx context.Context, transfer entity.NftTransfer) error

	InscriptionTokenInsert(ctx context.Context, token *entity.Token) error
	InscriptionTokenUpdate(ctx context.Context, token *entity.Token) error
	// InscriptionTokenBalanceUpdate applies a signed delta to the balance and returns the holder count delta:
	// 1 if the address became a holder, -1 if it stopped being one, 0 otherwise.
	InscriptionTokenBalanceUpdate(ctx context.Context, tick string, address string, delta decimal.Decimal) (int64, error)
	InscriptionTokenTransferInsert(ctx context.Context, transfer entity.TokenTransfer) error
}
