package inscription

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common"
	"github.com/gaze-network/inscription-indexer/core/constants"
	"github.com/gaze-network/inscription-indexer/core/indexer"
	"github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/gaze-network/inscription-indexer/pkg/reportingclient"
)

var _ indexer.Processor = (*Processor)(nil)

type Processor struct {
	store       *store
	filter      *InscribeFilter
	marketplace MarketplaceHook

	network         common.Network
	reportingClient *reportingclient.ReportingClient

	cleanupFuncs []func(context.Context) error
}

func NewProcessor(dg datagateway.InscriptionDataGateway, filter *InscribeFilter, marketplace MarketplaceHook, txCacheSize int) (*Processor, error) {
	store, err := newStore(dg, txCacheSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if marketplace == nil {
		marketplace = NopMarketplaceHook{}
	}
	return &Processor{
		store:       store,
		filter:      filter,
		marketplace: marketplace,
	}, nil
}

func (p *Processor) Name() string {
	return "inscription"
}

func (p *Processor) Process(ctx context.Context) (bool, error) {
	return p.ProcessNext(ctx)
}

// ProcessNext validates and commits the next fully synced block.
// Returns false if there is no such block yet.
func (p *Processor) ProcessNext(ctx context.Context) (bool, error) {
	state, err := p.store.GetSyncState(ctx)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if state.TopInscriptionId >= state.TopInscriptionSyncId {
		observePoll(pollOutcomeNoInscription)
		return false, nil
	}

	next, ok, err := p.store.GetInscriptionById(ctx, state.TopInscriptionId+1)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if !ok {
		logger.WarnContext(ctx, "Next inscription is not found, waiting for ingestion",
			slogx.Uint64("inscription_id", state.TopInscriptionId+1),
			slogx.Uint64("sync_id", state.TopInscriptionSyncId),
		)
		observePoll(pollOutcomeNoInscription)
		return false, nil
	}
	if next.BlockNumber >= state.SyncBlockNumber {
		observePoll(pollOutcomeBlockNotSynced)
		return false, nil
	}

	ctx = logger.WithContext(ctx, slog.Uint64("block_number", next.BlockNumber))

	inscriptions, err := p.LoadBlock(ctx, next.BlockNumber)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if len(inscriptions) == 0 {
		observePoll(pollOutcomeEmptyBlock)
		return false, nil
	}

	inscribeCtx, err := newInscribeContext(ctx, p.store, p.filter, p.marketplace, inscriptions)
	if err != nil {
		return false, errors.Wrap(err, "failed to create inscribe context")
	}
	if err := inscribeCtx.Inscribe(ctx); err != nil {
		return false, errors.Wrap(err, "failed to inscribe block")
	}
	if err := inscribeCtx.Save(ctx); err != nil {
		return false, errors.Wrap(err, "failed to save block")
	}
	p.reportBlock(ctx, next.BlockNumber, inscriptions)

	observePoll(pollOutcomeProcessed)
	return true, nil
}

// reportBlock submits the committed block to the report center. A failed report never fails the block.
func (p *Processor) reportBlock(ctx context.Context, blockNumber uint64, inscriptions []*entity.Inscription) {
	if p.reportingClient == nil {
		return
	}
	successful := 0
	for _, insc := range inscriptions {
		if insc.IsSuccessful() {
			successful++
		}
	}
	if err := p.reportingClient.SubmitBlockReport(ctx, reportingclient.SubmitBlockReportPayload{
		Type:             p.Name(),
		ClientVersion:    constants.Version,
		Network:          p.network,
		BlockNumber:      blockNumber,
		TopInscriptionId: inscriptions[len(inscriptions)-1].Id,
		Inscriptions:     len(inscriptions),
		Successful:       successful,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to submit block report", slogx.Error(err))
	}
}

// LoadBlock reads the unprocessed inscriptions of the block, in id order.
// It starts right after the processed cursor and stops at the first missing id or another block.
func (p *Processor) LoadBlock(ctx context.Context, blockNumber uint64) ([]*entity.Inscription, error) {
	state, err := p.store.GetSyncState(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	inscriptions := make([]*entity.Inscription, 0)
	for id := state.TopInscriptionId + 1; ; id++ {
		insc, ok, err := p.store.GetInscriptionById(ctx, id)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if !ok || insc.BlockNumber != blockNumber {
			break
		}
		inscriptions = append(inscriptions, insc)
	}
	return inscriptions, nil
}

func (p *Processor) Shutdown(ctx context.Context) error {
	var errs []error
	for _, cleanup := range p.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.WithStack(errors.Join(errs...))
}
