package inscription

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/core/indexer"
	"github.com/gaze-network/inscription-indexer/internal/config"
	"github.com/gaze-network/inscription-indexer/internal/postgres"
	inscriptionapi "github.com/gaze-network/inscription-indexer/modules/inscription/api"
	inscriptiondatagateway "github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
	inscriptionbadger "github.com/gaze-network/inscription-indexer/modules/inscription/repository/badger"
	inscriptionpostgres "github.com/gaze-network/inscription-indexer/modules/inscription/repository/postgres"
	inscriptionusecase "github.com/gaze-network/inscription-indexer/modules/inscription/usecase"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/gaze-network/inscription-indexer/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

func New(injector do.Injector) (_ indexer.IndexerWorker, err error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	var inscriptionDg inscriptiondatagateway.InscriptionDataGateway
	var cleanupFuncs []func(context.Context) error
	defer func() {
		if err == nil {
			return
		}
		// the processor never took ownership of the store
		for _, cleanup := range cleanupFuncs {
			if cleanupErr := cleanup(ctx); cleanupErr != nil {
				logger.WarnContext(ctx, "Failed to release store after init error", slogx.Error(cleanupErr))
			}
		}
	}()
	switch strings.ToLower(conf.Modules.Inscription.Database) {
	case "badger", "":
		db, err := inscriptionbadger.Open(conf.Modules.Inscription.Badger)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Badger configuration for indexer")
			}
			return nil, errors.Wrap(err, "can't open Badger database")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			return errors.Wrap(db.Close(), "failed to close Badger database")
		})
		inscriptionDg = inscriptionbadger.NewRepository(db)
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, conf.Modules.Inscription.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for indexer")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		inscriptionDg = inscriptionpostgres.NewRepository(pg)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for indexer is not supported", conf.Modules.Inscription.Database)
	}

	filter, err := LoadInscribeFilter(conf.Modules.Inscription.FilterFile)
	if err != nil {
		return nil, errors.Wrap(err, "can't load inscribe filter")
	}
	txs, blocks, mintPass := filter.Len()
	logger.InfoContext(ctx, "Loaded inscribe filter",
		slogx.String("file", conf.Modules.Inscription.FilterFile),
		slogx.Int("tx_filter", txs),
		slogx.Int("block_filter", blocks),
		slogx.Int("mint_pass_tx", mintPass),
	)

	processor, err := NewProcessor(inscriptionDg, filter, nil, conf.Modules.Inscription.TxCacheSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	processor.cleanupFuncs = cleanupFuncs
	processor.network = conf.Network

	if !conf.Reporting.Disabled {
		reportingClient, err := reportingclient.New(conf.Reporting)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "invalid reporting configuration")
			}
			return nil, errors.Wrap(err, "can't create reporting client")
		}
		if err := reportingClient.SubmitNodeReport(ctx, processor.Name(), conf.Network); err != nil {
			logger.WarnContext(ctx, "Failed to submit node report", slogx.Error(err))
		}
		processor.reportingClient = reportingClient
	}

	// Mount API
	apiHandlers := lo.Uniq(conf.Modules.Inscription.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			inscriptionUsecase := inscriptionusecase.New(inscriptionDg)
			inscriptionHTTPHandler := inscriptionapi.NewHTTPHandler(inscriptionUsecase)
			if err := inscriptionHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount Inscription API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	return indexer.New(processor, indexer.WithPollingInterval(conf.Modules.Inscription.PollingInterval)), nil
}
