package inscription

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gaze-network/inscription-indexer/modules/inscription/config"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	badgerrepo "github.com/gaze-network/inscription-indexer/modules/inscription/repository/badger"
	"github.com/stretchr/testify/require"
)

const (
	alice = "0xA11CE00000000000000000000000000000000001"
	bob   = "0xb0b0000000000000000000000000000000000002"
	carol = "0xca70100000000000000000000000000000000003"
)

func newTestRepository(t *testing.T) *badgerrepo.Repository {
	t.Helper()
	db, err := badgerrepo.Open(config.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return badgerrepo.NewRepository(db)
}

func newTestProcessor(t *testing.T, repo *badgerrepo.Repository, filter *InscribeFilter) *Processor {
	t.Helper()
	p, err := NewProcessor(repo, filter, nil, 16)
	require.NoError(t, err)
	return p
}

func txHash(id uint64) string {
	return fmt.Sprintf("0x%064x", id)
}

func textInscription(id uint64, blockNumber uint64, from, to, text string) *entity.Inscription {
	return &entity.Inscription{
		Id:           id,
		TxHash:       txHash(id),
		BlockNumber:  blockNumber,
		From:         from,
		To:           to,
		MimeType:     "text/plain",
		MimeCategory: entity.MimeCategoryText,
		MimeData:     text,
		Verified:     entity.VerifiedStatusPending,
	}
}

func transferInscription(id uint64, blockNumber uint64, from, to string, targets ...uint64) *entity.Inscription {
	var data strings.Builder
	for _, target := range targets {
		data.WriteString(txHash(target))
	}
	return &entity.Inscription{
		Id:           id,
		TxHash:       txHash(id),
		BlockNumber:  blockNumber,
		From:         from,
		To:           to,
		MimeType:     "text/plain",
		MimeCategory: entity.MimeCategoryTransfer,
		MimeData:     data.String(),
		Verified:     entity.VerifiedStatusPending,
	}
}

func jsonInscription(id uint64, blockNumber uint64, from, to string, payload map[string]any) *entity.Inscription {
	return &entity.Inscription{
		Id:           id,
		TxHash:       txHash(id),
		BlockNumber:  blockNumber,
		From:         from,
		To:           to,
		MimeType:     "application/json",
		MimeCategory: entity.MimeCategoryJson,
		MimeData:     fmt.Sprint(payload),
		Json:         payload,
		Verified:     entity.VerifiedStatusPending,
	}
}

func collectionDeploy(items ...uint64) map[string]any {
	list := make([]any, 0, len(items))
	for _, item := range items {
		list = append(list, map[string]any{"tx": txHash(item)})
	}
	return map[string]any{
		"p":           CollectionApp,
		"op":          OpCollectionDeploy,
		"name":        "Collection",
		"description": "A collection",
		"url":         "https://example.com",
		"image":       "https://example.com/image.png",
		"icon":        "https://example.com/icon.png",
		"items":       list,
	}
}

// ingest writes the inscriptions as the ingester would, and marks their blocks as complete.
func ingest(t *testing.T, repo *badgerrepo.Repository, inscriptions ...*entity.Inscription) {
	t.Helper()
	ctx := context.Background()
	for _, insc := range inscriptions {
		require.NoError(t, repo.CreatePendingInscription(ctx, insc))
	}
	last := inscriptions[len(inscriptions)-1]
	require.NoError(t, repo.SetTopInscriptionSyncId(ctx, last.Id))
	require.NoError(t, repo.SetSyncBlockNumber(ctx, last.BlockNumber+1))
}

// processAll runs the processor until there is nothing left to process and returns the number of blocks.
func processAll(t *testing.T, p *Processor) int {
	t.Helper()
	blocks := 0
	for {
		ok, err := p.ProcessNext(context.Background())
		require.NoError(t, err)
		if !ok {
			return blocks
		}
		blocks++
	}
}

func getInscription(t *testing.T, repo *badgerrepo.Repository, id uint64) *entity.Inscription {
	t.Helper()
	insc, err := repo.GetInscriptionById(context.Background(), id)
	require.NoError(t, err)
	return insc
}

func getHolder(t *testing.T, repo *badgerrepo.Repository, id uint64) string {
	t.Helper()
	holder, err := repo.GetInscriptionNftHolderById(context.Background(), id)
	require.NoError(t, err)
	return holder
}
