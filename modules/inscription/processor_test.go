package inscription

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/reportingclient"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessNextBlock(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	ingest(t, repo,
		textInscription(1, 100, bob, alice, "hello"),
		textInscription(2, 100, bob, carol, "hello"),
		transferInscription(3, 100, bob, carol, 1),
	)
	p := newTestProcessor(t, repo, nil)

	ok, err := p.ProcessNext(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	top, err := repo.GetTopInscriptionId(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, top)

	first := getInscription(t, repo, 1)
	assert.Equal(t, entity.VerifiedStatusSuccessful, first.Verified)
	assert.Equal(t, ContentSignature("hello"), first.Signature)
	assert.Equal(t, alice, getHolder(t, repo, 1))

	second := getInscription(t, repo, 2)
	assert.Equal(t, entity.VerifiedStatusFailed, second.Verified)
	assert.Empty(t, second.Signature)
	_, err = repo.GetInscriptionNftHolderById(ctx, 2)
	assert.ErrorIs(t, err, errs.NotFound)

	// bob never held inscription 1
	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 3).Verified)
	transfers, err := repo.GetNftTransfersByInscriptionId(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, transfers)

	ok, err = p.ProcessNext(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "nothing left to process")
}

func TestProcessNextLargeBlock(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	payload := strings.Repeat("x", 64<<10)
	inscriptions := make([]*entity.Inscription, 0, 200)
	for id := uint64(1); id <= 200; id++ {
		inscriptions = append(inscriptions, textInscription(id, 100, bob, alice, fmt.Sprintf("%d:%s", id, payload)))
	}
	ingest(t, repo, inscriptions...)
	p := newTestProcessor(t, repo, nil)

	ok, err := p.ProcessNext(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	top, err := repo.GetTopInscriptionId(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 200, top)
	assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 200).Verified)
	assert.Equal(t, alice, getHolder(t, repo, 200))
}

func TestProcessNextNotReady(t *testing.T) {
	ctx := context.Background()

	t.Run("no inscription", func(t *testing.T) {
		repo := newTestRepository(t)
		p := newTestProcessor(t, repo, nil)

		ok, err := p.ProcessNext(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("block not synced", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo, textInscription(1, 100, bob, alice, "hello"))
		require.NoError(t, repo.SetSyncBlockNumber(ctx, 100))
		p := newTestProcessor(t, repo, nil)

		ok, err := p.ProcessNext(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		top, err := repo.GetTopInscriptionId(ctx)
		require.NoError(t, err)
		assert.Zero(t, top)
		assert.Equal(t, entity.VerifiedStatusPending, getInscription(t, repo, 1).Verified)
	})
}

func TestProcessNextOneBlockAtATime(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	ingest(t, repo,
		textInscription(1, 100, bob, alice, "a"),
		textInscription(2, 100, bob, alice, "b"),
		textInscription(3, 101, bob, alice, "c"),
		textInscription(4, 103, bob, alice, "d"),
	)
	p := newTestProcessor(t, repo, nil)

	var tops []uint64
	for {
		ok, err := p.ProcessNext(ctx)
		require.NoError(t, err)
		if !ok {
			break
		}
		top, err := repo.GetTopInscriptionId(ctx)
		require.NoError(t, err)
		tops = append(tops, top)
	}
	assert.Equal(t, []uint64{2, 3, 4}, tops)
}

func TestLoadBlock(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	ingest(t, repo,
		textInscription(1, 100, bob, alice, "a"),
		textInscription(2, 100, bob, alice, "b"),
		textInscription(3, 101, bob, alice, "c"),
	)
	p := newTestProcessor(t, repo, nil)

	inscriptions, err := p.LoadBlock(ctx, 100)
	require.NoError(t, err)
	require.Len(t, inscriptions, 2)
	assert.EqualValues(t, 1, inscriptions[0].Id)
	assert.EqualValues(t, 2, inscriptions[1].Id)
}

func TestProcessTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves every target", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo,
			textInscription(1, 100, carol, alice, "a"),
			textInscription(2, 100, carol, alice, "b"),
		)
		ingest(t, repo, transferInscription(3, 101, alice, bob, 1, 2))
		p := newTestProcessor(t, repo, nil)
		assert.Equal(t, 2, processAll(t, p))

		assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 3).Verified)
		assert.Equal(t, bob, getHolder(t, repo, 1))
		assert.Equal(t, bob, getHolder(t, repo, 2))

		transfers, err := repo.GetNftTransfersByInscriptionId(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []entity.NftTransfer{
			{InscriptionId: 3, NftId: 1, Index: 0},
			{InscriptionId: 3, NftId: 2, Index: 1},
		}, transfers)
	})

	t.Run("all or nothing", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo,
			textInscription(1, 100, carol, alice, "a"),
			textInscription(2, 100, carol, carol, "b"),
		)
		ingest(t, repo, transferInscription(3, 101, alice, bob, 1, 2))
		p := newTestProcessor(t, repo, nil)
		processAll(t, p)

		assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 3).Verified)
		assert.Equal(t, alice, getHolder(t, repo, 1))
		assert.Equal(t, carol, getHolder(t, repo, 2))

		transfers, err := repo.GetNftTransfersByInscriptionId(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, transfers)
	})

	t.Run("chained in one block", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo, textInscription(1, 100, carol, alice, "a"))
		ingest(t, repo,
			transferInscription(2, 101, alice, bob, 1),
			transferInscription(3, 101, bob, carol, 1),
			transferInscription(4, 101, alice, bob, 1),
		)
		p := newTestProcessor(t, repo, nil)
		processAll(t, p)

		assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 2).Verified)
		assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 3).Verified)
		assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 4).Verified, "alice no longer holds it")
		assert.Equal(t, carol, getHolder(t, repo, 1))
	})

	t.Run("case insensitive", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo, textInscription(1, 100, carol, alice, "a"))
		transfer := transferInscription(2, 101, "0xa11ce00000000000000000000000000000000001", bob, 1)
		transfer.MimeData = "0X" + txHash(1)[2:]
		ingest(t, repo, transfer)
		p := newTestProcessor(t, repo, nil)
		processAll(t, p)

		assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 2).Verified)
		assert.Equal(t, bob, getHolder(t, repo, 1))
	})

	t.Run("malformed payload", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo, textInscription(1, 100, carol, alice, "a"))
		transfer := transferInscription(2, 101, alice, bob, 1)
		transfer.MimeData = transfer.MimeData[:TransferTxHexLength-1]
		ingest(t, repo, transfer)
		p := newTestProcessor(t, repo, nil)
		processAll(t, p)

		assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 2).Verified)
		assert.Equal(t, alice, getHolder(t, repo, 1))
	})
}

func TestProcessPlainDedup(t *testing.T) {
	repo := newTestRepository(t)
	ingest(t, repo, textInscription(1, 100, bob, alice, "hello"))
	ingest(t, repo,
		textInscription(2, 101, bob, carol, "hello"),
		textInscription(3, 101, bob, carol, "world"),
	)
	p := newTestProcessor(t, repo, nil)
	assert.Equal(t, 2, processAll(t, p))

	assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 1).Verified)
	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 2).Verified)
	assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 3).Verified)
}

func TestProcessCollectionDeploy(t *testing.T) {
	ctx := context.Background()

	t.Run("claims its items once", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo,
			textInscription(1, 100, carol, alice, "a"),
			textInscription(2, 100, carol, alice, "b"),
		)
		ingest(t, repo, jsonInscription(3, 101, alice, alice, collectionDeploy(1)))
		ingest(t, repo, jsonInscription(4, 102, alice, alice, collectionDeploy(1, 2)))
		p := newTestProcessor(t, repo, nil)
		assert.Equal(t, 3, processAll(t, p))

		assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 3).Verified)
		assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 4).Verified)

		collection, err := repo.GetNftCollectionByTx(ctx, txHash(3))
		require.NoError(t, err)
		assert.Equal(t, "Collection", collection.Name)
		assert.Equal(t, alice, collection.Deployer)
		assert.Equal(t, []string{txHash(1)}, collection.Items)

		collectionTx, err := repo.GetInscriptionNftCollectionById(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, txHash(3), collectionTx)

		_, err = repo.GetInscriptionNftCollectionById(ctx, 2)
		assert.ErrorIs(t, err, errs.NotFound)
		_, err = repo.GetNftCollectionByTx(ctx, txHash(4))
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("claims in the same block", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo, textInscription(1, 100, carol, alice, "a"))
		ingest(t, repo,
			jsonInscription(2, 101, alice, alice, collectionDeploy(1)),
			jsonInscription(3, 101, alice, alice, collectionDeploy(1)),
		)
		p := newTestProcessor(t, repo, nil)
		processAll(t, p)

		assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 2).Verified)
		assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 3).Verified)
	})

	t.Run("deployer must hold every item", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo,
			textInscription(1, 100, carol, alice, "a"),
			textInscription(2, 100, carol, bob, "b"),
		)
		ingest(t, repo, jsonInscription(3, 101, alice, alice, collectionDeploy(1, 2)))
		p := newTestProcessor(t, repo, nil)
		processAll(t, p)

		assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 3).Verified)
		_, err := repo.GetInscriptionNftCollectionById(ctx, 1)
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("missing field", func(t *testing.T) {
		repo := newTestRepository(t)
		ingest(t, repo, textInscription(1, 100, carol, alice, "a"))
		payload := collectionDeploy(1)
		delete(payload, "icon")
		ingest(t, repo, jsonInscription(2, 101, alice, alice, payload))
		p := newTestProcessor(t, repo, nil)
		processAll(t, p)

		assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 2).Verified)
	})
}

func TestProcessJsonDispatch(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"unknown protocol", map[string]any{"p": "unknown", "op": "deploy"}},
		{"missing op", map[string]any{"p": CollectionApp}},
		{"unknown collection op", map[string]any{"p": CollectionApp, "op": "burn"}},
		{"unknown token op", map[string]any{"p": TokenProtocol, "op": "burn", "tick": "insc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t)
			ingest(t, repo, jsonInscription(1, 100, alice, alice, tt.payload))
			p := newTestProcessor(t, repo, nil)
			processAll(t, p)

			assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 1).Verified)
		})
	}
}

func TestProcessUnsupportedCategory(t *testing.T) {
	repo := newTestRepository(t)
	invoke := textInscription(1, 100, alice, alice, "call()")
	invoke.MimeCategory = entity.MimeCategoryInvoke
	other := textInscription(2, 100, alice, alice, "binary")
	other.MimeCategory = entity.MimeCategoryOther
	unknown := textInscription(3, 100, alice, alice, "?")
	unknown.MimeCategory = entity.MimeCategory("video")
	ingest(t, repo, invoke, other, unknown)
	p := newTestProcessor(t, repo, nil)
	processAll(t, p)

	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 1).Verified)
	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 2).Verified)
	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 3).Verified)
	_, err := repo.GetInscriptionNftHolderById(context.Background(), 3)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestProcessFilter(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	ingest(t, repo,
		textInscription(1, 100, bob, alice, "a"),
		textInscription(2, 100, bob, alice, "b"),
	)
	ingest(t, repo, textInscription(3, 101, bob, alice, "c"))
	filter := NewInscribeFilter([]string{txHash(1)}, []uint64{101}, nil)
	p := newTestProcessor(t, repo, filter)
	processAll(t, p)

	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 1).Verified)
	assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 2).Verified)
	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 3).Verified)

	// filtered content must not block later inscriptions of the same content
	exists, err := repo.InscriptionSignExists(ctx, ContentSignature("a"))
	require.NoError(t, err)
	assert.False(t, exists)
	_, err = repo.GetInscriptionNftHolderById(ctx, 1)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestProcessToken(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	ingest(t, repo,
		jsonInscription(1, 100, alice, alice, map[string]any{"p": TokenProtocol, "op": "deploy", "tick": "INSC", "max": "1000", "lim": "100"}),
		jsonInscription(2, 100, alice, alice, map[string]any{"p": TokenProtocol, "op": "mint", "tick": "insc", "amt": "100"}),
		jsonInscription(3, 100, bob, bob, map[string]any{"p": TokenProtocol, "op": "mint", "tick": "insc", "amt": "200"}),
		jsonInscription(4, 100, bob, bob, map[string]any{"p": TokenProtocol, "op": "deploy", "tick": "insc", "max": "5"}),
	)
	ingest(t, repo,
		jsonInscription(5, 101, alice, bob, map[string]any{"p": TokenProtocol, "op": "transfer", "tick": "insc", "amt": "40"}),
		jsonInscription(6, 101, alice, bob, map[string]any{"p": TokenProtocol, "op": "transfer", "tick": "insc", "amt": "100"}),
		jsonInscription(7, 101, alice, alice, map[string]any{"p": TokenProtocol, "op": "transfer", "tick": "insc", "amt": "1"}),
	)
	p := newTestProcessor(t, repo, nil)
	assert.Equal(t, 2, processAll(t, p))

	statuses := make([]entity.VerifiedStatus, 0, 7)
	for id := uint64(1); id <= 7; id++ {
		statuses = append(statuses, getInscription(t, repo, id).Verified)
	}
	assert.Equal(t, []entity.VerifiedStatus{
		entity.VerifiedStatusSuccessful,
		entity.VerifiedStatusSuccessful,
		entity.VerifiedStatusFailed, // over the mint limit
		entity.VerifiedStatusFailed, // already deployed
		entity.VerifiedStatusSuccessful,
		entity.VerifiedStatusFailed, // insufficient balance
		entity.VerifiedStatusFailed, // transfer to self
	}, statuses)

	token, err := repo.GetToken(ctx, "insc")
	require.NoError(t, err)
	assert.True(t, token.Minted.Equal(decimal.NewFromInt(100)))
	assert.True(t, token.Max.Equal(decimal.NewFromInt(1000)))
	assert.EqualValues(t, 2, token.Holders)
	assert.Equal(t, alice, token.DeployBy)

	balance, err := repo.GetTokenBalance(ctx, "insc", alice)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(60)), balance.String())
	balance, err = repo.GetTokenBalance(ctx, "insc", bob)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(40)), balance.String())

	transfers, err := repo.GetTokenTransfers(ctx, "insc")
	require.NoError(t, err)
	assert.Equal(t, []uint64{5}, transfers)

	// alice sends out the rest and stops being a holder
	ingest(t, repo, jsonInscription(8, 102, alice, bob, map[string]any{"p": TokenProtocol, "op": "transfer", "tick": "insc", "amt": "60"}))
	assert.Equal(t, 1, processAll(t, p))

	token, err = repo.GetToken(ctx, "insc")
	require.NoError(t, err)
	assert.EqualValues(t, 1, token.Holders)
	balance, err = repo.GetTokenBalance(ctx, "insc", alice)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestProcessTokenSupply(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	ingest(t, repo,
		jsonInscription(1, 100, alice, alice, map[string]any{"p": TokenProtocol, "op": "deploy", "tick": "cap", "max": "150", "lim": "100", "dec": "0"}),
		jsonInscription(2, 100, alice, alice, map[string]any{"p": TokenProtocol, "op": "mint", "tick": "cap", "amt": "100"}),
		jsonInscription(3, 100, bob, bob, map[string]any{"p": TokenProtocol, "op": "mint", "tick": "cap", "amt": "100"}),
		jsonInscription(4, 100, bob, bob, map[string]any{"p": TokenProtocol, "op": "mint", "tick": "cap", "amt": "0.5"}),
		jsonInscription(5, 100, bob, bob, map[string]any{"p": TokenProtocol, "op": "mint", "tick": "cap", "amt": "50"}),
	)
	p := newTestProcessor(t, repo, nil)
	processAll(t, p)

	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 3).Verified, "exceeds remaining supply")
	assert.Equal(t, entity.VerifiedStatusFailed, getInscription(t, repo, 4).Verified, "exceeds decimals")
	assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 5).Verified)

	token, err := repo.GetToken(ctx, "cap")
	require.NoError(t, err)
	assert.True(t, token.IsMintedOut())
	assert.EqualValues(t, 2, token.Holders)
}

type failingCommitGateway struct {
	datagateway.InscriptionDataGateway
}

func (g failingCommitGateway) BeginInscriptionTx(ctx context.Context) (datagateway.InscriptionDataGatewayWithTx, error) {
	tx, err := g.InscriptionDataGateway.BeginInscriptionTx(ctx)
	if err != nil {
		return nil, err
	}
	return failingCommitTx{tx}, nil
}

type failingCommitTx struct {
	datagateway.InscriptionDataGatewayWithTx
}

func (failingCommitTx) Commit(context.Context) error {
	return errors.New("commit failed")
}

func TestProcessNextAtomic(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	ingest(t, repo, textInscription(1, 100, carol, alice, "a"))
	ingest(t, repo,
		transferInscription(2, 101, alice, bob, 1),
		textInscription(3, 101, carol, bob, "b"),
	)

	p := newTestProcessor(t, repo, nil)
	ok, err := p.ProcessNext(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	failing, err := NewProcessor(failingCommitGateway{repo}, nil, nil, 16)
	require.NoError(t, err)
	_, err = failing.ProcessNext(ctx)
	require.Error(t, err)

	top, err := repo.GetTopInscriptionId(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, top)
	assert.Equal(t, alice, getHolder(t, repo, 1))
	assert.Equal(t, entity.VerifiedStatusPending, getInscription(t, repo, 2).Verified)
	assert.Equal(t, entity.VerifiedStatusPending, getInscription(t, repo, 3).Verified)
	exists, err := repo.InscriptionSignExists(ctx, ContentSignature("b"))
	require.NoError(t, err)
	assert.False(t, exists)

	// the block is processed again from scratch
	ok, err = p.ProcessNext(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bob, getHolder(t, repo, 1))
	assert.Equal(t, entity.VerifiedStatusSuccessful, getInscription(t, repo, 3).Verified)
}

func TestProcessorShutdown(t *testing.T) {
	repo := newTestRepository(t)
	p := newTestProcessor(t, repo, nil)

	var closed []string
	p.cleanupFuncs = []func(context.Context) error{
		func(context.Context) error {
			closed = append(closed, "first")
			return errors.New("boom")
		},
		func(context.Context) error {
			closed = append(closed, "second")
			return nil
		},
	}
	err := p.Shutdown(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []string{"first", "second"}, closed)
}

func TestProcessNextReportsBlock(t *testing.T) {
	reports := make(chan reportingclient.SubmitBlockReportPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload reportingclient.SubmitBlockReportPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil && r.URL.Path == "/v1/report/block" {
			reports <- payload
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := newTestRepository(t)
	ingest(t, repo,
		textInscription(1, 100, bob, alice, "a"),
		textInscription(2, 100, bob, alice, "a"),
	)
	p := newTestProcessor(t, repo, nil)
	client, err := reportingclient.New(reportingclient.Config{BaseURL: server.URL, Name: "test"})
	require.NoError(t, err)
	p.reportingClient = client
	p.network = common.NetworkTestnet

	ok, err := p.ProcessNext(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	report := <-reports
	assert.Equal(t, "inscription", report.Type)
	assert.Equal(t, common.NetworkTestnet, report.Network)
	assert.EqualValues(t, 100, report.BlockNumber)
	assert.EqualValues(t, 2, report.TopInscriptionId)
	assert.Equal(t, 2, report.Inscriptions)
	assert.Equal(t, 1, report.Successful)
}
