package httphandler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaze-network/inscription-indexer/modules/inscription/config"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	badgerrepo "github.com/gaze-network/inscription-indexer/modules/inscription/repository/badger"
	"github.com/gaze-network/inscription-indexer/modules/inscription/usecase"
	"github.com/gaze-network/inscription-indexer/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTxHash = fmt.Sprintf("0x%064x", 1)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()

	db, err := badgerrepo.Open(config.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := badgerrepo.NewRepository(db)

	insc := &entity.Inscription{
		Id:           1,
		TxHash:       testTxHash,
		BlockNumber:  100,
		From:         "0xbob",
		To:           "0xalice",
		MimeType:     "text/plain",
		MimeCategory: entity.MimeCategoryText,
		MimeData:     "hello",
		Verified:     entity.VerifiedStatusPending,
	}
	require.NoError(t, repo.CreatePendingInscription(ctx, insc))
	insc.Verified = entity.VerifiedStatusSuccessful
	insc.Signature = "sig"
	require.NoError(t, repo.InscriptionInscribe(ctx, insc))
	require.NoError(t, repo.SetTopInscriptionSyncId(ctx, 1))
	require.NoError(t, repo.SetSyncBlockNumber(ctx, 101))
	require.NoError(t, repo.SetTopInscriptionId(ctx, 1))

	require.NoError(t, repo.InscriptionTokenInsert(ctx, &entity.Token{
		Tick:                "insc",
		Max:                 decimal.NewFromInt(1000),
		Limit:               decimal.NewFromInt(100),
		Decimals:            18,
		Minted:              decimal.NewFromInt(100),
		Holders:             1,
		DeployInscriptionId: 1,
		DeployTxHash:        testTxHash,
		DeployBy:            "0xalice",
		DeployBlockNumber:   100,
	}))
	_, err = repo.InscriptionTokenBalanceUpdate(ctx, "insc", "0xalice", decimal.NewFromInt(100))
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	require.NoError(t, New(usecase.New(repo)).Mount(app))
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded), string(body))
	return resp.StatusCode, decoded
}

func TestGetCurrentBlock(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, "/v1/inscription/block")
	require.Equal(t, http.StatusOK, status)
	result := body["result"].(map[string]any)
	assert.EqualValues(t, 1, result["topInscriptionId"])
	assert.EqualValues(t, 101, result["syncBlockNumber"])
}

func TestGetInscription(t *testing.T) {
	app := newTestApp(t)

	t.Run("found", func(t *testing.T) {
		status, body := doRequest(t, app, "/v1/inscription/inscriptions/"+testTxHash)
		require.Equal(t, http.StatusOK, status)
		result := body["result"].(map[string]any)
		assert.EqualValues(t, 1, result["id"])
		assert.Equal(t, "0xalice", result["holder"])
		assert.Nil(t, result["collectionTx"])
		assert.Equal(t, string(entity.VerifiedStatusSuccessful), result["verified"])
	})

	t.Run("not found", func(t *testing.T) {
		status, body := doRequest(t, app, fmt.Sprintf("/v1/inscription/inscriptions/0x%064x", 2))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "inscription not found", body["error"])
	})

	t.Run("invalid tx", func(t *testing.T) {
		status, _ := doRequest(t, app, "/v1/inscription/inscriptions/0x1234")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGetToken(t *testing.T) {
	app := newTestApp(t)

	status, body := doRequest(t, app, "/v1/inscription/tokens/INSC")
	require.Equal(t, http.StatusOK, status)
	result := body["result"].(map[string]any)
	assert.Equal(t, "insc", result["tick"])
	assert.Equal(t, "1000", result["max"])
	assert.Equal(t, false, result["mintedOut"])

	status, body = doRequest(t, app, "/v1/inscription/tokens/insc/balances/0xALICE")
	require.Equal(t, http.StatusOK, status)
	result = body["result"].(map[string]any)
	assert.Equal(t, "100", result["balance"])

	status, _ = doRequest(t, app, "/v1/inscription/tokens/nope")
	assert.Equal(t, http.StatusBadRequest, status)
}
