package postgres

import (
	"math/big"
	"testing"

	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/modules/inscription/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumeric(t *testing.T) {
	for _, s := range []string{"0", "1", "21000000", "0.000000000000000001", "18446744073709551615.5"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			actual, err := decimalFromNumeric(numericFromDecimal(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(actual), "expected %s, got %s", d, actual)
		})
	}

	t.Run("null", func(t *testing.T) {
		actual, err := decimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, actual.IsZero())
	})

	t.Run("nan", func(t *testing.T) {
		_, err := decimalFromNumeric(pgtype.Numeric{Int: big.NewInt(0), NaN: true, Valid: true})
		assert.Error(t, err)
	})
}

func TestMapInscription(t *testing.T) {
	insc := &entity.Inscription{
		Id:           7,
		TxHash:       "0xAB",
		BlockNumber:  100,
		From:         "0xfrom",
		To:           "0xto",
		MimeType:     "application/json",
		MimeCategory: entity.MimeCategoryJson,
		MimeData:     `{"p":"collection"}`,
		Json:         map[string]any{"p": "collection"},
		Verified:     entity.VerifiedStatusSuccessful,
	}

	params, err := mapInscriptionTypeToParams(insc)
	require.NoError(t, err)
	assert.Equal(t, int64(7), params.ID)
	assert.Equal(t, "json", params.MimeCategory)
	assert.Equal(t, "successful", params.Verified)
	assert.JSONEq(t, `{"p":"collection"}`, string(params.Json))

	actual, err := mapInscriptionModelToType(gen.Inscription(params))
	require.NoError(t, err)
	assert.Equal(t, insc, actual)
}

func TestMapToken(t *testing.T) {
	token := &entity.Token{
		Tick:                "ins",
		Max:                 decimal.NewFromInt(21_000_000),
		Limit:               decimal.NewFromInt(1000),
		Decimals:            18,
		Minted:              decimal.RequireFromString("1.5"),
		Holders:             2,
		DeployInscriptionId: 1,
		DeployTxHash:        "0x01",
		DeployBy:            "0xdeployer",
		DeployBlockNumber:   10,
	}

	params := mapTokenTypeToParams(token)
	actual, err := mapTokenModelToType(gen.InscriptionToken(params))
	require.NoError(t, err)

	assert.Equal(t, token.Tick, actual.Tick)
	assert.True(t, token.Max.Equal(actual.Max))
	assert.True(t, token.Limit.Equal(actual.Limit))
	assert.True(t, token.Minted.Equal(actual.Minted))
	assert.Equal(t, token.Decimals, actual.Decimals)
	assert.Equal(t, token.Holders, actual.Holders)
	assert.Equal(t, token.DeployBlockNumber, actual.DeployBlockNumber)
}
