package badger

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/shopspring/decimal"
)

type tokenModel struct {
	Tick                string          `json:"tick"`
	Max                 decimal.Decimal `json:"max"`
	Limit               decimal.Decimal `json:"limit"`
	Decimals            uint16          `json:"decimals"`
	Minted              decimal.Decimal `json:"minted"`
	Holders             uint64          `json:"holders"`
	DeployInscriptionId uint64          `json:"deployInscriptionId"`
	DeployTxHash        string          `json:"deployTxHash"`
	DeployBy            string          `json:"deployBy"`
	DeployBlockNumber   uint64          `json:"deployBlockNumber"`
}

func mapTokenTypeToModel(src *entity.Token) tokenModel {
	return tokenModel{
		Tick:                src.Tick,
		Max:                 src.Max,
		Limit:               src.Limit,
		Decimals:            src.Decimals,
		Minted:              src.Minted,
		Holders:             src.Holders,
		DeployInscriptionId: src.DeployInscriptionId,
		DeployTxHash:        src.DeployTxHash,
		DeployBy:            src.DeployBy,
		DeployBlockNumber:   src.DeployBlockNumber,
	}
}

func mapTokenModelToType(src tokenModel) *entity.Token {
	return &entity.Token{
		Tick:                src.Tick,
		Max:                 src.Max,
		Limit:               src.Limit,
		Decimals:            src.Decimals,
		Minted:              src.Minted,
		Holders:             src.Holders,
		DeployInscriptionId: src.DeployInscriptionId,
		DeployTxHash:        src.DeployTxHash,
		DeployBy:            src.DeployBy,
		DeployBlockNumber:   src.DeployBlockNumber,
	}
}

func marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal value")
	}
	return data, nil
}

func unmarshal[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Wrap(err, "failed to unmarshal value")
	}
	return v, nil
}
