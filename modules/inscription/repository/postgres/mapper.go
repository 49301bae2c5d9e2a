package postgres

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/modules/inscription/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func numericFromDecimal(src decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   src.Coefficient(),
		Exp:   src.Exponent(),
		Valid: true,
	}
}

func decimalFromNumeric(src pgtype.Numeric) (decimal.Decimal, error) {
	if !src.Valid {
		return decimal.Zero, nil
	}
	if src.NaN || src.InfinityModifier != pgtype.Finite {
		return decimal.Zero, errors.Wrap(errs.InvalidArgument, "numeric is not a finite number")
	}
	return decimal.NewFromBigInt(src.Int, src.Exp), nil
}

func mapInscriptionTypeToParams(src *entity.Inscription) (gen.UpsertInscriptionParams, error) {
	var data []byte
	if src.Json != nil {
		var err error
		data, err = json.Marshal(src.Json)
		if err != nil {
			return gen.UpsertInscriptionParams{}, errors.Wrap(err, "failed to marshal inscription json")
		}
	}
	return gen.UpsertInscriptionParams{
		ID:           int64(src.Id),
		TxHash:       src.TxHash,
		BlockNumber:  int64(src.BlockNumber),
		FromAddress:  src.From,
		ToAddress:    src.To,
		MimeType:     src.MimeType,
		MimeCategory: src.MimeCategory.String(),
		MimeData:     src.MimeData,
		Json:         data,
		Signature:    src.Signature,
		Verified:     src.Verified.String(),
	}, nil
}

func mapInscriptionModelToType(src gen.Inscription) (*entity.Inscription, error) {
	var data map[string]any
	if len(src.Json) > 0 {
		if err := json.Unmarshal(src.Json, &data); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal inscription json")
		}
	}
	return &entity.Inscription{
		Id:           uint64(src.ID),
		TxHash:       src.TxHash,
		BlockNumber:  uint64(src.BlockNumber),
		From:         src.FromAddress,
		To:           src.ToAddress,
		MimeType:     src.MimeType,
		MimeCategory: entity.MimeCategory(src.MimeCategory),
		MimeData:     src.MimeData,
		Json:         data,
		Signature:    src.Signature,
		Verified:     entity.VerifiedStatus(src.Verified),
	}, nil
}

func mapNftCollectionTypeToParams(src *entity.NftCollection) gen.CreateNftCollectionParams {
	items := src.Items
	if items == nil {
		items = []string{}
	}
	return gen.CreateNftCollectionParams{
		TxHash:        strings.ToLower(src.TxHash),
		InscriptionID: int64(src.InscriptionId),
		Deployer:      src.Deployer,
		Name:          src.Name,
		Description:   src.Description,
		Url:           src.Url,
		Image:         src.Image,
		Icon:          src.Icon,
		Items:         items,
	}
}

func mapNftCollectionModelToType(src gen.InscriptionNftCollection) *entity.NftCollection {
	return &entity.NftCollection{
		TxHash:        src.TxHash,
		InscriptionId: uint64(src.InscriptionID),
		Deployer:      src.Deployer,
		Name:          src.Name,
		Description:   src.Description,
		Url:           src.Url,
		Image:         src.Image,
		Icon:          src.Icon,
		Items:         src.Items,
	}
}

func mapTokenTypeToParams(src *entity.Token) gen.CreateTokenParams {
	return gen.CreateTokenParams{
		Tick:                src.Tick,
		Max:                 numericFromDecimal(src.Max),
		Limit:               numericFromDecimal(src.Limit),
		Decimals:            int16(src.Decimals),
		Minted:              numericFromDecimal(src.Minted),
		Holders:             int64(src.Holders),
		DeployInscriptionID: int64(src.DeployInscriptionId),
		DeployTxHash:        src.DeployTxHash,
		DeployBy:            src.DeployBy,
		DeployBlockNumber:   int64(src.DeployBlockNumber),
	}
}

func mapTokenModelToType(src gen.InscriptionToken) (*entity.Token, error) {
	maxSupply, err := decimalFromNumeric(src.Max)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse max")
	}
	limit, err := decimalFromNumeric(src.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse limit")
	}
	minted, err := decimalFromNumeric(src.Minted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse minted")
	}
	return &entity.Token{
		Tick:                src.Tick,
		Max:                 maxSupply,
		Limit:               limit,
		Decimals:            uint16(src.Decimals),
		Minted:              minted,
		Holders:             uint64(src.Holders),
		DeployInscriptionId: uint64(src.DeployInscriptionID),
		DeployTxHash:        src.DeployTxHash,
		DeployBy:            src.DeployBy,
		DeployBlockNumber:   uint64(src.DeployBlockNumber),
	}, nil
}
