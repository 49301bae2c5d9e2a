package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getInscriptionRequest struct {
	Tx string `params:"tx"`
}

func (r getInscriptionRequest) Validate() error {
	var errList []error
	if !isTxHash(r.Tx) {
		errList = append(errList, errors.Errorf("tx '%s' is not valid transaction hash", r.Tx))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type nftTransfer struct {
	InscriptionId uint64 `json:"inscriptionId"`
	NftId         uint64 `json:"nftId"`
	Index         uint32 `json:"index"`
}

type getInscriptionResult struct {
	*entity.Inscription
	Holder       *string       `json:"holder"`
	CollectionTx *string       `json:"collectionTx"`
	Transfers    []nftTransfer `json:"transfers"`
}

type getInscriptionResponse = HttpResponse[getInscriptionResult]

func (h *HttpHandler) GetInscription(ctx *fiber.Ctx) (err error) {
	var req getInscriptionRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.usecase.GetInscriptionByTx(ctx.UserContext(), req.Tx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("inscription not found")
		}
		return errors.Wrap(err, "error during GetInscriptionByTx")
	}

	resp := getInscriptionResponse{
		Result: &getInscriptionResult{
			Inscription:  detail.Inscription,
			Holder:       optionalString(detail.Holder),
			CollectionTx: optionalString(detail.CollectionTx),
			Transfers: lo.Map(detail.Transfers, func(t entity.NftTransfer, _ int) nftTransfer {
				return nftTransfer{
					InscriptionId: t.InscriptionId,
					NftId:         t.NftId,
					Index:         t.Index,
				}
			}),
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
