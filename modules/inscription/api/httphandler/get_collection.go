package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getCollectionRequest struct {
	Tx string `params:"tx"`
}

func (r getCollectionRequest) Validate() error {
	var errList []error
	if !isTxHash(r.Tx) {
		errList = append(errList, errors.Errorf("tx '%s' is not valid transaction hash", r.Tx))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getCollectionResult struct {
	TxHash        string   `json:"txHash"`
	InscriptionId uint64   `json:"inscriptionId"`
	Deployer      string   `json:"deployer"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Url           string   `json:"url"`
	Image         string   `json:"image"`
	Icon          string   `json:"icon"`
	Items         []string `json:"items"`
}

type getCollectionResponse = HttpResponse[getCollectionResult]

func (h *HttpHandler) GetCollection(ctx *fiber.Ctx) (err error) {
	var req getCollectionRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	collection, err := h.usecase.GetNftCollectionByTx(ctx.UserContext(), req.Tx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("collection not found")
		}
		return errors.Wrap(err, "error during GetNftCollectionByTx")
	}

	resp := getCollectionResponse{
		Result: &getCollectionResult{
			TxHash:        collection.TxHash,
			InscriptionId: collection.InscriptionId,
			Deployer:      collection.Deployer,
			Name:          collection.Name,
			Description:   collection.Description,
			Url:           collection.Url,
			Image:         collection.Image,
			Icon:          collection.Icon,
			Items:         collection.Items,
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}
