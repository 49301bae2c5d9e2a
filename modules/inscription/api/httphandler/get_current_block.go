package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type getCurrentBlockResult struct {
	TopInscriptionId     uint64 `json:"topInscriptionId"`
	TopInscriptionSyncId uint64 `json:"topInscriptionSyncId"`
	SyncBlockNumber      uint64 `json:"syncBlockNumber"`
}

type getCurrentBlockResponse = HttpResponse[getCurrentBlockResult]

func (h *HttpHandler) GetCurrentBlock(ctx *fiber.Ctx) (err error) {
	state, err := h.usecase.GetSyncState(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetSyncState")
	}

	resp := getCurrentBlockResponse{
		Result: &getCurrentBlockResult{
			TopInscriptionId:     state.TopInscriptionId,
			TopInscriptionSyncId: state.TopInscriptionSyncId,
			SyncBlockNumber:      state.SyncBlockNumber,
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}
