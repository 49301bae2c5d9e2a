package httphandler

import (
	"github.com/gaze-network/inscription-indexer/common"
	"github.com/gaze-network/inscription-indexer/modules/inscription/usecase"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

type HttpResponse[T any] common.HttpResponse[T]
