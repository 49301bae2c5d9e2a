package api

import (
	"github.com/gaze-network/inscription-indexer/modules/inscription/api/httphandler"
	"github.com/gaze-network/inscription-indexer/modules/inscription/usecase"
)

func NewHTTPHandler(usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(usecase)
}
