package usecase

import (
	"github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
)

type Usecase struct {
	inscriptionDg datagateway.InscriptionDataGateway
}

func New(inscriptionDg datagateway.InscriptionDataGateway) *Usecase {
	return &Usecase{
		inscriptionDg: inscriptionDg,
	}
}
