package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/inscription")

	r.Get("/block", h.GetCurrentBlock)
	r.Get("/inscriptions/:tx", h.GetInscription)
	r.Get("/collections/:tx", h.GetCollection)
	r.Get("/tokens", h.GetTokens)
	r.Get("/tokens/:tick", h.GetToken)
	r.Get("/tokens/:tick/balances/:address", h.GetTokenBalance)
	return nil
}
