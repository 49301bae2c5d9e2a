package httphandler

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type getTokenRequest struct {
	Tick string `params:"tick"`
}

func (r *getTokenRequest) Validate() error {
	tick, err := url.QueryUnescape(r.Tick)
	if err != nil {
		return errors.WithStack(err)
	}
	r.Tick = tick
	var errList []error
	if !isTick(r.Tick) {
		errList = append(errList, errors.Errorf("tick '%s' is not valid", r.Tick))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type tokenInfo struct {
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
	MintedOut           bool            `json:"mintedOut"`
}

func mapTokenInfo(t *entity.Token) tokenInfo {
	return tokenInfo{
		Tick:                t.Tick,
		Max:                 t.Max,
		Limit:               t.Limit,
		Decimals:            t.Decimals,
		Minted:              t.Minted,
		Holders:             t.Holders,
		DeployInscriptionId: t.DeployInscriptionId,
		DeployTxHash:        t.DeployTxHash,
		DeployBy:            t.DeployBy,
		DeployBlockNumber:   t.DeployBlockNumber,
		MintedOut:           t.IsMintedOut(),
	}
}

type getTokensResponse = HttpResponse[[]tokenInfo]

func (h *HttpHandler) GetTokens(ctx *fiber.Ctx) (err error) {
	tokens, err := h.usecase.GetTokens(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetTokens")
	}

	result := lo.Map(tokens, func(t *entity.Token, _ int) tokenInfo { return mapTokenInfo(t) })
	return errors.WithStack(ctx.JSON(getTokensResponse{Result: &result}))
}

type getTokenResult struct {
	tokenInfo
	TransferInscriptionIds []uint64 `json:"transferInscriptionIds"`
}

type getTokenResponse = HttpResponse[getTokenResult]

func (h *HttpHandler) GetToken(ctx *fiber.Ctx) (err error) {
	var req getTokenRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.usecase.GetToken(ctx.UserContext(), req.Tick)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("token not found")
		}
		return errors.Wrap(err, "error during GetToken")
	}
	transfers, err := h.usecase.GetTokenTransfers(ctx.UserContext(), token.Tick)
	if err != nil {
		return errors.Wrap(err, "error during GetTokenTransfers")
	}

	resp := getTokenResponse{
		Result: &getTokenResult{
			tokenInfo:              mapTokenInfo(token),
			TransferInscriptionIds: transfers,
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}

type getTokenBalanceRequest struct {
	Tick    string `params:"tick"`
	Address string `params:"address"`
}

func (r *getTokenBalanceRequest) Validate() error {
	tickReq := getTokenRequest{Tick: r.Tick}
	if err := tickReq.Validate(); err != nil {
		return errors.WithStack(err)
	}
	r.Tick = tickReq.Tick
	var errList []error
	if r.Address == "" {
		errList = append(errList, errors.New("'address' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getTokenBalanceResult struct {
	Tick    string          `json:"tick"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

type getTokenBalanceResponse = HttpResponse[getTokenBalanceResult]

func (h *HttpHandler) GetTokenBalance(ctx *fiber.Ctx) (err error) {
	var req getTokenBalanceRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.usecase.GetToken(ctx.UserContext(), req.Tick)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("token not found")
		}
		return errors.Wrap(err, "error during GetToken")
	}
	balance, err := h.usecase.GetTokenBalance(ctx.UserContext(), token.Tick, req.Address)
	if err != nil {
		return errors.Wrap(err, "error during GetTokenBalance")
	}

	resp := getTokenBalanceResponse{
		Result: &getTokenBalanceResult{
			Tick:    token.Tick,
			Address: req.Address,
			Balance: balance,
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}
