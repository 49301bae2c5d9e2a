package inscription

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/modules/inscription/internal/token"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/shopspring/decimal"
)

func (c *InscribeContext) processToken(ctx context.Context, insc *entity.Inscription) (bool, error) {
	payload, err := token.ParsePayload(TokenProtocol, insc.Json)
	if err != nil {
		return reject(ctx, "invalid token payload", slogx.Error(err))
	}
	ctx = logger.WithContext(ctx, slogx.String("tick", payload.Tick), slogx.Stringer("op", payload.Op))

	switch payload.Op {
	case token.OperationDeploy:
		return c.processTokenDeploy(ctx, insc, payload)
	case token.OperationMint:
		return c.processTokenMint(ctx, insc, payload)
	case token.OperationTransfer:
		return c.processTokenTransfer(ctx, insc, payload)
	default:
		return reject(ctx, "unknown token operation")
	}
}

func (c *InscribeContext) processTokenDeploy(ctx context.Context, insc *entity.Inscription, payload *token.Payload) (bool, error) {
	if _, ok := c.tokenCache[payload.Tick]; ok {
		return reject(ctx, "token already deployed")
	}
	c.tokenCache[payload.Tick] = &entity.Token{
		Tick:                payload.Tick,
		Max:                 payload.Max,
		Limit:               payload.Lim,
		Decimals:            payload.Dec,
		Minted:              decimal.Zero,
		DeployInscriptionId: insc.Id,
		DeployTxHash:        insc.TxHash,
		DeployBy:            insc.From,
		DeployBlockNumber:   insc.BlockNumber,
		Deploy:              true,
	}
	return true, nil
}

// processTokenMint credits the minter. A mint must fit both the per-mint limit and the remaining supply.
func (c *InscribeContext) processTokenMint(ctx context.Context, insc *entity.Inscription, payload *token.Payload) (bool, error) {
	t, ok := c.tokenCache[payload.Tick]
	if !ok {
		return reject(ctx, "token not deployed")
	}
	if !token.CheckDecimals(payload.Amt, t.Decimals) {
		return reject(ctx, "amount exceeds token decimals")
	}
	if payload.Amt.GreaterThan(t.Limit) {
		return reject(ctx, "amount exceeds mint limit", slogx.Stringer("limit", t.Limit))
	}
	if t.Minted.Add(payload.Amt).GreaterThan(t.Max) {
		return reject(ctx, "amount exceeds remaining supply", slogx.Stringer("minted", t.Minted))
	}
	if c.filter.IsMintPass(insc.TxHash) {
		logger.DebugContext(ctx, "Mint is in the mint pass-list")
	}

	t.Minted = t.Minted.Add(payload.Amt)
	t.Updated = true
	c.addTokenBalance(t.Tick, insc.From, payload.Amt)
	return true, nil
}

// processTokenTransfer moves amt from the sender to the recipient.
func (c *InscribeContext) processTokenTransfer(ctx context.Context, insc *entity.Inscription, payload *token.Payload) (bool, error) {
	t, ok := c.tokenCache[payload.Tick]
	if !ok {
		return reject(ctx, "token not deployed")
	}
	if !token.CheckDecimals(payload.Amt, t.Decimals) {
		return reject(ctx, "amount exceeds token decimals")
	}
	if insc.To == "" || sameAddress(insc.From, insc.To) {
		return reject(ctx, "invalid transfer recipient")
	}

	balance, err := c.tokenBalance(ctx, t.Tick, insc.From)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if balance.LessThan(payload.Amt) {
		return reject(ctx, "insufficient balance", slogx.Stringer("balance", balance))
	}

	c.addTokenBalance(t.Tick, insc.From, payload.Amt.Neg())
	c.addTokenBalance(t.Tick, insc.To, payload.Amt)
	c.tokenTransfers = append(c.tokenTransfers, entity.TokenTransfer{
		Tick:          t.Tick,
		InscriptionId: insc.Id,
	})
	return true, nil
}
