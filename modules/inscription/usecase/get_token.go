package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// GetTokens returns every deployed token ordered by tick.
func (u *Usecase) GetTokens(ctx context.Context) ([]*entity.Token, error) {
	tokens, err := u.inscriptionDg.GetTokens(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetTokens")
	}
	result := lo.Values(tokens)
	sort.Slice(result, func(i, j int) bool { return result[i].Tick < result[j].Tick })
	return result, nil
}

func (u *Usecase) GetToken(ctx context.Context, tick string) (*entity.Token, error) {
	token, err := u.inscriptionDg.GetToken(ctx, strings.ToLower(tick))
	if err != nil {
		return nil, errors.Wrap(err, "error during GetToken")
	}
	return token, nil
}

func (u *Usecase) GetTokenBalance(ctx context.Context, tick string, address string) (decimal.Decimal, error) {
	balance, err := u.inscriptionDg.GetTokenBalance(ctx, strings.ToLower(tick), address)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "error during GetTokenBalance")
	}
	return balance, nil
}

// GetTokenTransfers returns the ids of the transfer inscriptions of the token.
func (u *Usecase) GetTokenTransfers(ctx context.Context, tick string) ([]uint64, error) {
	ids, err := u.inscriptionDg.GetTokenTransfers(ctx, strings.ToLower(tick))
	if err != nil {
		return nil, errors.Wrap(err, "error during GetTokenTransfers")
	}
	return ids, nil
}
