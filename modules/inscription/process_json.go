package inscription

import (
	"context"

	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
)

// processJson dispatches on the `p` field, then on `op`.
func (c *InscribeContext) processJson(ctx context.Context, insc *entity.Inscription) (bool, error) {
	if insc.Json == nil {
		return reject(ctx, "missing json payload")
	}
	p, ok := insc.Json["p"].(string)
	if !ok {
		return reject(ctx, "missing or invalid p")
	}
	op, ok := insc.Json["op"].(string)
	if !ok {
		return reject(ctx, "missing or invalid op")
	}

	switch p {
	case CollectionApp:
		switch op {
		case OpCollectionDeploy:
			return c.processCollectionDeploy(ctx, insc)
		default:
			return reject(ctx, "unknown collection operation", slogx.String("op", op))
		}
	case TokenProtocol:
		return c.processToken(ctx, insc)
	default:
		return reject(ctx, "unknown json protocol", slogx.String("p", p))
	}
}

// processInvoke rejects invoke inscriptions until they have a rule set.
func (c *InscribeContext) processInvoke(ctx context.Context, _ *entity.Inscription) (bool, error) {
	return reject(ctx, "invoke inscriptions are not supported")
}
