package inscription

import (
	"context"
	"crypto/sha1" // nolint: gosec
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
)

// ContentSignature returns the lower-case hex SHA-1 digest of the payload.
func ContentSignature(data string) string {
	sum := sha1.Sum([]byte(data)) // nolint: gosec
	return hex.EncodeToString(sum[:])
}

// processPlain accepts a text or image inscription only if its content was never inscribed before.
func (c *InscribeContext) processPlain(ctx context.Context, insc *entity.Inscription) (bool, error) {
	signature := ContentSignature(insc.MimeData)

	if id, ok := c.signatures[signature]; ok {
		return reject(ctx, "duplicate content in block", slogx.Uint64("duplicate_of", id))
	}
	exists, err := c.store.InscriptionSignExists(ctx, signature)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if exists {
		return reject(ctx, "duplicate content", slogx.String("signature", signature))
	}

	c.signatures[signature] = insc.Id
	insc.Signature = signature
	return true, nil
}
