package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gaze-network/inscription-indexer/common"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// Option enriches the request context. An error aborts the request with 500.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				logger.ErrorContext(ctx, "failed to extract request context",
					slogx.Error(err),
					slog.String("event", "requestcontext/error"),
					slog.Int("optionIndex", i),
				)
				message := "internal server error"
				return c.Status(http.StatusInternalServerError).JSON(common.HttpResponse[any]{Error: &message})
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
