package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// NewHTTPErrorHandler renders handler errors as common.HttpResponse.
// Public errors are 400 with their message, fiber errors keep their status, anything else is a logged 500.
func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			return respond(ctx, http.StatusBadRequest, e.Message())
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return respond(ctx, e.Code, e.Message)
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
			slogx.String("event", "api_unhandled_error"),
			slogx.Error(err),
		)
		return respond(ctx, http.StatusInternalServerError, "Internal Server Error")
	}
}

func respond(ctx *fiber.Ctx, status int, message string) error {
	return errors.WithStack(ctx.Status(status).JSON(common.HttpResponse[any]{
		Error: &message,
	}))
}
