package errorhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: NewHTTPErrorHandler()})
	app.Get("/public", func(*fiber.Ctx) error {
		return errors.Wrap(errs.NewPublicError("token not found"), "GetToken")
	})
	app.Get("/fiber", func(*fiber.Ctx) error {
		return fiber.ErrServiceUnavailable
	})
	app.Get("/internal", func(*fiber.Ctx) error {
		return errors.New("database is gone")
	})

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/public", http.StatusBadRequest, "token not found"},
		{"/fiber", http.StatusServiceUnavailable, "Service Unavailable"},
		{"/internal", http.StatusInternalServerError, "Internal Server Error"},
		{"/missing", http.StatusNotFound, "Cannot GET /missing"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}
