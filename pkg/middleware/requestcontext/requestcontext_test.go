package requestcontext

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, config WithClientIPConfig) *fiber.App {
	t.Helper()
	withClientIP, err := WithClientIP(config)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(New(WithRequestId(), withClientIP))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestId(c.UserContext()) + "|" + GetClientIP(c.UserContext()))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, header map[string]string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestWithRequestId(t *testing.T) {
	app := newTestApp(t, WithClientIPConfig{})

	body := doRequest(t, app, map[string]string{fiber.HeaderXRequestID: "req-1"})
	assert.Regexp(t, `^req-1\|`, body)

	body = doRequest(t, app, nil)
	assert.NotRegexp(t, `^\|`, body, "request id must be generated")
}

func TestWithClientIP(t *testing.T) {
	tests := []struct {
		name     string
		config   WithClientIPConfig
		header   map[string]string
		expected string
	}{
		{
			name:     "trusted header",
			config:   WithClientIPConfig{TrustedHeader: "X-Real-IP"},
			header:   map[string]string{"X-Real-IP": "1.1.1.1", fiber.HeaderXForwardedFor: "2.2.2.2"},
			expected: "1.1.1.1",
		},
		{
			name:     "skip trusted proxies",
			config:   WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}},
			header:   map[string]string{fiber.HeaderXForwardedFor: "9.9.9.9, 3.3.3.3, 10.0.0.2"},
			expected: "3.3.3.3",
		},
		{
			name:     "all trusted",
			config:   WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}},
			header:   map[string]string{fiber.HeaderXForwardedFor: "10.0.0.1, 10.0.0.2"},
			expected: "10.0.0.1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.config)
			body := doRequest(t, app, tt.header)
			assert.Regexp(t, `\|`+tt.expected+`$`, body)
		})
	}
}

func TestWithClientIPInvalidCIDR(t *testing.T) {
	_, err := WithClientIP(WithClientIPConfig{TrustedProxiesIP: []string{"not-a-cidr"}})
	assert.Error(t, err)
}
