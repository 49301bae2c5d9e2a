package requestcontext

import (
	"context"
	"net"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedHeader is read first when set (e.g. X-Real-IP, CF-Connecting-IP).
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// TrustedProxiesIP are the CIDR ranges of the proxies in front of the server.
	// The client IP is the last `X-Forwarded-For` entry outside of these ranges.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`
}

// WithClientIP puts the client IP into the request context.
func WithClientIP(config WithClientIPConfig) (Option, error) {
	trustedProxies, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		return nil, errors.Wrap(err, "invalid trusted proxies")
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		return context.WithValue(ctx, clientIPKey{}, clientIP(c, config.TrustedHeader, trustedProxies)), nil
	}, nil
}

func clientIP(c *fiber.Ctx, trustedHeader string, trustedProxies []*net.IPNet) string {
	if trustedHeader != "" {
		if ip := net.ParseIP(c.Get(trustedHeader)); ip != nil {
			return ip.String()
		}
	}

	forwarded := c.IPs()
	if len(forwarded) == 0 {
		return c.IP()
	}
	for i := len(forwarded) - 1; i >= 0; i-- {
		ip := net.ParseIP(forwarded[i])
		if ip == nil {
			continue
		}
		if !isTrusted(trustedProxies, ip) {
			return ip.String()
		}
	}
	return forwarded[0]
}

// GetClientIP returns the client IP of the request, or empty string outside of a request.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

func isTrusted(ranges []*net.IPNet, ip net.IP) bool {
	for _, r := range ranges {
		if r.Contains(ip) {
			return true
		}
	}
	return false
}

func parseCIDRs(ranges []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, ipnet, err := net.ParseCIDR(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CIDR for %q", r)
		}
		nets = append(nets, ipnet)
	}
	return nets, nil
}
