// Package ratelimit limits how often a single client may request reports.
package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/httprate"
)

const limitedMessage = `{"error":"too many requests, please try again later"}`

// Config bounds how many requests a single client may make per window.
// A zero MaxRequests disables limiting.
//
// TrustedProxies lists the addresses or CIDR ranges whose forwarding headers
// are believed. Requests from anywhere else are keyed by their remote address.
type Config struct {
	Window         time.Duration `mapstructure:"window"`
	MaxRequests    int           `mapstructure:"max_requests"`
	TrustedProxies []string      `mapstructure:"trusted_proxies"`
}

// Enabled reports whether c limits anything.
func (c Config) Enabled() bool {
	return c.MaxRequests > 0 && c.Window > 0
}

// ParseTrustedProxies turns addresses and CIDR ranges into prefixes. A bare
// address becomes a single host prefix. Invalid entries are skipped and
// returned separately.
func ParseTrustedProxies(entries []string) (prefixes []netip.Prefix, invalid []string) {
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if p, err := netip.ParsePrefix(e); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(e); err == nil {
			a = a.Unmap()
			prefixes = append(prefixes, netip.PrefixFrom(a, a.BitLen()))
			continue
		}
		invalid = append(invalid, e)
	}
	return prefixes, invalid
}

// Middleware rejects requests over the per-client limit with 429.
func Middleware(c Config) func(http.Handler) http.Handler {
	if !c.Enabled() {
		return func(next http.Handler) http.Handler { return next }
	}
	trusted, invalid := ParseTrustedProxies(c.TrustedProxies)
	if len(invalid) > 0 {
		slog.Default().Warn("ignoring invalid trusted proxies", slog.Any("entries", invalid))
	}
	return httprate.Limit(
		c.MaxRequests,
		c.Window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return ClientIP(r, trusted), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			slog.Default().WarnContext(r.Context(), "report rate limit exceeded",
				slog.String("client_ip", ClientIP(r, trusted)),
				slog.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(limitedMessage))
		}),
	)
}

// ClientIP extracts the caller address. Forwarding headers are only honored
// when the peer is a trusted proxy. X-Forwarded-For is read from the right,
// skipping trusted hops, so a client cannot choose its key by prepending
// entries.
func ClientIP(r *http.Request, trusted []netip.Prefix) string {
	remote := remoteHost(r.RemoteAddr)
	if !isTrusted(remote, trusted) {
		return remote
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if i == 0 || !isTrusted(hop, trusted) {
				return hop
			}
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if cfip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); cfip != "" {
		return cfip
	}
	return remote
}

func remoteHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	a, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	a = a.Unmap()
	for _, p := range trusted {
		if p.Contains(a) {
			return true
		}
	}
	return false
}
