package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gerr "github.com/audira/music-metrics/internal/errors"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// Config is the connection setting of a single upstream service.
type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type upstream struct {
	name string
	cli  *resty.Client
}

func newUpstream(name string, c *Config) *upstream {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	cli := resty.New()
	cli.SetBaseURL(c.BaseURL)
	cli.SetTimeout(timeout)
	cli.SetHeader("Accept", "application/json")
	return &upstream{
		name: name,
		cli:  cli,
	}
}

// statusError is returned for non-2xx responses.
type statusError struct {
	url  string
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s: %s", e.code, e.url, e.body)
}

// unavailable tags err as an upstream failure of u.
func (u *upstream) unavailable(err error) error {
	return fmt.Errorf("%s: %w: %w", u.name, gerr.UpstreamUnavailable, err)
}

// getJSON performs GET path against the base URL and decodes the JSON body into dst.
// Failures are returned untagged so callers can inspect the status code.
func (u *upstream) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := u.cli.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("failed to make GET request to %s: %w", path, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		body := resp.Body()
		if len(body) > 512 {
			body = body[:512]
		}
		return &statusError{url: resp.Request.URL, code: resp.StatusCode(), body: string(body)}
	}

	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", resp.Request.URL, err)
	}
	return nil
}
