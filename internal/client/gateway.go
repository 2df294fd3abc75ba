// Package client implements the outbound request pipeline shared by every
// backend call: JSON shaping, bearer-token injection from durable storage,
// and 401 classification, plus typed bindings for the three TaskHub services.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/taskhub-client/internal/client/metrics"
	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

const (
	// DefaultGracePeriod is how long after a login a 401 is treated as a
	// race with in-flight pre-login requests rather than a dead session.
	DefaultGracePeriod = 5 * time.Second

	// excludedPath marks credential-probe endpoints hit by non-application
	// callers; their 401s never touch the session.
	excludedPath = "/credentials"
)

// StatusError is a non-2xx response from a backend service. When the 401
// classification forced a session reset, the error additionally unwraps to
// domain.ErrSessionExpired.
type StatusError struct {
	Code    int
	Message string
	cause   error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("http %d", e.Code)
}

func (e *StatusError) Unwrap() error { return e.cause }

// Options configures a Gateway. Durable and Session are the two storage
// tiers; Navigator receives the redirect when a session is declared expired.
type Options struct {
	HTTPClient  *http.Client
	Durable     ports.KeyValue
	Session     ports.KeyValue
	Navigator   ports.Navigator
	Logger      zerolog.Logger
	GracePeriod time.Duration
	Now         func() time.Time
}

// Gateway is the uniform request pipeline. It attaches the bearer token when
// durable storage holds one, performs the call, and classifies 401 responses.
// It performs no retries and sets no timeout of its own; timeout policy is
// whatever the injected http.Client does.
type Gateway struct {
	httpClient  *http.Client
	durable     ports.KeyValue
	session     ports.KeyValue
	nav         ports.Navigator
	log         zerolog.Logger
	gracePeriod time.Duration
	now         func() time.Time
}

func NewGateway(opts Options) *Gateway {
	g := &Gateway{
		httpClient:  opts.HTTPClient,
		durable:     opts.Durable,
		session:     opts.Session,
		nav:         opts.Navigator,
		log:         opts.Logger,
		gracePeriod: opts.GracePeriod,
		now:         opts.Now,
	}
	if g.httpClient == nil {
		g.httpClient = http.DefaultClient
	}
	if g.gracePeriod <= 0 {
		g.gracePeriod = DefaultGracePeriod
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// Client binds the gateway to one backend service.
func (g *Gateway) Client(service, baseURL string) *Client {
	return &Client{gateway: g, service: service, baseURL: strings.TrimRight(baseURL, "/")}
}

// Client issues requests against a single service base URL through the
// shared gateway pipeline.
type Client struct {
	gateway *Gateway
	service string
	baseURL string
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	g := c.gateway

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token, err := g.durable.Get(ports.TokenKey); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(c.service, method, "network_error").Inc()
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetworkFailure, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RequestsTotal.WithLabelValues(c.service, method, "http_error").Inc()
		se := &StatusError{Code: resp.StatusCode, Message: errorMessage(resp.Body)}
		if resp.StatusCode == http.StatusUnauthorized {
			g.classify401(path, se)
		}
		return se
	}

	metrics.RequestsTotal.WithLabelValues(c.service, method, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// classify401 decides what a 401 means. Credential-probe paths and 401s
// inside the post-login grace window pass through untouched; anything else
// clears the persisted session state and redirects to the login entry point.
// The in-memory Session is deliberately not notified (it may keep reporting
// authenticated until the redirect takes effect).
func (g *Gateway) classify401(path string, se *StatusError) {
	if strings.Contains(path, excludedPath) {
		metrics.UnauthorizedTotal.WithLabelValues("excluded").Inc()
		return
	}

	if raw, err := g.session.Get(ports.LoginTimeKey); err == nil {
		if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
			elapsed := g.now().Sub(time.UnixMilli(millis))
			if elapsed < g.gracePeriod {
				g.log.Warn().
					Str("path", path).
					Dur("since_login", elapsed).
					Msg("401 during grace period after login, ignoring logout")
				metrics.UnauthorizedTotal.WithLabelValues("grace").Inc()
				return
			}
		}
	}

	metrics.UnauthorizedTotal.WithLabelValues("expired").Inc()
	_ = g.durable.Remove(ports.TokenKey)
	_ = g.session.Remove(ports.LoginTimeKey)
	se.cause = domain.ErrSessionExpired
	if g.nav != nil {
		g.nav.RedirectToLogin()
	}
}

// errorMessage extracts a human-readable message from an error body. Both
// envelope shapes used by the services are understood: {"error": …} and
// {"detail": …}.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var envelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Detail
}

// IsUnauthorized reports whether err is a 401 StatusError.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}

func asStatus(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}
