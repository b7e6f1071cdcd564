// Package api is a small HTTP client for the Strongspace REST API.
//
// Every failing response is returned as an *Error carrying the status code
// and raw body, so callers can decide how much of the body to show.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/log"
)

const (
	apiPrefix       = "/api/v1"
	defaultTimeout  = 30 * time.Second
	maxResponseBody = 1 << 20
)

// Client talks to the Strongspace API using the stored credentials.
type Client struct {
	baseURL   string
	http      *http.Client
	creds     domain.CredentialStore
	logger    domain.Logger
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l domain.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for baseURL. Credentials are read from creds on
// every request so a re-authentication is picked up immediately.
func New(baseURL string, creds domain.CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: defaultTimeout},
		creds:     creds,
		logger:    log.NopLogger{},
		userAgent: "strongspace-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// basicAuth is the username/secret pair sent with a request.
type basicAuth struct {
	username string
	secret   string
}

func (c *Client) storedAuth(method, path string) (basicAuth, error) {
	creds, err := c.creds.Load()
	if err != nil {
		return basicAuth{}, err
	}
	if creds.IsEmpty() {
		// No login yet: behave like the server would so the caller's
		// re-authentication path kicks in.
		return basicAuth{}, &Error{Kind: KindUnauthorized, Method: method, Path: path}
	}
	return basicAuth{username: creds.Username, secret: creds.Token}, nil
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	auth, err := c.storedAuth(method, apiPrefix+path)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, auth, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, auth basicAuth, in, out any) error {
	fullPath := apiPrefix + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+fullPath, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(auth.username, auth.secret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api: %s %s", method, fullPath)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(method, fullPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return c.transportError(method, fullPath, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("api: %s %s returned %d", method, fullPath, resp.StatusCode)
		return &Error{
			Kind:       kindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			Method:     method,
			Path:       fullPath,
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, fullPath, err)
	}
	return nil
}

// transportError turns a failure below HTTP into either a timeout *Error
// or a wrapped error. Cancellation keeps context.Canceled in the chain.
func (c *Client) transportError(method, path string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		c.logger.Warn("api: %s %s timed out: %v", method, path, err)
		return &Error{Kind: KindTimeout, Method: method, Path: path}
	}

	c.logger.Error("api: %s %s failed: %v", method, path, err)
	return fmt.Errorf("%s %s: %w", method, path, err)
}

// Verify Client implements domain.API
var _ domain.API = (*Client)(nil)
