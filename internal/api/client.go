// Package api is the HTTP request pipeline for the Taskzilla REST API: a
// single client every remote call goes through, with a fixed outgoing stage
// (bearer token attachment) and incoming stage (error normalization).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskzilla/taskzilla-cli/internal/apierr"
	"github.com/taskzilla/taskzilla-cli/internal/log"
	"github.com/taskzilla/taskzilla-cli/internal/notify"
)

// TokenSource supplies the current bearer token. An empty string means the
// request goes out unauthenticated; the pipeline never rejects on a missing
// token.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a function to a TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Client is the shared pipeline for all Taskzilla API calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	notifier   notify.Notifier
	logger     *log.Logger

	// onAuthFailure is invoked once per 401 response; the session layer
	// registers its idempotent invalidation here.
	onAuthFailure func()
}

// Options configures a Client. Zero fields get defaults.
type Options struct {
	HTTPClient    *http.Client
	Tokens        TokenSource
	Notifier      notify.Notifier
	Logger        *log.Logger
	OnAuthFailure func()
}

// NewClient creates a pipeline client for the API at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Tokens == nil {
		opts.Tokens = TokenSourceFunc(func() string { return "" })
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.DefaultLogger()
	}
	if opts.OnAuthFailure == nil {
		opts.OnAuthFailure = func() {}
	}

	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    opts.HTTPClient,
		tokens:        opts.Tokens,
		notifier:      opts.Notifier,
		logger:        opts.Logger,
		onAuthFailure: opts.OnAuthFailure,
	}
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one API call and returns the decoded success envelope.
// Every failure comes back as a *apierr.Error; raw transport errors never
// escape the pipeline.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*Envelope, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(method, path, apierr.Wrap(apierr.KindUnknown, apierr.MsgUnknown, err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, c.fail(method, path, apierr.Wrap(apierr.KindUnknown, apierr.MsgUnknown, err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(method, path, apierr.NewNetwork(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(method, path, apierr.NewNetwork(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(method, path, c.normalize(resp.StatusCode, respBody))
	}

	env := &Envelope{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, env); err != nil {
			return nil, c.fail(method, path, apierr.Wrap(apierr.KindUnknown, apierr.MsgUnknown, err))
		}
	}
	return env, nil
}

// normalize classifies a failed response into the single error taxonomy the
// rest of the app sees. The 401 side effect (session invalidation) fires here.
func (c *Client) normalize(status int, body []byte) *apierr.Error {
	var env Envelope
	// The error envelope is best-effort: a failed parse leaves message and
	// field map empty and classification falls back to the fixed messages.
	_ = json.Unmarshal(body, &env)

	normalized := apierr.FromStatus(status, env.Message, env.Errors)

	if status == http.StatusUnauthorized {
		c.onAuthFailure()
	}

	return normalized
}

// fail logs the normalized error and emits the global notification for every
// kind except validation, which is rendered field-locally by the caller.
func (c *Client) fail(method, path string, normalized *apierr.Error) *apierr.Error {
	c.logger.WithError(normalized).Debug("request failed", "method", method, "path", path)
	if normalized.Notifiable() {
		c.notifier.Error(normalized.Message)
	}
	return normalized
}
