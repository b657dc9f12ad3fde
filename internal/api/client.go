package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blackwell-systems/libdash/internal/config"
	"github.com/blackwell-systems/libdash/internal/session"
)

// Client is the authenticated backend API client every entity screen is
// built on. It attaches the bearer token, serializes bodies, interprets
// response statuses, and funnels every failure through a single reporting
// hook so callers never duplicate user-facing messages.
type Client struct {
	session  *session.Session
	baseURL  string
	resource string
	http     *http.Client
	onError  func(error)
}

// New creates a Client for the configured backend.
func New(cfg *config.Config, sess *session.Session) *Client {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		session:  sess,
		baseURL:  strings.TrimRight(cfg.Server.BaseURL, "/"),
		resource: strings.TrimRight(cfg.Server.BaseURL, "/") + cfg.Server.APIPrefix,
		http:     &http.Client{Timeout: timeout},
	}
}

// OnError installs the single error-reporting hook. Every request failure
// is passed to it exactly once before being returned.
func (c *Client) OnError(fn func(error)) {
	c.onError = fn
}

// Session returns the session this client authenticates with.
func (c *Client) Session() *session.Session {
	return c.session
}

func (c *Client) report(err error) error {
	if err == nil {
		return nil
	}
	if c.onError != nil {
		c.onError(err)
	}
	return &reportedError{err: err}
}

// do executes the request with the bearer token when one is present. An
// absent token is not an error here — the server rejects appropriately.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	if req.Header.Get("Content-Type") == "" && req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// doJSON sends a request with an optional JSON body and decodes the JSON
// response into out (which may be nil). All error paths funnel through the
// reporting hook.
func (c *Client) doJSON(method, url string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return c.report(err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return c.report(err)
	}
	resp, err := c.do(req)
	if err != nil {
		return c.report(fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp); err != nil {
		return c.report(err)
	}

	// 204, and DELETE responses without a JSON body, carry no content.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if method == http.MethodDelete &&
		!strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil
	}
	if out != nil {
		if err := decodeBody(resp, out); err != nil {
			return c.report(err)
		}
	}
	return nil
}

// resourceURL builds a resource endpoint URL under the API prefix.
func (c *Client) resourceURL(parts ...string) string {
	return c.resource + "/" + strings.Join(parts, "/")
}

// authURL builds a bare auth endpoint URL at the server root.
func (c *Client) authURL(path string) string {
	return c.baseURL + path
}

// checkStatus maps a non-2xx response into the error taxonomy. A 401
// destroys the session as a side effect: the token is gone for every
// later call in this process and for the next run.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		_ = c.session.Invalidate()
		return ErrUnauthorized
	case http.StatusForbidden:
		detail := extractDetail(resp.Body)
		if detail == "" {
			return ErrForbidden
		}
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	default:
		return &APIError{Status: resp.StatusCode, Detail: extractDetail(resp.Body)}
	}
}

func decodeBody(resp *http.Response, out interface{}) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// extractDetail pulls the server's {"detail": ...} message out of an error
// body, falling back to the raw text when the body is not JSON.
func extractDetail(r io.Reader) string {
	raw, _ := io.ReadAll(r)
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(raw))
}
