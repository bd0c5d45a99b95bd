// Package remote implements the gateway contracts over the marketplace
// HTTP API. This is the transport-adapter boundary: response envelopes,
// wire field names and query-string conventions are normalized here so the
// layers above only ever see plain entities and ordered sequences.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"tiffin/config"
	domainerrors "tiffin/internal/domain/errors"
)

// Client is the shared HTTP client every gateway uses: one base URL, one
// timeout, one place errors get shaped.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient is the constructor for the shared marketplace client.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Remote.Timeout},
		baseURL: strings.TrimRight(cfg.Remote.BaseURL, "/"),
	}
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, bearer string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, out)
}

// postJSON issues a POST with a JSON body and optionally decodes the reply.
func (c *Client) postJSON(ctx context.Context, path string, query url.Values, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, query), &buf)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// postForm issues a POST with URL-encoded form fields, matching the
// endpoints that still take multipart/form-style registration payloads.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, nil)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

// do executes the request and shapes every failure mode: transport errors
// wrap, non-2xx statuses surface the remote message, and 2xx bodies decode
// into out when asked for.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "marketplace request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read marketplace response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return domainerrors.NewRemoteError(res.StatusCode, remoteMessage(body))
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to decode marketplace response")
	}

	return nil
}

// remoteMessage extracts a user-facing message from an error body: either
// a JSON object with a "message" field, a bare JSON string, or plain text.
func remoteMessage(body []byte) string {
	var withMessage struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &withMessage); err == nil && withMessage.Message != "" {
		return withMessage.Message
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain
	}

	return strings.TrimSpace(string(body))
}
