// Package backend is the single configured HTTP client every resource module
// sends through. It attaches the session's bearer token to outgoing requests
// and reacts to credential rejections; it never retries, caches, or batches.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
)

const errorBodyReadLimit int64 = 4096

var errBaseURLRequired = errors.New("backend base URL is required")

// TokenSource supplies the current bearer token; empty means unauthenticated.
// The session store satisfies this.
type TokenSource interface {
	Token() string
}

// Client wraps the bookstore backend REST API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func()
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenSource wires the store the bearer token is read from.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithUnauthorizedHook registers the callback invoked when the backend
// rejects the credential on a non-login call.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// NewClient builds the backend client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return client, nil
}

type callSettings struct {
	authAttempt bool
}

// CallOption tweaks a single request.
type CallOption func(*callSettings)

// AsAuthAttempt marks a request as a login/register call: a 401 on it means
// bad credentials, not a stale session, so the unauthorized hook is skipped.
func AsAuthAttempt() CallOption {
	return func(s *callSettings) {
		s.authAttempt = true
	}
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

// Delete issues a DELETE; out may be nil when the response body is ignored.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "backend client not configured")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build backend request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out, opts...)
}

// PostMultipart uploads a file as multipart form data, with optional extra
// form fields, and decodes the response into out.
func (c *Client) PostMultipart(ctx context.Context, path, fieldName, fileName string, file io.Reader, fields map[string]string, out any, opts ...CallOption) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "backend client not configured")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build multipart body")
	}
	if _, err := io.Copy(part, file); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "copy upload content")
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write form field")
		}
	}
	if err := writer.Close(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), &buf)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out, opts...)
}

func (c *Client) send(req *http.Request, out any, opts ...CallOption) error {
	settings := callSettings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "backend request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized && !settings.authAttempt && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDecode, err, "decode backend response")
	}
	return nil
}

// statusError maps a non-2xx response to a coded error carrying the
// backend's own human-readable message when the body provides one.
func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

	message := extractMessage(raw)
	if message == "" {
		message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	code := pkgerrors.FromStatus(resp.StatusCode)
	return pkgerrors.New(code, message).WithStatus(resp.StatusCode)
}

// extractMessage pulls the message out of the backend's JSON error body,
// which uses either {"error": ...} or {"message": ...}.
func extractMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

func (c *Client) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
