package backend

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestClientAttachesBearerToken(t *testing.T) {
	var captured http.Header

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req.Header.Clone()
		return jsonResponse(http.StatusOK, `{"ok":true}`), nil
	})

	client := newTestClient(t, rt, WithTokenSource(staticTokens("tok-123")))

	var out struct {
		OK bool `json:"ok"`
	}
	if err := client.Get(context.Background(), "/books", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := captured.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("unexpected auth header %q", got)
	}
	if !out.OK {
		t.Fatalf("response not decoded")
	}
}

func TestClientOmitsHeaderWhenUnauthenticated(t *testing.T) {
	var captured http.Header

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req.Header.Clone()
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	client := newTestClient(t, rt, WithTokenSource(staticTokens("")))

	var out []any
	if err := client.Get(context.Background(), "/books", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := captured.Get("Authorization"); got != "" {
		t.Fatalf("expected no auth header, got %q", got)
	}
}

func TestClientInvokesUnauthorizedHook(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"error":"token expired"}`), nil
	})

	hookCalls := 0
	client := newTestClient(t, rt, WithUnauthorizedHook(func() { hookCalls++ }))

	err := client.Get(context.Background(), "/orders", nil)
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
	if hookCalls != 1 {
		t.Fatalf("expected unauthorized hook once, got %d", hookCalls)
	}
}

func TestClientSkipsHookForAuthAttempts(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"error":"bad credentials"}`), nil
	})

	hookCalls := 0
	client := newTestClient(t, rt, WithUnauthorizedHook(func() { hookCalls++ }))

	err := client.Post(context.Background(), "/auth/login", map[string]string{"email": "x"}, nil, AsAuthAttempt())
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if hookCalls != 0 {
		t.Fatalf("auth attempt must not trigger the unauthorized hook")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Message() != "bad credentials" {
		t.Fatalf("expected backend message to surface, got %v", err)
	}
}

func TestClientMapsTransportFailure(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	client := newTestClient(t, rt)

	err := client.Get(context.Background(), "/books", nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestClientMapsBackendStatuses(t *testing.T) {
	cases := []struct {
		status int
		body   string
		code   pkgerrors.Code
		msg    string
	}{
		{http.StatusNotFound, `{"error":"book not found"}`, pkgerrors.CodeNotFound, "book not found"},
		{http.StatusBadRequest, `{"message":"title is required"}`, pkgerrors.CodeValidation, "title is required"},
		{http.StatusInternalServerError, `boom`, pkgerrors.CodeBackend, "boom"},
	}

	for _, tc := range cases {
		rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(tc.status, tc.body), nil
		})
		client := newTestClient(t, rt)

		err := client.Get(context.Background(), "/books/9", nil)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != tc.code {
			t.Fatalf("status %d: unexpected error %v", tc.status, err)
		}
		if typed.Message() != tc.msg {
			t.Fatalf("status %d: expected message %q got %q", tc.status, tc.msg, typed.Message())
		}
		if typed.Status() != tc.status {
			t.Fatalf("status %d not recorded, got %d", tc.status, typed.Status())
		}
	}
}

func TestClientMapsDecodeFailure(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{broken`), nil
	})

	client := newTestClient(t, rt)

	var out map[string]any
	err := client.Get(context.Background(), "/books", &out)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestClientBuildsURLs(t *testing.T) {
	var captured string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req.URL.String()
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	client, err := NewClient("http://backend.test/api/", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.Get(context.Background(), "books/search?keyword=go", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if captured != "http://backend.test/api/books/search?keyword=go" {
		t.Fatalf("unexpected URL %q", captured)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func newTestClient(t *testing.T, rt roundTripFunc, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: rt})}, opts...)
	client, err := NewClient("http://backend.test/api", opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
