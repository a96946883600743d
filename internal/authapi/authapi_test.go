package authapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := backend.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	return NewService(api)
}

func TestLoginReturnsCredentials(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"success":true,"token":"tok-1","userId":4,"email":"a@b.c","fullName":"Ann","role":"customer"}`)
	}))

	creds, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if creds.Token != "tok-1" || creds.UserID != 4 {
		t.Fatalf("unexpected credentials %+v", creds)
	}
}

func TestLoginRejectionDoesNotFireLogout(t *testing.T) {
	loggedOut := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"bad credentials"}`)
	}))
	defer srv.Close()

	api, err := backend.NewClient(srv.URL, backend.WithUnauthorizedHook(func() { loggedOut = true }))
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	svc := NewService(api)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "nope"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if loggedOut {
		t.Fatal("login rejection must not trigger the session logout hook")
	}
}

func TestLoginFailureFlagInBody(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":false,"error":"account locked"}`)
	}))

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "pw"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if typed.Message() != "account locked" {
		t.Fatalf("expected backend reason, got %q", typed.Message())
	}
}

func TestRegisterReturnsCredentials(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"success":true,"token":"tok-2","userId":5,"email":"n@b.c","fullName":"New","role":"customer"}`)
	}))

	creds, err := svc.Register(context.Background(), RegisterInput{FullName: "New", Email: "n@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if creds.UserID != 5 {
		t.Fatalf("unexpected credentials %+v", creds)
	}
}
