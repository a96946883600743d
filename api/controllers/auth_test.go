package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minhtamngo/bookstore-storefront/internal/authapi"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/session"
)

func TestAuthSignupRejectsMismatchedPasswordsLocally(t *testing.T) {
	api := newBackendClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no backend call expected, got %s", r.URL.Path)
	}))

	handler := AuthSignup(authapi.NewService(api), session.NewStore(), notify.NewNotifier(0), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup",
		strings.NewReader(`{"fullName":"Ann","email":"a@b.c","password":"secret1","confirmPassword":"secret2"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAuthLoginStartsSession(t *testing.T) {
	api := newBackendClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"token":"tok-1","userId":4,"email":"a@b.c","fullName":"Ann","role":"customer"}`)
	}))

	sessions := session.NewStore()
	handler := AuthLogin(authapi.NewService(api), sessions, notify.NewNotifier(0), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !sessions.IsAuthenticated() {
		t.Fatal("expected session to be authenticated after login")
	}
	if sessions.Token() != "tok-1" {
		t.Fatalf("unexpected token %q", sessions.Token())
	}
}

func TestAuthLogoutEndsSession(t *testing.T) {
	sessions := session.NewStore()
	sessions.Login(session.Identity{UserID: 4, Email: "a@b.c"}, "tok-1")

	handler := AuthLogout(sessions, notify.NewNotifier(0))

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if sessions.IsAuthenticated() {
		t.Fatal("expected session to be cleared after logout")
	}
}
