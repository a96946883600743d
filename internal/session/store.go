// Package session holds the authenticated identity and bearer token for the
// storefront. The identity and role gate which views render; they are never a
// security boundary, the backend enforces authorization on its own side.
package session

import (
	"sync"

	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

// Identity is the subset of the account the login response carries.
type Identity struct {
	UserID   int    `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Snapshot is what subscribers receive after every session change.
type Snapshot struct {
	Identity *Identity
	Token    string
}

// Store is the process-wide session. Constructed once at startup and injected
// into the client wrapper and the handlers that need it.
type Store struct {
	mu       sync.Mutex
	identity *Identity
	token    string
	subs     []func(Snapshot)
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a change listener invoked after login and logout.
func (s *Store) Subscribe(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Login replaces the stored identity and token. The caller (the login view)
// has already confirmed the credential against the backend; no validation
// happens here.
func (s *Store) Login(identity Identity, token string) {
	s.mu.Lock()
	id := identity
	s.identity = &id
	s.token = token
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Logout clears the identity and token.
func (s *Store) Logout() {
	s.mu.Lock()
	s.identity = nil
	s.token = ""
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// IsAuthenticated reports whether both a token and an identity are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.identity != nil
}

// IsAdmin reports whether the stored identity carries the admin role. This
// only decides what the UI offers; the backend re-checks every call.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.identity != nil && s.identity.Role == models.RoleAdmin
}

// Identity returns the stored identity, if any.
func (s *Store) Identity() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Token returns the bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// replace swaps the session content without notifying subscribers. The
// persistence adapter uses it during rehydration.
func (s *Store) replace(identity *Identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.token = token
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Token: s.token}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

func notify(subs []func(Snapshot), snapshot Snapshot) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
