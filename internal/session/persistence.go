package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minhtamngo/bookstore-storefront/pkg/kvstore"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

// Persistence mirrors the session into durable storage as two named entries,
// the raw token and the identity JSON, matching the original client's layout.
// Writes are best-effort: failures are logged, never surfaced.
type Persistence struct {
	kv   kvstore.Store
	logg *logger.Logger
	now  func() time.Time
}

func NewPersistence(kv kvstore.Store, logg *logger.Logger) *Persistence {
	return &Persistence{kv: kv, logg: logg, now: time.Now}
}

// Bind rehydrates the store, then subscribes for writes. Rehydration fails
// open: a missing entry, unparsable identity, or expired token resets the
// session to unauthenticated and drops the stale entries.
func (p *Persistence) Bind(store *Store) {
	token, identity := p.load()
	if token != "" && identity != nil {
		store.replace(identity, token)
	} else {
		p.clear()
	}

	store.Subscribe(p.save)
}

func (p *Persistence) load() (string, *Identity) {
	token, tokenOK, err := p.kv.Get(kvstore.KeyToken)
	if err != nil {
		p.warn("failed to read session token", err)
		return "", nil
	}
	rawIdentity, identityOK, err := p.kv.Get(kvstore.KeyUser)
	if err != nil {
		p.warn("failed to read session identity", err)
		return "", nil
	}
	if !tokenOK || !identityOK || token == "" {
		return "", nil
	}

	var identity Identity
	if err := json.Unmarshal([]byte(rawIdentity), &identity); err != nil {
		p.warn("discarding malformed session identity", err)
		return "", nil
	}
	if p.tokenExpired(token) {
		return "", nil
	}
	return token, &identity
}

func (p *Persistence) save(snapshot Snapshot) {
	if snapshot.Token == "" || snapshot.Identity == nil {
		p.clear()
		return
	}

	if err := p.kv.Set(kvstore.KeyToken, snapshot.Token); err != nil {
		p.warn("failed to persist session token", err)
	}
	data, err := json.Marshal(snapshot.Identity)
	if err != nil {
		p.warn("failed to serialize session identity", err)
		return
	}
	if err := p.kv.Set(kvstore.KeyUser, string(data)); err != nil {
		p.warn("failed to persist session identity", err)
	}
}

func (p *Persistence) clear() {
	if err := p.kv.Delete(kvstore.KeyToken); err != nil {
		p.warn("failed to drop session token", err)
	}
	if err := p.kv.Delete(kvstore.KeyUser); err != nil {
		p.warn("failed to drop session identity", err)
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the backend is the authority on validity, this just avoids
// rehydrating a session every backend call would immediately reject.
func (p *Persistence) tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// not a JWT we can inspect; let the backend decide
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(p.now())
}

func (p *Persistence) warn(msg string, err error) {
	if p.logg == nil {
		return
	}
	p.logg.Error(context.Background(), msg, err)
}
