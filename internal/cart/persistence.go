package cart

import (
	"context"
	"encoding/json"

	"github.com/minhtamngo/bookstore-storefront/pkg/kvstore"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

// Persistence mirrors the cart into durable storage. It subscribes to the
// store and serializes the full snapshot on every change notification;
// storage failures are logged and swallowed, persistence is best-effort.
type Persistence struct {
	kv   kvstore.Store
	logg *logger.Logger
}

func NewPersistence(kv kvstore.Store, logg *logger.Logger) *Persistence {
	return &Persistence{kv: kv, logg: logg}
}

// Bind rehydrates the store from durable storage, then subscribes for writes.
// A missing or malformed snapshot resets the cart to empty rather than
// surfacing an error.
func (p *Persistence) Bind(store *Store) {
	raw, ok, err := p.kv.Get(kvstore.KeyCart)
	if err != nil {
		p.warn("failed to read cart snapshot", err)
	}
	if ok && err == nil {
		var lines []Line
		if jsonErr := json.Unmarshal([]byte(raw), &lines); jsonErr != nil {
			p.warn("discarding malformed cart snapshot", jsonErr)
			if delErr := p.kv.Delete(kvstore.KeyCart); delErr != nil {
				p.warn("failed to drop malformed cart snapshot", delErr)
			}
		} else {
			store.replace(lines)
		}
	}

	store.Subscribe(p.save)
}

func (p *Persistence) save(lines []Line) {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		p.warn("failed to serialize cart", err)
		return
	}
	if err := p.kv.Set(kvstore.KeyCart, string(data)); err != nil {
		p.warn("failed to persist cart", err)
	}
}

func (p *Persistence) warn(msg string, err error) {
	if p.logg == nil {
		return
	}
	p.logg.Error(context.Background(), msg, err)
}
