package dca

import (
	"encoding/json"
	"errors"

	"github.com/etnz/dca/kv"
	"github.com/etnz/dca/logger"
	"go.uber.org/zap"
)

// Keys of the two persisted lists.
const (
	RecordsKey      = "investments"
	ObservationsKey = "priceHistory"
)

// Persister reads and writes JSON values in a kv.Store and never fails:
// errors are logged, and the caller carries on with its default value.
type Persister struct {
	store kv.Store
	log   *zap.SugaredLogger
}

// NewPersister returns a Persister over 'store' logging to the global logger.
func NewPersister(store kv.Store) *Persister {
	return &Persister{store: store, log: logger.Get()}
}

// WithLogger returns a copy of p logging to 'log'.
func (p *Persister) WithLogger(log *zap.SugaredLogger) *Persister {
	c := *p
	c.log = log
	return &c
}

// Load decodes the value stored at 'key' into 'v' and reports whether it did.
//
// 'v' must hold the default value: it is left untouched when the key is
// missing or the stored content cannot be decoded.
func Load[T any](p *Persister, key string, v *T) bool {
	data, err := p.store.Get(key)
	if errors.Is(err, kv.ErrNotFound) {
		p.log.Debugw("nothing stored, using default", "key", key)
		return false
	}
	if err != nil {
		p.log.Errorw("cannot read storage, using default", "key", key, "error", err)
		return false
	}
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		p.log.Errorw("cannot decode storage, using default", "key", key, "error", err)
		return false
	}
	*v = decoded
	return true
}

// Save encodes 'v' and stores it at 'key'. Failures are logged only.
func (p *Persister) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		p.log.Errorw("cannot encode storage", "key", key, "error", err)
		return
	}
	if err := p.store.Set(key, data); err != nil {
		p.log.Errorw("cannot write storage", "key", key, "error", err)
		return
	}
	p.log.Debugw("saved", "key", key, "bytes", len(data))
}

// Close closes the underlying store.
func (p *Persister) Close() error { return p.store.Close() }
