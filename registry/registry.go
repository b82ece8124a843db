// Package registry keeps the keyed button and card style collections the
// storefront renders, persisted as one record per collection.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"themeplane/logging"
	"themeplane/storage"
)

// ErrNotFound is returned for keys the registry does not hold.
var ErrNotFound = errors.New("style not found")

// Validator is implemented by style records that can check themselves.
type Validator interface {
	Validate() error
}

// Registry is a keyed collection of style records of type T.
type Registry[T Validator] struct {
	kv     storage.KV
	key    string
	logger zerolog.Logger

	mu      sync.RWMutex
	entries map[string]T
}

// New loads the registry stored under key, falling back to defaults when
// nothing is stored or the record is unreadable. Stored entries are merged
// over defaults so new default keys appear after upgrades.
func New[T Validator](kv storage.KV, key string, defaults map[string]T) *Registry[T] {
	r := &Registry[T]{
		kv:      kv,
		key:     key,
		logger:  logging.Component("registry").With().Str("key", key).Logger(),
		entries: maps.Clone(defaults),
	}
	if r.entries == nil {
		r.entries = make(map[string]T)
	}

	var stored map[string]T
	err := storage.GetJSON(kv, key, &stored)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		r.logger.Warn().Err(err).Msg("load registry, using defaults")
	default:
		for k, v := range stored {
			if verr := v.Validate(); verr != nil {
				r.logger.Warn().Err(verr).Str("entry", k).Msg("skip invalid stored entry")
				continue
			}
			r.entries[k] = v
		}
	}
	return r
}

// Get returns the style stored under key.
func (r *Registry[T]) Get(key string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	return v, nil
}

// Keys returns all keys in sorted order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.entries))
}

// All returns a copy of every entry.
func (r *Registry[T]) All() map[string]T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.entries)
}

// Update overwrites the style stored under an existing key.
func (r *Registry[T]) Update(key string, v T) error {
	if err := v.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	r.entries[key] = v
	r.persistLocked()
	return nil
}

// ApplyToPrefix writes v to every key starting with prefix and returns the
// keys it changed.
func (r *Registry[T]) ApplyToPrefix(prefix string, v T) ([]string, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed []string
	for k := range r.entries {
		if strings.HasPrefix(k, prefix) {
			r.entries[k] = v
			changed = append(changed, k)
		}
	}
	slices.Sort(changed)
	if len(changed) > 0 {
		r.persistLocked()
	}
	return changed, nil
}

// persistLocked writes the collection. Failures are logged; the in-memory
// registry stays authoritative for the session.
func (r *Registry[T]) persistLocked() {
	if err := storage.PutJSON(r.kv, r.key, r.entries); err != nil {
		r.logger.Warn().Err(err).Msg("persist registry")
	}
}
