// Package theme owns the active storefront theme: loading it from durable
// storage over compiled-in defaults, merging partial updates, persisting and
// republishing it as CSS custom properties.
package theme

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"themeplane/logging"
	"themeplane/model"
	"themeplane/storage"
)

// DefaultAppName prefixes storage keys when no app name is configured.
const DefaultAppName = "themeplane"

// Listener receives every newly applied theme together with its variables.
type Listener func(t model.Theme, vars []Variable)

// Store holds the active theme. All mutations go through Update and Reset.
type Store struct {
	kv     storage.KV
	key    string
	logger zerolog.Logger

	// pubMu orders publishes: it is held from apply through delivery so
	// listeners see themes in the order they were applied. Listeners must
	// not call back into Update, Reset or Subscribe.
	pubMu     sync.Mutex
	mu        sync.Mutex
	current   model.Theme
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithAppName sets the storage key to "<app>_theme".
func WithAppName(app string) Option {
	return func(s *Store) {
		if app != "" {
			s.key = StorageKey(app)
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// StorageKey returns the record key a theme is persisted under.
func StorageKey(app string) string {
	return app + "_theme"
}

// NewStore creates a Store and loads the persisted theme.
func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    StorageKey(DefaultAppName),
		logger: logging.Component("theme"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = s.Load()
	return s
}

// Key returns the storage key in use.
func (s *Store) Key() string {
	return s.key
}

// Load reads the persisted theme merged over the defaults. It never fails:
// missing or unreadable records yield the defaults.
func (s *Store) Load() model.Theme {
	data, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().Err(err).Str("key", s.key).Msg("read stored theme, using defaults")
		}
		return DefaultTheme()
	}
	return mergePersisted(data, DefaultTheme(), s.logger)
}

// Current returns a copy of the active theme.
func (s *Store) Current() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Update shallow-merges partial into section. partial may be any value that
// marshals to a JSON object, or raw JSON. The resulting theme is persisted and
// published; a persistence failure is logged and the in-memory theme still
// changes.
func (s *Store) Update(section Section, partial any) (model.Theme, error) {
	return s.UpdateSections(map[Section]any{section: partial})
}

// UpdateSections merges several section partials as one change: either all
// apply or none do, followed by a single persist and a single publish.
func (s *Store) UpdateSections(partials map[Section]any) (model.Theme, error) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	for section := range partials {
		if _, err := ParseSection(string(section)); err != nil {
			return s.Current(), err
		}
	}

	s.mu.Lock()
	next := s.current
	var err error
	for _, section := range Sections {
		partial, ok := partials[section]
		if !ok {
			continue
		}
		if next, err = applyPartial(next, section, partial); err != nil {
			break
		}
	}
	if err != nil {
		out := s.current.Clone()
		s.mu.Unlock()
		return out, err
	}
	s.current = next
	s.persistLocked()
	out := s.current.Clone()
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug().Int("sections", len(partials)).Msg("theme updated")
	publish(listeners, out)
	return out, nil
}

// Reset replaces the theme with the defaults, with the same persistence and
// publish side effects as Update.
func (s *Store) Reset() model.Theme {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.current = DefaultTheme()
	s.persistLocked()
	out := s.current.Clone()
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info().Msg("theme reset to defaults")
	publish(listeners, out)
	return out
}

// Subscribe registers fn for every applied theme and immediately delivers
// the current one. The returned func removes the subscription.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	cur := s.current.Clone()
	s.mu.Unlock()

	fn(cur, Variables(cur))

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) persistLocked() {
	if err := storage.PutJSON(s.kv, s.key, s.current); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("persist theme")
	}
}

func (s *Store) snapshotLocked() []Listener {
	out := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		out[i] = sub.fn
	}
	return out
}

func publish(listeners []Listener, t model.Theme) {
	if len(listeners) == 0 {
		return
	}
	vars := Variables(t)
	for _, fn := range listeners {
		fn(t.Clone(), vars)
	}
}
