// Package session keeps the state of each open page view.
//
// Every page load gets its own View. Events for a view are applied one at a
// time and run to completion before the next one starts. The only work that
// outlives an event is the contact form's deferred acknowledgement.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/theme"
)

// ErrNotFound is returned for unknown or expired view ids.
var ErrNotFound = errors.New("view not found")

// DefaultTTL is how long an untouched view is kept.
const DefaultTTL = 30 * time.Minute

// DefaultMaxViews bounds the number of views held at once.
const DefaultMaxViews = 10000

// View is the state of one page load.
type View struct {
	ID       string
	Theme    *theme.Controller
	Nav      nav.State
	Reveal   *reveal.Board
	Filter   catalog.Filter
	SkillTab catalog.SkillTab
	Contact  *contact.Machine
}

// Options configures new views.
type Options struct {
	Theme           theme.Preference
	RevealThreshold float64
	ContactDelay    time.Duration
	TTL             time.Duration
	// MaxViews is the store capacity; creating a view beyond it evicts the
	// least recently used one.
	MaxViews int
	// ContactOptions are appended after the defaults derived above.
	ContactOptions []contact.Option
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.RevealThreshold <= 0 {
		o.RevealThreshold = reveal.DefaultThreshold
	}
	if o.ContactDelay <= 0 {
		o.ContactDelay = contact.DefaultDelay
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.MaxViews <= 0 {
		o.MaxViews = DefaultMaxViews
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// NewView builds a fresh view. observer tells whether the client can report
// section visibility; without it every section starts revealed.
func NewView(id string, opts Options, observer bool) *View {
	opts = opts.withDefaults()
	contactOpts := append([]contact.Option{
		contact.WithDelay(opts.ContactDelay),
		contact.OnSettle(func(s contact.Status) {
			metrics.IncrementContactSubmission(s.Phase.String())
		}),
	}, opts.ContactOptions...)

	return &View{
		ID:       id,
		Theme:    theme.NewController(opts.Theme),
		Reveal:   reveal.NewBoard(opts.RevealThreshold, observer),
		Filter:   catalog.All,
		SkillTab: catalog.Technical,
		Contact:  contact.New(contactOpts...),
	}
}

type entry struct {
	mu       sync.Mutex
	view     *View
	lastSeen time.Time
}

// Store holds the open views of the process.
type Store struct {
	mu     sync.Mutex
	views  map[string]*entry
	opts   Options
	logger *zap.Logger
}

// NewStore returns an empty store.
func NewStore(opts Options, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		views:  make(map[string]*entry),
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Create registers a new view and returns it.
func (s *Store) Create(observer bool) (*View, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generating view id")
	}
	v := NewView(id.String(), s.opts, observer)

	s.mu.Lock()
	var evicted *entry
	if len(s.views) >= s.opts.MaxViews {
		evicted = s.evictOldestLocked()
	}
	s.views[v.ID] = &entry{view: v, lastSeen: s.opts.Now()}
	n := len(s.views)
	s.mu.Unlock()

	if evicted != nil {
		s.retire(evicted)
		s.logger.Debug("evicted least recently used view", zap.String("view_id", evicted.view.ID))
	}
	metrics.SetActiveViews(n)
	return v, nil
}

// evictOldestLocked removes the least recently seen view. s.mu must be held.
func (s *Store) evictOldestLocked() *entry {
	var oldestID string
	var oldest *entry
	for id, e := range s.views {
		if oldest == nil || e.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, e
		}
	}
	if oldest != nil {
		delete(s.views, oldestID)
	}
	return oldest
}

// retire cancels whatever submission a removed view still had pending.
func (s *Store) retire(e *entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.view.Contact.Cancel() {
		s.logger.Debug("cancelled pending submission of removed view", zap.String("view_id", e.view.ID))
	}
}

// Update applies fn to the view with id. Calls for the same view are
// serialised; fn's error is returned as is.
func (s *Store) Update(id string, fn func(*View) error) error {
	s.mu.Lock()
	e, ok := s.views[id]
	if ok {
		e.lastSeen = s.opts.Now()
	}
	s.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrNotFound, "view %q", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.view)
}

// Len is the number of open views.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Sweep drops views idle for longer than the TTL and cancels any submission
// they still had pending. It returns the number of views removed.
func (s *Store) Sweep() int {
	cutoff := s.opts.Now().Add(-s.opts.TTL)

	s.mu.Lock()
	var expired []*entry
	for id, e := range s.views {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e)
			delete(s.views, id)
		}
	}
	n := len(s.views)
	s.mu.Unlock()

	for _, e := range expired {
		s.retire(e)
	}
	if len(expired) > 0 {
		s.logger.Debug("swept idle views", zap.Int("removed", len(expired)), zap.Int("open", n))
	}
	metrics.SetActiveViews(n)
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}
