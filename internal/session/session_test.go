package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/theme"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// neverFires keeps submissions in flight until cancelled.
type neverFires struct{}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return true }

func (neverFires) AfterFunc(time.Duration, func()) contact.Timer { return stoppedTimer{} }

func newTestStore(c *clock) *Store {
	return NewStore(Options{
		Theme:          theme.Dark,
		TTL:            time.Minute,
		Now:            c.Now,
		ContactOptions: []contact.Option{contact.WithScheduler(neverFires{})},
	}, nil)
}

func TestCreateDefaults(t *testing.T) {
	s := newTestStore(&clock{now: time.Unix(0, 0)})
	v, err := s.Create(true)
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, theme.Dark, v.Theme.Current())
	assert.Equal(t, catalog.All, v.Filter)
	assert.Equal(t, catalog.Technical, v.SkillTab)
	assert.Equal(t, reveal.Hidden, v.Reveal.State("about"))
	assert.Equal(t, contact.Idle, v.Contact.Status().Phase)
	assert.Equal(t, 1, s.Len())

	other, err := s.Create(false)
	require.NoError(t, err)
	assert.NotEqual(t, v.ID, other.ID)
	assert.Equal(t, reveal.Revealed, other.Reveal.State("about"))
}

func TestUpdate(t *testing.T) {
	s := newTestStore(&clock{now: time.Unix(0, 0)})
	v, err := s.Create(true)
	require.NoError(t, err)

	err = s.Update(v.ID, func(v *View) error {
		v.Nav.ToggleMenu()
		v.Theme.Toggle()
		return nil
	})
	require.NoError(t, err)
	assert.True(t, v.Nav.MenuOpen)
	assert.Equal(t, theme.Light, v.Theme.Current())

	err = s.Update("missing", func(*View) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateIsSerialised(t *testing.T) {
	s := newTestStore(&clock{now: time.Unix(0, 0)})
	v, err := s.Create(true)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(v.ID, func(v *View) error {
				v.Nav.ToggleMenu()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.False(t, v.Nav.MenuOpen, "an even number of toggles leaves the menu closed")
}

func TestSweep(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	s := newTestStore(c)

	stale, err := s.Create(true)
	require.NoError(t, err)
	for _, f := range contact.Fields() {
		require.NoError(t, stale.Contact.Edit(f, "x"))
	}
	require.NoError(t, stale.Contact.Submit(context.Background()))

	c.advance(45 * time.Second)
	fresh, err := s.Create(true)
	require.NoError(t, err)

	c.advance(30 * time.Second)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	assert.ErrorIs(t, s.Update(stale.ID, func(*View) error { return nil }), ErrNotFound)
	assert.NoError(t, s.Update(fresh.ID, func(*View) error { return nil }))
	assert.Equal(t, contact.Failed, stale.Contact.Status().Phase, "pending submission is cancelled on eviction")
}

func TestCreateEvictsLeastRecentlyUsed(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	s := NewStore(Options{
		TTL:            time.Hour,
		MaxViews:       2,
		Now:            c.Now,
		ContactOptions: []contact.Option{contact.WithScheduler(neverFires{})},
	}, nil)

	first, err := s.Create(true)
	require.NoError(t, err)
	for _, f := range contact.Fields() {
		require.NoError(t, first.Contact.Edit(f, "x"))
	}
	require.NoError(t, first.Contact.Submit(context.Background()))
	c.advance(time.Second)
	second, err := s.Create(true)
	require.NoError(t, err)

	// Touching the first view makes the second the oldest.
	c.advance(time.Second)
	require.NoError(t, s.Update(first.ID, func(*View) error { return nil }))

	c.advance(time.Second)
	third, err := s.Create(true)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.ErrorIs(t, s.Update(second.ID, func(*View) error { return nil }), ErrNotFound)
	assert.NoError(t, s.Update(first.ID, func(*View) error { return nil }))
	assert.NoError(t, s.Update(third.ID, func(*View) error { return nil }))
	assert.Equal(t, contact.InFlight, first.Contact.Status().Phase)

	// A crawler opening page after page never grows the store past the cap.
	for i := 0; i < 50; i++ {
		_, err := s.Create(false)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, contact.Failed, first.Contact.Status().Phase, "evicted view's submission is cancelled")
}

func TestUpdateKeepsViewAlive(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	s := newTestStore(c)
	v, err := s.Create(true)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		c.advance(40 * time.Second)
		require.NoError(t, s.Update(v.ID, func(*View) error { return nil }))
		assert.Zero(t, s.Sweep())
	}
}

func TestRunStopsWithContext(t *testing.T) {
	s := newTestStore(&clock{now: time.Unix(0, 0)})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()

	time.Sleep(5 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}
