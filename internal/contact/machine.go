package contact

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultDelay is how long a simulated submission stays in flight.
const DefaultDelay = 1500 * time.Millisecond

// Confirmation is the acknowledgement of a successful submission.
const Confirmation = "Thank you for your message! I will get back to you soon."

var (
	// ErrInFlight rejects edits and resubmits while a submission is pending.
	ErrInFlight = errors.New("submission in flight")
	// ErrNotIdle rejects a submit from a settled state.
	ErrNotIdle = errors.New("form is not idle")
	// ErrCancelled is the failure recorded when a pending submission is cancelled.
	ErrCancelled = errors.New("submission cancelled")
)

// Phase of the submission lifecycle.
type Phase int

const (
	Idle Phase = iota
	InFlight
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case InFlight:
		return "in_flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Status is the phase plus the message carried by Succeeded and Failed.
type Status struct {
	Phase   Phase
	Message string
}

// Sender delivers a submitted form. The returned string is shown to the
// visitor on success.
type Sender interface {
	Send(ctx context.Context, f Form) (string, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, f Form) (string, error)

// Send calls fn.
func (fn SenderFunc) Send(ctx context.Context, f Form) (string, error) {
	return fn(ctx, f)
}

// Simulated acknowledges every form without sending it anywhere.
type Simulated struct{}

// Send returns Confirmation.
func (Simulated) Send(ctx context.Context, _ Form) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Confirmation, nil
}

// Timer is a scheduled callback that can be stopped before it runs.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Machine.
type Option func(*Machine)

// WithDelay sets the in-flight delay.
func WithDelay(d time.Duration) Option {
	return func(m *Machine) {
		if d >= 0 {
			m.delay = d
		}
	}
}

// WithScheduler replaces the wall clock, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) { m.scheduler = s }
}

// WithSender replaces the simulated sender.
func WithSender(s Sender) Option {
	return func(m *Machine) { m.sender = s }
}

// OnSettle registers a callback run after a submission leaves InFlight.
// It is called without the machine lock held.
func OnSettle(fn func(Status)) Option {
	return func(m *Machine) { m.onSettle = fn }
}

// Machine is the form state of one view. It is safe for concurrent use; the
// deferred acknowledgement runs on the scheduler's goroutine.
type Machine struct {
	mu        sync.Mutex
	form      Form
	status    Status
	delay     time.Duration
	scheduler Scheduler
	sender    Sender
	onSettle  func(Status)

	// pending submission
	gen    uint64
	timer  Timer
	cancel context.CancelFunc
}

// New returns an idle machine with empty fields.
func New(opts ...Option) *Machine {
	m := &Machine{
		delay:     DefaultDelay,
		scheduler: wallClock{},
		sender:    Simulated{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Form returns a copy of the current field values.
func (m *Machine) Form() Form {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

// Status returns the current lifecycle status.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Snapshot returns the fields and the status as of the same instant.
// Renderers use it so a settled notice never shows alongside stale fields.
func (m *Machine) Snapshot() (Form, Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form, m.status
}

// Edit sets one field. Editing a settled form starts a new draft.
func (m *Machine) Edit(field Field, value string) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status.Phase == InFlight {
		return ErrInFlight
	}
	m.form.set(field, value)
	m.status = Status{Phase: Idle}
	return nil
}

// Submit moves an idle form to InFlight and schedules the acknowledgement.
// The pending task is detached from ctx's cancellation so that it outlives
// the request that started it; Cancel stops it.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.status.Phase {
	case InFlight:
		return ErrInFlight
	case Succeeded, Failed:
		return ErrNotIdle
	}

	taskCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.gen++
	gen := m.gen
	form := m.form

	m.status = Status{Phase: InFlight}
	m.cancel = cancel
	m.timer = m.scheduler.AfterFunc(m.delay, func() {
		m.resolve(taskCtx, gen, form)
	})
	return nil
}

func (m *Machine) resolve(ctx context.Context, gen uint64, form Form) {
	msg, err := m.sender.Send(ctx, form)

	m.mu.Lock()
	if gen != m.gen || m.status.Phase != InFlight {
		m.mu.Unlock()
		return
	}
	if err != nil {
		m.status = Status{Phase: Failed, Message: failureMessage(err)}
	} else {
		m.status = Status{Phase: Succeeded, Message: msg}
		m.form = Form{}
	}
	m.clearPending()
	status := m.status
	m.mu.Unlock()

	if m.onSettle != nil {
		m.onSettle(status)
	}
}

// Cancel aborts a pending submission. It reports whether one was pending.
func (m *Machine) Cancel() bool {
	m.mu.Lock()
	if m.status.Phase != InFlight {
		m.mu.Unlock()
		return false
	}
	m.timer.Stop()
	m.status = Status{Phase: Failed, Message: failureMessage(ErrCancelled)}
	m.clearPending()
	status := m.status
	m.mu.Unlock()

	if m.onSettle != nil {
		m.onSettle(status)
	}
	return true
}

func (m *Machine) clearPending() {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.timer = nil
}

func failureMessage(err error) string {
	if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
		return "Your message was not sent. Please try again."
	}
	return "Sorry, there was an error sending your message. Please try again later."
}
