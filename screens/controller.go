package screens

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

// editable is implemented by every form a controller can hold.
type editable interface {
	Editing() bool
}

// messages are the fixed notices of one screen.
type messages struct {
	loadFailed   string
	invalid      string
	created      string
	updated      string
	saveFailed   string
	deleted      string
	deleteFailed string
	deletePrompt string
}

// controller implements the state machine shared by every screen: T is the
// listed entity, F the form type.
type controller[T any, F editable] struct {
	name  string
	sess  *session.Session
	log   zerolog.Logger
	now   func() time.Time
	msgs  messages
	fetch func(context.Context) ([]T, error)

	busy atomic.Bool

	mu      sync.Mutex
	state   State
	items   []T
	form    F
	hasForm bool
	notice  *Notice
}

func newController[T any, F editable](name string, sess *session.Session, msgs messages, fetch func(context.Context) ([]T, error), o options) *controller[T, F] {
	return &controller[T, F]{
		name:  name,
		sess:  sess,
		log:   o.log.With().Str("screen", name).Logger(),
		now:   o.now,
		msgs:  msgs,
		fetch: fetch,
		items: []T{},
	}
}

// State returns the current lifecycle state.
func (c *controller[T, F]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a copy of the last successfully loaded list.
func (c *controller[T, F]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Busy reports whether a request is in flight.
func (c *controller[T, F]) Busy() bool { return c.busy.Load() }

// Notice returns the message currently shown, if any.
func (c *controller[T, F]) Notice() (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notice == nil {
		return Notice{}, false
	}
	return *c.notice, true
}

// DismissNotice clears the current message.
func (c *controller[T, F]) DismissNotice() {
	c.mu.Lock()
	c.notice = nil
	c.mu.Unlock()
}

// Form returns the open form. ok is false when no form is open.
func (c *controller[T, F]) Form() (f F, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form, c.hasForm
}

// Cancel discards the open form without touching the list.
func (c *controller[T, F]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero F
	c.form, c.hasForm = zero, false
	if c.state == Editing {
		c.state = Ready
	}
}

// Load fetches the list from the server.
func (c *controller[T, F]) Load(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()
	return c.reload(ctx)
}

// acquire checks the session and claims the single in-flight slot.
func (c *controller[T, F]) acquire() error {
	if err := session.Require(c.sess); err != nil {
		return err
	}
	if !c.busy.CompareAndSwap(false, true) {
		busyRejectionsTotal.WithLabelValues(c.name).Inc()
		return ErrBusy
	}
	return nil
}

func (c *controller[T, F]) release() { c.busy.Store(false) }

// reload must be called with the in-flight slot held. A failure keeps the
// previous list and moves to Failed, unless a form is open.
func (c *controller[T, F]) reload(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Editing {
		c.state = Loading
	}
	c.mu.Unlock()

	items, err := c.fetch(ctx)
	loadsTotal.WithLabelValues(c.name, outcome(err)).Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Warn().Err(err).Msg("load failed")
		c.failLocked(c.msgs.loadFailed, err)
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	if c.state != Editing {
		c.state = Ready
	}
	c.log.Debug().Int("count", len(items)).Msg("list loaded")
	return nil
}

// failLocked records a load failure. c.mu must be held.
func (c *controller[T, F]) failLocked(msg string, err error) {
	if c.state != Editing {
		c.state = Failed
	}
	c.notice = &Notice{Kind: NoticeError, Message: msg, Err: err}
}

func (c *controller[T, F]) fail(msg string, err error) {
	c.mu.Lock()
	c.failLocked(msg, err)
	c.mu.Unlock()
}

func (c *controller[T, F]) notify(kind NoticeKind, msg string, err error) {
	c.mu.Lock()
	c.notice = &Notice{Kind: kind, Message: msg, Err: err}
	c.mu.Unlock()
}

// openForm moves to Editing with f. Must hold the in-flight slot or be
// called when no request is needed.
func (c *controller[T, F]) openForm(f F) {
	c.mu.Lock()
	c.form, c.hasForm = f, true
	c.state = Editing
	c.mu.Unlock()
}

// submit validates and sends the open form via send, then reloads.
// Validation and server failures keep the form open.
func (c *controller[T, F]) submit(ctx context.Context, send func(context.Context, F) error) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	c.mu.Lock()
	f, ok := c.form, c.hasForm && c.state == Editing
	c.mu.Unlock()
	if !ok {
		return ErrNoForm
	}

	op := "create"
	if f.Editing() {
		op = "update"
	}

	if err := send(ctx, f); err != nil {
		if apierrors.IsValidation(err) {
			c.notify(NoticeWarning, c.msgs.invalid, err)
			return err
		}
		mutationsTotal.WithLabelValues(c.name, op, "error").Inc()
		c.log.Warn().Err(err).Str("op", op).Msg("save failed")
		c.notify(NoticeError, c.msgs.saveFailed, err)
		return err
	}
	mutationsTotal.WithLabelValues(c.name, op, "ok").Inc()
	c.log.Info().Str("op", op).Msg("saved")

	msg := c.msgs.created
	if op == "update" {
		msg = c.msgs.updated
	}
	c.mu.Lock()
	var zero F
	c.form, c.hasForm = zero, false
	c.state = Ready
	c.notice = &Notice{Kind: NoticeSuccess, Message: msg}
	c.mu.Unlock()

	// The save succeeded; a failed reload is reported through State and
	// Notice only.
	_ = c.reload(ctx)
	return nil
}

// confirmAndRun asks confirm with prompt and, when approved, runs del and
// always reloads afterwards. It reports whether the action was approved and
// the error of del.
func (c *controller[T, F]) confirmAndRun(ctx context.Context, op, prompt string, confirm Confirm, del func(context.Context) error, okMsg, failMsg string) (bool, error) {
	if err := session.Require(c.sess); err != nil {
		return false, err
	}
	if c.Busy() {
		busyRejectionsTotal.WithLabelValues(c.name).Inc()
		return false, ErrBusy
	}
	if confirm == nil || !confirm(prompt) {
		c.log.Debug().Str("op", op).Msg("declined")
		return false, nil
	}
	if err := c.acquire(); err != nil {
		return true, err
	}
	defer c.release()

	err := del(ctx)
	mutationsTotal.WithLabelValues(c.name, op, outcome(err)).Inc()
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("delete failed")
		c.notify(NoticeError, failMsg, err)
	} else {
		c.log.Info().Str("op", op).Msg("deleted")
		c.notify(NoticeSuccess, okMsg, nil)
	}

	// Reload regardless of the outcome so the list reflects the server.
	_ = c.reload(ctx)
	return true, err
}
