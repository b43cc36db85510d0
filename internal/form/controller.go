package form

import (
	"context"
	"sync"

	"github.com/otuedon/shop-tracker/internal/models"
)

// terminalStep is the last step of the flow; submit is only legal here.
const terminalStep = 2

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseCompleted
	PhaseAbandoned
)

// Controller is the single entry point the UI layer talks to: one instance
// per open form session, composing the field store, step gates, progress and
// the save pipeline. Safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	store    *FieldStore
	pipeline *Pipeline
	ownerID  string
	editID   string
	step     int
	busy     bool
	phase    Phase
}

// NewController opens an add-flow session for ownerID.
func NewController(pipeline *Pipeline, ownerID string) *Controller {
	return &Controller{store: NewFieldStore(), pipeline: pipeline, ownerID: ownerID}
}

// NewEditController opens an edit-flow session seeded from product.
func NewEditController(pipeline *Pipeline, ownerID string, product models.Product) *Controller {
	c := NewController(pipeline, ownerID)
	c.store.Seed(product)
	c.editID = product.ID
	return c
}

// Step returns the current step index (0..2).
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Progress returns the current completion fraction for the progress bar.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Progress(c.step, c.store.Snapshot())
}

// Snapshot returns the draft as it stands.
func (c *Controller) Snapshot() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Snapshot()
}

// Phase returns the session lifecycle state.
func (c *Controller) CurrentPhase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// SetField writes one field of the draft.
func (c *Controller) SetField(f Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive {
		return ErrSessionClosed
	}
	c.store.Set(f, value)
	return nil
}

// SetImage attaches a staged image reference to the draft.
func (c *Controller) SetImage(ref ImageRef) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive {
		return ErrSessionClosed
	}
	c.store.SetImage(&ref)
	return nil
}

// Advance runs the current step's gate. On pass the step increments; on fail
// the step is unchanged and the missing fields are returned for display.
func (c *Controller) Advance() (*MissingFields, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive {
		return nil, ErrSessionClosed
	}
	if mf := ValidateStep(c.step, c.store.Snapshot()); mf != nil {
		return mf, nil
	}
	if c.step < terminalStep {
		c.step++
	}
	return nil, nil
}

// Retreat steps back unconditionally; there is no gate on the way back.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive {
		return ErrSessionClosed
	}
	if c.step > 0 {
		c.step--
	}
	return nil
}

// Submit runs the save pipeline. Only legal from the terminal step, and only
// one at a time: a second call while the first is pending gets the busy
// signal and no second persist is issued. On success the store is reset, the
// step returns to 0 and the session completes.
func (c *Controller) Submit(ctx context.Context) (models.Product, error) {
	c.mu.Lock()
	if c.phase != PhaseActive {
		c.mu.Unlock()
		return models.Product{}, ErrSessionClosed
	}
	if c.busy {
		c.mu.Unlock()
		return models.Product{}, ErrSubmitPending
	}
	if c.step != terminalStep {
		c.mu.Unlock()
		return models.Product{}, ErrNotTerminalStep
	}
	c.busy = true
	c.mu.Unlock()

	saved, err := c.pipeline.Submit(ctx, c.store, c.ownerID, c.editID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		// the draft survives for retry
		return models.Product{}, err
	}
	c.store.Reset()
	c.step = 0
	c.phase = PhaseCompleted
	return saved, nil
}

// Busy reports whether a submit is pending.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Reset clears the draft and returns to step 0 without closing the session.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Reset()
	c.step = 0
	c.phase = PhaseActive
}

// Abandon discards the draft and closes the session. Any in-flight upload's
// result is simply ignored; its blob is orphaned but harmless.
func (c *Controller) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Reset()
	c.phase = PhaseAbandoned
}
