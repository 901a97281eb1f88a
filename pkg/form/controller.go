package form

import (
	"context"
	"errors"
	"sync"

	"media-buyer-intake/pkg/models"
)

var (
	ErrInvalidForm      = errors.New("form has missing required fields")
	ErrSubmitInProgress = errors.New("a submission is already in progress")
)

const (
	successMessage = "Form submitted successfully!"
	failureMessage = "Failed to submit form"
)

// Phase is the submission lifecycle: idle -> submitting -> success | error.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Status is the feedback shown after a submission attempt
type Status struct {
	Phase   Phase
	Message string
}

// View is an immutable snapshot handed to the renderer after every change
type View struct {
	State  State
	Errors FieldErrors
	Status Status
}

// Submitting reports whether the submit action should be disabled.
func (v View) Submitting() bool {
	return v.Status.Phase == PhaseSubmitting
}

// Renderer is called with each new snapshot
type Renderer func(View)

// Submitter delivers a payload to the submission endpoint
type Submitter interface {
	SubmitForm(ctx context.Context, data models.FormData) (models.SubmitResponse, error)
}

// Controller owns the form state and drives submission
type Controller struct {
	submitter Submitter
	render    Renderer

	mu     sync.Mutex
	state  State
	errors FieldErrors
	status Status
}

// NewController creates a controller with an empty form. render may be nil.
func NewController(submitter Submitter, render Renderer) *Controller {
	if render == nil {
		render = func(View) {}
	}
	return &Controller{
		submitter: submitter,
		render:    render,
	}
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	return View{State: c.state, Errors: c.errors, Status: c.status}
}

// commit runs fn under the lock and renders the resulting snapshot.
func (c *Controller) commit(fn func()) View {
	c.mu.Lock()
	fn()
	v := c.viewLocked()
	c.mu.Unlock()

	c.render(v)
	return v
}

// Update replaces the state with the result of transition.
func (c *Controller) Update(transition func(State) State) {
	c.commit(func() {
		c.state = transition(c.state)
	})
}

func (c *Controller) ToggleVerticalCategory(name string) {
	c.Update(func(s State) State { return s.ToggleVerticalCategory(name) })
}

func (c *Controller) ToggleSubcategory(category, sub string) {
	c.Update(func(s State) State { return s.ToggleSubcategory(category, sub) })
}

func (c *Controller) ToggleLeadVertical(name string) {
	c.Update(func(s State) State { return s.ToggleLeadVertical(name) })
}

func (c *Controller) ToggleNetwork(name string) {
	c.Update(func(s State) State { return s.ToggleNetwork(name) })
}

func (c *Controller) SetSpendRange(network, rng string) {
	c.Update(func(s State) State { return s.SetSpendRange(network, rng) })
}

// SetField sets a single-value field by its payload name.
func (c *Controller) SetField(name, value string) error {
	var err error
	c.commit(func() {
		var next State
		next, err = c.state.SetField(name, value)
		c.state = next
	})
	return err
}

// Validate recomputes and publishes the field errors.
func (c *Controller) Validate() FieldErrors {
	v := c.commit(func() {
		c.errors = Validate(c.state)
	})
	return v.Errors
}

// Submit validates the form and, when it passes, sends one payload and
// waits for the reply. A failed validation returns ErrInvalidForm without
// any request. The outcome of a sent request is reported through Status,
// not the returned error.
func (c *Controller) Submit(ctx context.Context) error {
	var (
		payload models.FormData
		err     error
	)
	c.commit(func() {
		if c.status.Phase == PhaseSubmitting {
			err = ErrSubmitInProgress
			return
		}
		c.errors = Validate(c.state)
		if c.errors.Any() {
			err = ErrInvalidForm
			return
		}
		payload = c.state.Payload()
		c.status = Status{Phase: PhaseSubmitting}
	})
	if err != nil {
		return err
	}

	resp, sendErr := c.submitter.SubmitForm(ctx, payload)
	c.commit(func() {
		c.status = outcome(resp, sendErr)
	})
	return nil
}

func outcome(resp models.SubmitResponse, err error) Status {
	switch {
	case err != nil:
		return Status{Phase: PhaseError, Message: err.Error()}
	case resp.Success:
		return Status{Phase: PhaseSuccess, Message: successMessage}
	case resp.Message != "":
		return Status{Phase: PhaseError, Message: resp.Message}
	default:
		return Status{Phase: PhaseError, Message: failureMessage}
	}
}
