package submit

import (
	"context"
	"fmt"
	"sync"

	"github.com/Iron-Ham/tripplan/internal/endpoint"
	"github.com/Iron-Ham/tripplan/internal/errors"
	"github.com/Iron-Ham/tripplan/internal/logging"
	"github.com/Iron-Ham/tripplan/internal/metrics"
	"github.com/Iron-Ham/tripplan/internal/trip"
)

// Planner sends one plan request. *planclient.Client implements it.
type Planner interface {
	Submit(ctx context.Context, endpoint string, req trip.PlanRequest) (trip.Response, error)
}

// Controller runs submissions for one form, one at a time.
type Controller struct {
	store   endpoint.Store
	planner Planner
	logger  *logging.Logger
	metrics *metrics.Metrics

	mu       sync.Mutex
	state    State
	onChange func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics counts finished submissions by outcome.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// New creates an Idle Controller.
func New(store endpoint.Store, planner Planner, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		planner: planner,
		logger:  logging.NopLogger(),
		state:   Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("submit")
	return c
}

// OnChange registers fn to be called after entering Busy and after every
// terminal state. It replaces any previous observer. fn runs on the
// submitting goroutine, outside the controller lock.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a submission is outstanding.
func (c *Controller) Busy() bool {
	return c.State().Kind() == KindBusy
}

// Endpoint restores the last-used endpoint. Store failures are logged and the
// value the store handed back (the default on failure) is used.
func (c *Controller) Endpoint(ctx context.Context) string {
	value, err := c.store.Load(ctx)
	if err != nil {
		c.logFailure("restore", "failed to load endpoint", err)
	}
	if value == "" {
		return endpoint.DefaultEndpoint
	}
	return value
}

// Submit runs one submission and returns the terminal state. If a submission
// is already outstanding it returns the current state and errors.ErrBusy
// without doing anything.
//
// An endpoint that normalizes to "" is replaced by endpoint.DefaultEndpoint.
// Failing to persist the endpoint is logged and does not stop the request.
func (c *Controller) Submit(ctx context.Context, endpointValue string, fields trip.Fields) (final State, err error) {
	c.mu.Lock()
	if c.state.Kind() == KindBusy {
		current := c.state
		c.mu.Unlock()
		return current, errors.ErrBusy
	}
	c.state = Reduce(c.state, Started{})
	fn := c.onChange
	c.mu.Unlock()

	var outcome Event
	defer func() {
		if r := recover(); r != nil {
			outcome = Errored{Err: errors.NewInternalError(fmt.Sprintf("internal error: %v", r), nil)}
		}
		if outcome == nil {
			outcome = Errored{Err: errors.New("submission aborted")}
		}
		final = c.finish(outcome)
	}()

	if fn != nil {
		fn(Busy{})
	}

	req := trip.BuildRequest(fields)
	ep := endpoint.Normalize(endpointValue)
	if ep == "" {
		ep = endpoint.DefaultEndpoint
	}

	if saveErr := c.store.Save(ctx, ep); saveErr != nil {
		c.logFailure("persist", "failed to save endpoint", saveErr, "endpoint", ep)
	}

	c.logger.WithPhase("send").Debug("submitting plan request", "endpoint", ep, "destination", req.Destination)
	resp, sendErr := c.planner.Submit(ctx, ep, req)
	if sendErr != nil {
		outcome = Errored{Err: sendErr}
	} else {
		outcome = Resolved{Response: resp}
	}
	return final, nil
}

// finish applies the outcome, leaves Busy and notifies the observer.
func (c *Controller) finish(outcome Event) State {
	c.mu.Lock()
	c.state = Reduce(c.state, outcome)
	if c.state.Kind() == KindBusy {
		// Reduce only stays Busy for Started; never leave a form stuck.
		c.state = Failed{}
	}
	final := c.state
	fn := c.onChange
	c.mu.Unlock()

	if e, ok := outcome.(Errored); ok && e.Err != nil {
		c.logFailure("send", "submission failed", e.Err)
	}
	c.metrics.RecordSubmission(outcomeLabel(final))
	c.logger.WithPhase("render").Info("submission finished", "state", final.Kind().String())

	if fn != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logger.Error("state observer panicked", "panic", fmt.Sprint(r))
				}
			}()
			fn(final)
		}()
	}
	return final
}

// logFailure logs err at the level its severity calls for. Errors that are
// not user-facing are flagged so operators can tell bugs from outages.
func (c *Controller) logFailure(phase, msg string, err error, args ...any) {
	severity := errors.GetSeverity(err)
	l := c.logger.WithPhase(phase).With(
		"severity", severity.String(),
		"user_facing", errors.IsUserFacing(err),
	)
	args = append(args, "error", err.Error())
	switch severity {
	case errors.SeverityCritical, errors.SeverityError:
		l.Error(msg, args...)
	case errors.SeverityWarning:
		l.Warn(msg, args...)
	default:
		l.Debug(msg, args...)
	}
}

func outcomeLabel(s State) string {
	switch s.Kind() {
	case KindSuccess:
		return metrics.OutcomeSuccess
	case KindNeedsInfo:
		return metrics.OutcomeNeedsInfo
	default:
		return metrics.OutcomeFailed
	}
}
