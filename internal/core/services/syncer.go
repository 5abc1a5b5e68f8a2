// internal/core/services/syncer.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

const (
	DefaultPollInterval = 1500 * time.Millisecond
	DefaultSyncLimit    = 40
	MaxSyncLimit        = 40
)

var (
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrSyncTimeout    = errors.New("sync timed out")
	ErrSyncCancelled  = errors.New("sync cancelled")
)

// SyncFailedError is a FAILURE state reported by the backend
type SyncFailedError struct {
	TaskID  string
	Message string
}

func (e *SyncFailedError) Error() string { return e.Message }

// SyncPhase is the orchestrator's view of a session
type SyncPhase string

const (
	PhaseIdle       SyncPhase = "idle"
	PhaseTriggering SyncPhase = "triggering"
	PhasePolling    SyncPhase = "polling"
	PhaseSucceeded  SyncPhase = "succeeded"
	PhaseFailed     SyncPhase = "failed"
	PhaseCancelled  SyncPhase = "cancelled"
)

// StartPolicy decides what happens when a sync is started while another
// session is still running.
type StartPolicy int

const (
	// ReplacePrior cancels the running session and waits for it to stop
	ReplacePrior StartPolicy = iota
	// RejectConcurrent refuses the new session with ErrSyncInProgress
	RejectConcurrent
)

// SyncCallbacks receive session events. Any of them may be nil.
// OnProgress fires once per poll, before OnSuccess or OnError.
// OnError fires on trigger failure, backend FAILURE, poll transport
// failure and timeout; a cancelled session fires neither OnSuccess
// nor OnError.
//
// OnSuccess and OnError run after the session has settled, so they may
// call back into the orchestrator: Cancel then reports false, and Start
// begins a new session without waiting for the settled one.
type SyncCallbacks struct {
	OnProgress func(domain.SyncStatus)
	OnSuccess  func(domain.SyncStatus)
	OnError    func(error)
}

// SyncSnapshot describes the current or most recent session
type SyncSnapshot struct {
	SessionID  string             `json:"session_id,omitempty"`
	TaskID     string             `json:"task_id,omitempty"`
	Request    domain.SyncRequest `json:"request"`
	Phase      SyncPhase          `json:"phase"`
	LastStatus *domain.SyncStatus `json:"last_status,omitempty"`
	Polls      int                `json:"polls"`
	Error      string             `json:"error,omitempty"`
	StartedAt  *time.Time         `json:"started_at,omitempty"`
	FinishedAt *time.Time         `json:"finished_at,omitempty"`
}

// Session is a handle on one running sync
type Session struct {
	id      string
	cancel  context.CancelCauseFunc
	done    chan struct{}
	err     error
	settled bool // guarded by Orchestrator.mu
}

func (s *Session) ID() string { return s.id }

// Done is closed when the session reaches a terminal phase
func (s *Session) Done() <-chan struct{} { return s.done }

// Err is the session's result; only valid after Done is closed
func (s *Session) Err() error { return s.err }

// Wait blocks until the session ends or ctx is done
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OrchestratorOption configures an Orchestrator
type OrchestratorOption func(*Orchestrator)

func WithPollInterval(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithMaxDuration bounds a session; 0 disables the bound
func WithMaxDuration(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.maxDuration = d
		}
	}
}

func WithDefaultLimit(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n >= 1 && n <= MaxSyncLimit {
			o.defaultLimit = n
		}
	}
}

func WithStartPolicy(p StartPolicy) OrchestratorOption {
	return func(o *Orchestrator) { o.policy = p }
}

// WithInvalidator sets the cache dropped after a successful sync
func WithInvalidator(inv ports.CacheInvalidator) OrchestratorOption {
	return func(o *Orchestrator) { o.invalidator = inv }
}

// Orchestrator drives backend sync jobs to completion. It tracks at most
// one session at a time. Polls run on a single goroutine, so a status
// request is never issued while another is in flight.
type Orchestrator struct {
	api          ports.SyncAPI
	invalidator  ports.CacheInvalidator
	interval     time.Duration
	maxDuration  time.Duration
	defaultLimit int
	policy       StartPolicy
	logger       *slog.Logger

	mu       sync.Mutex
	active   *Session
	snapshot SyncSnapshot
}

// NewOrchestrator creates a new sync orchestrator
func NewOrchestrator(api ports.SyncAPI, logger *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		api:          api,
		interval:     DefaultPollInterval,
		defaultLimit: DefaultSyncLimit,
		policy:       ReplacePrior,
		logger:       logger.With(slog.String("component", "sync_orchestrator")),
		snapshot:     SyncSnapshot{Phase: PhaseIdle},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run starts a session and blocks until it ends
func (o *Orchestrator) Run(ctx context.Context, req domain.SyncRequest, cb SyncCallbacks) error {
	sess, sctx, err := o.begin(ctx, req)
	if err != nil {
		return err
	}
	o.drive(sctx, sess, req, cb)
	return sess.err
}

// Start begins a session in the background. The returned error is
// immediate: an invalid request or a rejected concurrent start.
func (o *Orchestrator) Start(ctx context.Context, req domain.SyncRequest, cb SyncCallbacks) (*Session, error) {
	sess, sctx, err := o.begin(ctx, req)
	if err != nil {
		return nil, err
	}
	go o.drive(sctx, sess, req, cb)
	return sess, nil
}

// Cancel stops the running session, if any, and reports whether there
// was one. A session that has already settled is not running.
func (o *Orchestrator) Cancel() bool {
	o.mu.Lock()
	sess := o.running()
	o.mu.Unlock()

	if sess == nil {
		return false
	}
	sess.cancel(ErrSyncCancelled)
	<-sess.done
	return true
}

// Snapshot returns the state of the current or most recent session
func (o *Orchestrator) Snapshot() SyncSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := o.snapshot
	if snap.LastStatus != nil {
		st := *snap.LastStatus
		snap.LastStatus = &st
	}
	return snap
}

// Running reports whether a session is active
func (o *Orchestrator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running() != nil
}

// running returns the active session unless it has settled; o.mu must be held
func (o *Orchestrator) running() *Session {
	if o.active == nil || o.active.settled {
		return nil
	}
	return o.active
}

func (o *Orchestrator) begin(ctx context.Context, req domain.SyncRequest) (*Session, context.Context, error) {
	if !req.All && (req.Limit < 0 || req.Limit > MaxSyncLimit) {
		return nil, nil, &domain.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", MaxSyncLimit),
		}
	}

	for {
		o.mu.Lock()
		prior := o.running()
		if prior == nil {
			break
		}
		o.mu.Unlock()

		if o.policy == RejectConcurrent {
			return nil, nil, ErrSyncInProgress
		}
		prior.cancel(ErrSyncCancelled)
		<-prior.done
	}
	defer o.mu.Unlock()

	sctx, cancel := context.WithCancelCause(ctx)
	sess := &Session{
		id:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	o.active = sess

	now := time.Now()
	o.snapshot = SyncSnapshot{
		SessionID: sess.id,
		Request:   req,
		Phase:     PhaseTriggering,
		StartedAt: &now,
	}
	return sess, sctx, nil
}

func (o *Orchestrator) drive(ctx context.Context, sess *Session, req domain.SyncRequest, cb SyncCallbacks) {
	log := o.logger.With(slog.String("session_id", sess.id), slog.Bool("all", req.All))

	if o.maxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, o.maxDuration, ErrSyncTimeout)
		defer cancel()
	}

	status, err := o.poll(ctx, sess, req, cb, log)

	phase := PhaseSucceeded
	switch {
	case err == nil:
		if o.invalidator != nil {
			o.invalidator.InvalidateAfterSync(context.WithoutCancel(ctx))
		}
		log.InfoContext(ctx, "sync succeeded", slog.String("task_id", status.TaskID))
	case errors.Is(err, ErrSyncCancelled):
		phase = PhaseCancelled
		log.InfoContext(ctx, "sync cancelled")
	default:
		phase = PhaseFailed
		log.ErrorContext(ctx, "sync failed", slog.Any("error", err))
	}

	o.settle(sess, phase, err)

	switch phase {
	case PhaseSucceeded:
		if cb.OnSuccess != nil {
			cb.OnSuccess(*status)
		}
	case PhaseFailed:
		if cb.OnError != nil {
			cb.OnError(err)
		}
	}

	o.release(sess, err)
}

// poll triggers the job and polls it to a terminal state
func (o *Orchestrator) poll(ctx context.Context, sess *Session, req domain.SyncRequest, cb SyncCallbacks,
	log *slog.Logger) (*domain.SyncStatus, error) {

	trigger, err := o.trigger(ctx, req)
	if err != nil {
		return nil, o.interrupted(ctx, fmt.Errorf("failed to trigger sync: %w", err))
	}

	o.update(sess, func(s *SyncSnapshot) {
		s.TaskID = trigger.TaskID
		s.Phase = PhasePolling
	})
	log = log.With(slog.String("sync_task_id", trigger.TaskID))
	log.InfoContext(ctx, "sync triggered", slog.String("message", trigger.Message))

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, o.interrupted(ctx, ctx.Err())
		case <-ticker.C:
		}

		status, err := o.api.SyncStatus(ctx, trigger.TaskID)
		if err != nil {
			return nil, o.interrupted(ctx, fmt.Errorf("failed to poll sync status: %w", err))
		}
		if status.TaskID == "" {
			status.TaskID = trigger.TaskID
		}

		o.update(sess, func(s *SyncSnapshot) {
			st := *status
			s.LastStatus = &st
			s.Polls++
		})
		log.DebugContext(ctx, "sync status",
			slog.String("state", string(status.State)),
			slog.Float64("percent", status.Percent()))

		if cb.OnProgress != nil {
			cb.OnProgress(*status)
		}

		switch status.State {
		case domain.SyncSuccess:
			return status, nil
		case domain.SyncFailure:
			return nil, &SyncFailedError{
				TaskID:  trigger.TaskID,
				Message: status.MessageOr(defaultFailureMessage(req)),
			}
		}
	}
}

func (o *Orchestrator) trigger(ctx context.Context, req domain.SyncRequest) (*domain.SyncTrigger, error) {
	if req.All {
		return o.api.TriggerSyncAll(ctx)
	}
	limit := req.Limit
	if limit == 0 {
		limit = o.defaultLimit
	}
	return o.api.TriggerSync(ctx, limit)
}

// interrupted replaces err with the session's cancellation cause when the
// session context is done
func (o *Orchestrator) interrupted(ctx context.Context, err error) error {
	if ctx.Err() == nil {
		return err
	}
	if errors.Is(context.Cause(ctx), ErrSyncTimeout) {
		return ErrSyncTimeout
	}
	return ErrSyncCancelled
}

func (o *Orchestrator) update(sess *Session, fn func(*SyncSnapshot)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active == sess {
		fn(&o.snapshot)
	}
}

// settle records the terminal phase. From here on the session can be
// replaced without waiting, which lets callbacks start a new one.
func (o *Orchestrator) settle(sess *Session, phase SyncPhase, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess.settled = true
	if o.active != sess {
		return
	}
	now := time.Now()
	o.snapshot.Phase = phase
	o.snapshot.FinishedAt = &now
	if err != nil {
		o.snapshot.Error = err.Error()
	}
}

func (o *Orchestrator) release(sess *Session, err error) {
	o.mu.Lock()
	if o.active == sess {
		o.active = nil
	}
	o.mu.Unlock()

	sess.err = err
	sess.cancel(nil)
	close(sess.done)
}

func defaultFailureMessage(req domain.SyncRequest) string {
	if req.All {
		return "sync all failed"
	}
	return "sync failed"
}
