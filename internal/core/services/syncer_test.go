package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
	"github.com/ammerola/gamedash/test/helpers"
	"github.com/ammerola/gamedash/test/mocks"
)

const testInterval = 5 * time.Millisecond

// callbackRecorder collects orchestrator callbacks
type callbackRecorder struct {
	mu       sync.Mutex
	progress []domain.SyncStatus
	success  []domain.SyncStatus
	errs     []error
}

func (r *callbackRecorder) callbacks() services.SyncCallbacks {
	return services.SyncCallbacks{
		OnProgress: func(st domain.SyncStatus) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.progress = append(r.progress, st)
		},
		OnSuccess: func(st domain.SyncStatus) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.success = append(r.success, st)
		},
		OnError: func(err error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.errs = append(r.errs, err)
		},
	}
}

func progressStatus(state domain.SyncState, percent float64) *domain.SyncStatus {
	return &domain.SyncStatus{
		TaskID:   "abc",
		State:    state,
		Progress: &domain.SyncCounters{Current: int(percent), Total: 100, Percent: percent},
	}
}

func newOrchestrator(api *mocks.MockSyncAPI, opts ...services.OrchestratorOption) *services.Orchestrator {
	opts = append([]services.OrchestratorOption{services.WithPollInterval(testInterval)}, opts...)
	return services.NewOrchestrator(api, helpers.TestLogger(), opts...)
}

func TestOrchestrator_Run(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.SyncRequest
		setupMocks    func(*mocks.MockSyncAPI)
		expectedPhase services.SyncPhase
		progress      int
		successes     int
		errorContains string
	}{
		{
			name: "progress_then_success",
			req:  domain.SyncRequest{Limit: 10},
			setupMocks: func(m *mocks.MockSyncAPI) {
				m.EXPECT().TriggerSync(gomock.Any(), 10).Return(&domain.SyncTrigger{TaskID: "abc", Status: "queued"}, nil)
				gomock.InOrder(
					m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(progressStatus(domain.SyncProgress, 50), nil),
					m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(progressStatus(domain.SyncProgress, 80), nil),
					m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(&domain.SyncStatus{
						TaskID:         "abc",
						State:          domain.SyncSuccess,
						RecordsFetched: helpers.Ptr(10),
					}, nil),
				)
			},
			expectedPhase: services.PhaseSucceeded,
			progress:      3,
			successes:     1,
		},
		{
			name: "backend_failure_carries_message",
			req:  domain.SyncRequest{Limit: 10},
			setupMocks: func(m *mocks.MockSyncAPI) {
				m.EXPECT().TriggerSync(gomock.Any(), 10).Return(&domain.SyncTrigger{TaskID: "abc"}, nil)
				m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(&domain.SyncStatus{
					TaskID:  "abc",
					State:   domain.SyncFailure,
					Message: helpers.Ptr("quota exceeded"),
				}, nil)
			},
			expectedPhase: services.PhaseFailed,
			progress:      1,
			errorContains: "quota exceeded",
		},
		{
			name: "backend_failure_without_message_uses_default",
			req:  domain.SyncRequest{Limit: 10},
			setupMocks: func(m *mocks.MockSyncAPI) {
				m.EXPECT().TriggerSync(gomock.Any(), 10).Return(&domain.SyncTrigger{TaskID: "abc"}, nil)
				m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(&domain.SyncStatus{State: domain.SyncFailure}, nil)
			},
			expectedPhase: services.PhaseFailed,
			progress:      1,
			errorContains: "sync failed",
		},
		{
			name: "sync_all_failure_default_message",
			req:  domain.SyncRequest{All: true},
			setupMocks: func(m *mocks.MockSyncAPI) {
				m.EXPECT().TriggerSyncAll(gomock.Any()).Return(&domain.SyncTrigger{TaskID: "all"}, nil)
				m.EXPECT().SyncStatus(gomock.Any(), "all").Return(&domain.SyncStatus{State: domain.SyncFailure}, nil)
			},
			expectedPhase: services.PhaseFailed,
			progress:      1,
			errorContains: "sync all failed",
		},
		{
			name: "trigger_failure_never_polls",
			req:  domain.SyncRequest{Limit: 10},
			setupMocks: func(m *mocks.MockSyncAPI) {
				m.EXPECT().TriggerSync(gomock.Any(), 10).Return(nil, errors.New("backend unreachable"))
			},
			expectedPhase: services.PhaseFailed,
			errorContains: "backend unreachable",
		},
		{
			name: "poll_transport_failure_stops_polling",
			req:  domain.SyncRequest{Limit: 10},
			setupMocks: func(m *mocks.MockSyncAPI) {
				m.EXPECT().TriggerSync(gomock.Any(), 10).Return(&domain.SyncTrigger{TaskID: "abc"}, nil)
				gomock.InOrder(
					m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(progressStatus(domain.SyncStarted, 0), nil),
					m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(nil, errors.New("connection reset")),
				)
			},
			expectedPhase: services.PhaseFailed,
			progress:      1,
			errorContains: "connection reset",
		},
		{
			name: "zero_limit_uses_default",
			req:  domain.SyncRequest{},
			setupMocks: func(m *mocks.MockSyncAPI) {
				m.EXPECT().TriggerSync(gomock.Any(), services.DefaultSyncLimit).Return(&domain.SyncTrigger{TaskID: "abc"}, nil)
				m.EXPECT().SyncStatus(gomock.Any(), "abc").Return(&domain.SyncStatus{State: domain.SyncSuccess}, nil)
			},
			expectedPhase: services.PhaseSucceeded,
			progress:      1,
			successes:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockSyncAPI(ctrl)
			tt.setupMocks(api)

			orchestrator := newOrchestrator(api)
			recorder := &callbackRecorder{}

			err := orchestrator.Run(context.Background(), tt.req, recorder.callbacks())

			snap := orchestrator.Snapshot()
			assert.Equal(t, tt.expectedPhase, snap.Phase)
			assert.Len(t, recorder.progress, tt.progress)
			assert.Len(t, recorder.success, tt.successes)
			assert.NotNil(t, snap.FinishedAt)
			assert.False(t, orchestrator.Running())

			if tt.errorContains == "" {
				require.NoError(t, err)
				assert.Empty(t, recorder.errs)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			require.Len(t, recorder.errs, 1)
			assert.Equal(t, err, recorder.errs[0])
			assert.Contains(t, snap.Error, tt.errorContains)
		})
	}
}

func TestOrchestrator_SuccessPayloadAndInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSyncAPI(ctrl)
	invalidator := mocks.NewMockCacheInvalidator(ctrl)

	api.EXPECT().TriggerSync(gomock.Any(), 5).Return(&domain.SyncTrigger{TaskID: "abc"}, nil)
	api.EXPECT().SyncStatus(gomock.Any(), "abc").Return(&domain.SyncStatus{
		State:           domain.SyncSuccess,
		RecordsInserted: helpers.Ptr(3),
	}, nil)
	invalidator.EXPECT().InvalidateAfterSync(gomock.Any()).Times(1)

	orchestrator := newOrchestrator(api, services.WithInvalidator(invalidator))
	recorder := &callbackRecorder{}

	require.NoError(t, orchestrator.Run(context.Background(), domain.SyncRequest{Limit: 5}, recorder.callbacks()))

	require.Len(t, recorder.success, 1)
	final := recorder.success[0]
	assert.Equal(t, "abc", final.TaskID, "task id is filled from the trigger")
	assert.Equal(t, 3, *final.RecordsInserted)

	snap := orchestrator.Snapshot()
	assert.Equal(t, "abc", snap.TaskID)
	assert.Equal(t, 1, snap.Polls)
	require.NotNil(t, snap.LastStatus)
	assert.Equal(t, domain.SyncSuccess, snap.LastStatus.State)
}

func TestOrchestrator_FailureDoesNotInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSyncAPI(ctrl)
	invalidator := mocks.NewMockCacheInvalidator(ctrl)

	api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(nil, errors.New("nope"))

	orchestrator := newOrchestrator(api, services.WithInvalidator(invalidator))
	err := orchestrator.Run(context.Background(), domain.SyncRequest{}, services.SyncCallbacks{})

	require.Error(t, err)
}

func TestOrchestrator_RejectsInvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	orchestrator := newOrchestrator(mocks.NewMockSyncAPI(ctrl))

	for _, limit := range []int{-1, services.MaxSyncLimit + 1} {
		err := orchestrator.Run(context.Background(), domain.SyncRequest{Limit: limit}, services.SyncCallbacks{})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	}
	assert.Equal(t, services.PhaseIdle, orchestrator.Snapshot().Phase)
}

func TestOrchestrator_MaxDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSyncAPI(ctrl)
	api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(&domain.SyncTrigger{TaskID: "stuck"}, nil)
	api.EXPECT().SyncStatus(gomock.Any(), "stuck").Return(&domain.SyncStatus{State: domain.SyncPending}, nil).AnyTimes()

	orchestrator := newOrchestrator(api, services.WithMaxDuration(40*time.Millisecond))
	recorder := &callbackRecorder{}

	err := orchestrator.Run(context.Background(), domain.SyncRequest{Limit: 1}, recorder.callbacks())

	require.ErrorIs(t, err, services.ErrSyncTimeout)
	assert.Equal(t, services.PhaseFailed, orchestrator.Snapshot().Phase)
	require.Len(t, recorder.errs, 1)
	assert.ErrorIs(t, recorder.errs[0], services.ErrSyncTimeout)
	assert.NotEmpty(t, recorder.progress)
}

func TestOrchestrator_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSyncAPI(ctrl)
	api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(&domain.SyncTrigger{TaskID: "long"}, nil)
	api.EXPECT().SyncStatus(gomock.Any(), "long").Return(progressStatus(domain.SyncProgress, 10), nil).AnyTimes()

	orchestrator := newOrchestrator(api)
	recorder := &callbackRecorder{}

	assert.False(t, orchestrator.Cancel(), "nothing to cancel yet")

	sess, err := orchestrator.Start(context.Background(), domain.SyncRequest{Limit: 3}, recorder.callbacks())
	require.NoError(t, err)

	helpers.AssertEventuallyWithTimeout(t, func() bool {
		return orchestrator.Snapshot().Polls > 0
	}, time.Second, "orchestrator should poll")

	assert.True(t, orchestrator.Cancel())

	select {
	case <-sess.Done():
	case <-time.After(time.Second):
		t.Fatal("session did not stop")
	}
	assert.ErrorIs(t, sess.Err(), services.ErrSyncCancelled)
	assert.Equal(t, services.PhaseCancelled, orchestrator.Snapshot().Phase)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Empty(t, recorder.errs)
	assert.Empty(t, recorder.success)
}

func TestOrchestrator_ParentContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSyncAPI(ctrl)
	api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(&domain.SyncTrigger{TaskID: "long"}, nil)
	api.EXPECT().SyncStatus(gomock.Any(), "long").Return(&domain.SyncStatus{State: domain.SyncPending}, nil).AnyTimes()

	orchestrator := newOrchestrator(api)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := orchestrator.Run(ctx, domain.SyncRequest{}, services.SyncCallbacks{})

	assert.ErrorIs(t, err, services.ErrSyncCancelled)
	assert.Equal(t, services.PhaseCancelled, orchestrator.Snapshot().Phase)
}

func TestOrchestrator_StartPolicies(t *testing.T) {
	t.Run("replace_prior_cancels_running_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockSyncAPI(ctrl)
		gomock.InOrder(
			api.EXPECT().TriggerSync(gomock.Any(), 1).Return(&domain.SyncTrigger{TaskID: "first"}, nil),
			api.EXPECT().TriggerSync(gomock.Any(), 2).Return(&domain.SyncTrigger{TaskID: "second"}, nil),
		)
		api.EXPECT().SyncStatus(gomock.Any(), "first").Return(&domain.SyncStatus{State: domain.SyncPending}, nil).AnyTimes()
		api.EXPECT().SyncStatus(gomock.Any(), "second").Return(&domain.SyncStatus{State: domain.SyncSuccess}, nil)

		orchestrator := newOrchestrator(api)

		first, err := orchestrator.Start(context.Background(), domain.SyncRequest{Limit: 1}, services.SyncCallbacks{})
		require.NoError(t, err)
		helpers.AssertEventuallyWithTimeout(t, func() bool {
			return orchestrator.Snapshot().TaskID == "first"
		}, time.Second, "first session should be polling")

		second, err := orchestrator.Start(context.Background(), domain.SyncRequest{Limit: 2}, services.SyncCallbacks{})
		require.NoError(t, err)

		assert.ErrorIs(t, first.Err(), services.ErrSyncCancelled)
		require.NoError(t, second.Wait(context.Background()))
		assert.Equal(t, services.PhaseSucceeded, orchestrator.Snapshot().Phase)
		assert.Equal(t, "second", orchestrator.Snapshot().TaskID)
	})

	t.Run("reject_concurrent_returns_in_progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockSyncAPI(ctrl)
		api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(&domain.SyncTrigger{TaskID: "only"}, nil)
		api.EXPECT().SyncStatus(gomock.Any(), "only").Return(&domain.SyncStatus{State: domain.SyncPending}, nil).AnyTimes()

		orchestrator := newOrchestrator(api, services.WithStartPolicy(services.RejectConcurrent))

		first, err := orchestrator.Start(context.Background(), domain.SyncRequest{}, services.SyncCallbacks{})
		require.NoError(t, err)

		_, err = orchestrator.Start(context.Background(), domain.SyncRequest{}, services.SyncCallbacks{})
		assert.ErrorIs(t, err, services.ErrSyncInProgress)

		assert.True(t, orchestrator.Cancel())
		assert.ErrorIs(t, first.Err(), services.ErrSyncCancelled)
	})
}

// runWithin fails the test when fn does not return within d
func runWithin(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("orchestrator call did not return")
	}
}

func TestOrchestrator_CallbacksMayReenter(t *testing.T) {
	t.Run("cancel_from_on_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockSyncAPI(ctrl)
		api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(&domain.SyncTrigger{TaskID: "abc"}, nil)
		api.EXPECT().SyncStatus(gomock.Any(), "abc").Return(&domain.SyncStatus{State: domain.SyncFailure}, nil)

		orchestrator := newOrchestrator(api)
		var cancelled bool
		var err error
		runWithin(t, 2*time.Second, func() {
			err = orchestrator.Run(context.Background(), domain.SyncRequest{}, services.SyncCallbacks{
				OnError: func(error) { cancelled = orchestrator.Cancel() },
			})
		})

		var failed *services.SyncFailedError
		assert.ErrorAs(t, err, &failed)
		assert.False(t, cancelled, "a settled session is not running")
		assert.False(t, orchestrator.Running())
	})

	t.Run("start_from_on_success_replaces_settled_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockSyncAPI(ctrl)
		gomock.InOrder(
			api.EXPECT().TriggerSync(gomock.Any(), 1).Return(&domain.SyncTrigger{TaskID: "first"}, nil),
			api.EXPECT().TriggerSync(gomock.Any(), 2).Return(&domain.SyncTrigger{TaskID: "second"}, nil),
		)
		api.EXPECT().SyncStatus(gomock.Any(), "first").Return(&domain.SyncStatus{State: domain.SyncSuccess}, nil)
		api.EXPECT().SyncStatus(gomock.Any(), "second").Return(&domain.SyncStatus{State: domain.SyncSuccess}, nil)

		orchestrator := newOrchestrator(api)
		var next *services.Session
		var startErr, err error
		runWithin(t, 2*time.Second, func() {
			err = orchestrator.Run(context.Background(), domain.SyncRequest{Limit: 1}, services.SyncCallbacks{
				OnSuccess: func(domain.SyncStatus) {
					next, startErr = orchestrator.Start(context.Background(), domain.SyncRequest{Limit: 2}, services.SyncCallbacks{})
				},
			})
		})

		require.NoError(t, err)
		require.NoError(t, startErr)
		require.NotNil(t, next)
		require.NoError(t, next.Wait(context.Background()))
		assert.Equal(t, "second", orchestrator.Snapshot().TaskID)
		assert.Equal(t, services.PhaseSucceeded, orchestrator.Snapshot().Phase)
	})

	t.Run("retry_from_on_error_under_reject_concurrent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockSyncAPI(ctrl)
		gomock.InOrder(
			api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(nil, errors.New("backend down")),
			api.EXPECT().TriggerSync(gomock.Any(), gomock.Any()).Return(&domain.SyncTrigger{TaskID: "retry"}, nil),
		)
		api.EXPECT().SyncStatus(gomock.Any(), "retry").Return(&domain.SyncStatus{State: domain.SyncSuccess}, nil)

		orchestrator := newOrchestrator(api, services.WithStartPolicy(services.RejectConcurrent))
		var next *services.Session
		var startErr error
		runWithin(t, 2*time.Second, func() {
			_ = orchestrator.Run(context.Background(), domain.SyncRequest{}, services.SyncCallbacks{
				OnError: func(error) {
					next, startErr = orchestrator.Start(context.Background(), domain.SyncRequest{}, services.SyncCallbacks{})
				},
			})
		})

		require.NoError(t, startErr)
		require.NoError(t, next.Wait(context.Background()))
		assert.Equal(t, "retry", orchestrator.Snapshot().TaskID)
	})
}
