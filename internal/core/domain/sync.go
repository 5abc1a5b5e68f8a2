// internal/core/domain/sync.go
package domain

// SyncState is the backend job state reported by /sync/status
type SyncState string

const (
	SyncPending  SyncState = "PENDING"
	SyncStarted  SyncState = "STARTED"
	SyncProgress SyncState = "PROGRESS"
	SyncSuccess  SyncState = "SUCCESS"
	SyncFailure  SyncState = "FAILURE"
)

// IsTerminal reports whether polling must stop at this state
func (s SyncState) IsTerminal() bool {
	return s == SyncSuccess || s == SyncFailure
}

// SyncCounters are the job's progress counters
type SyncCounters struct {
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// SyncStatus is one poll result. Running jobs report inserted/updated/skipped,
// finished jobs report the records_* totals.
type SyncStatus struct {
	TaskID   string        `json:"task_id"`
	State    SyncState     `json:"state"`
	Progress *SyncCounters `json:"progress,omitempty"`
	Inserted *int          `json:"inserted,omitempty"`
	Updated  *int          `json:"updated,omitempty"`
	Skipped  *int          `json:"skipped,omitempty"`
	Message  *string       `json:"message,omitempty"`

	RecordsFetched  *int    `json:"records_fetched,omitempty"`
	RecordsInserted *int    `json:"records_inserted,omitempty"`
	RecordsUpdated  *int    `json:"records_updated,omitempty"`
	RecordsSkipped  *int    `json:"records_skipped,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// Percent returns the reported completion percentage, 0 when unknown
func (s SyncStatus) Percent() float64 {
	if s.Progress == nil {
		return 0
	}
	return s.Progress.Percent
}

// MessageOr returns the backend message or def when absent
func (s SyncStatus) MessageOr(def string) string {
	if s.Message == nil || *s.Message == "" {
		return def
	}
	return *s.Message
}

// SyncTrigger is the acknowledgement returned when a job is queued
type SyncTrigger struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SyncRequest selects a bounded or unbounded sync. Limit 0 means the
// configured default.
type SyncRequest struct {
	Limit int  `json:"limit"`
	All   bool `json:"all"`
}

// SyncLog is the backend's record of a finished sync
type SyncLog struct {
	ID              int64     `json:"id"`
	Source          string    `json:"source"`
	Status          string    `json:"status"`
	SyncedAt        Timestamp `json:"synced_at"`
	RecordsFetched  int       `json:"records_fetched"`
	RecordsInserted int       `json:"records_inserted"`
	RecordsUpdated  int       `json:"records_updated"`
	RecordsSkipped  int       `json:"records_skipped"`
	Message         *string   `json:"message,omitempty"`
}
