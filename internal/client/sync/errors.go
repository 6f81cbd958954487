package sync

import (
	"errors"
	"fmt"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/models"
)

// ErrNetworkUnavailable is returned when the network gate refuses to start
// a cycle. Nothing has been read or written when it is returned.
var ErrNetworkUnavailable = errors.New("network unavailable")

// PushError records a failed create or update of one local record
type PushError struct {
	Cause error
	Kind  models.Kind
	ID    string
}

// Error implements error
func (e *PushError) Error() string {
	return fmt.Sprintf("failed to push %s %s: %v", e.Kind, e.ID, e.Cause)
}

// Unwrap returns the underlying cause
func (e *PushError) Unwrap() error {
	return e.Cause
}

// PullError records a failed list call for a kind (ID is empty) or a failed
// merge of one remote record
type PullError struct {
	Cause error
	Kind  models.Kind
	ID    string
}

// Error implements error
func (e *PullError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to pull %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("failed to merge %s %s: %v", e.Kind, e.ID, e.Cause)
}

// Unwrap returns the underlying cause
func (e *PullError) Unwrap() error {
	return e.Cause
}

// errorRecords flattens cycle errors for persistence and display
func errorRecords(errs []error) []storage.SyncErrorRecord {
	if len(errs) == 0 {
		return nil
	}

	out := make([]storage.SyncErrorRecord, 0, len(errs))
	for _, err := range errs {
		var (
			pushErr *PushError
			pullErr *PullError
		)
		switch {
		case errors.As(err, &pushErr):
			out = append(out, storage.SyncErrorRecord{
				Op:       "push",
				Kind:     pushErr.Kind.String(),
				RecordID: pushErr.ID,
				Message:  pushErr.Cause.Error(),
			})
		case errors.As(err, &pullErr):
			out = append(out, storage.SyncErrorRecord{
				Op:       "pull",
				Kind:     pullErr.Kind.String(),
				RecordID: pullErr.ID,
				Message:  pullErr.Cause.Error(),
			})
		default:
			out = append(out, storage.SyncErrorRecord{Message: err.Error()})
		}
	}
	return out
}
