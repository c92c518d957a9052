package session

import "errors"

var (
	// ErrBusy is returned when a question is submitted while the session is
	// still processing the previous one.
	ErrBusy = errors.New("a query is already being processed")

	ErrNothingToRetry = errors.New("there is no query to retry")
	ErrEntryNotFound  = errors.New("history entry not found")

	// ErrEditChanged is returned by Editor.Run when the SQL was replaced
	// before its result came back.
	ErrEditChanged = errors.New("the SQL changed while it was running")
)

// ProcessingError wraps anything that went wrong between validation and the
// end of a cycle, including recovered panics.
type ProcessingError struct {
	Query string
	Err   error
}

func (e *ProcessingError) Error() string {
	if e.Err == nil {
		return "An error occurred while processing the query"
	}
	return e.Err.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
