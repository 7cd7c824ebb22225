package scoring

import (
	"fmt"
	"strings"
)

// ValidationError describes one invalid or missing response.
type ValidationError struct {
	QuestionID string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.QuestionID == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.QuestionID, e.Reason)
}

// ValidationErrors aggregates all problems found in a response set so the
// caller can surface them together instead of fixing one at a time.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "response validation failed: " + strings.Join(msgs, "; ")
}

// ErrNotCompleted is returned when a result is requested from an
// administration that has not been completed.
type ErrNotCompleted struct {
	State State
}

func (e *ErrNotCompleted) Error() string {
	return fmt.Sprintf("administration not completed (state: %s)", e.State)
}
