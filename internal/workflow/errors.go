package workflow

import "fmt"

// LoginError indicates the post-login location heuristic did not observe a
// signed-in page. It aborts the current document's workflow only.
type LoginError struct {
	Message string
	Cause   error
}

func (e *LoginError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("login failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("login failed: %s", e.Message)
}

func (e *LoginError) Unwrap() error {
	return e.Cause
}

// StepError indicates a navigation or element interaction failed during a
// named workflow step. It aborts the current sub-workflow but not
// necessarily the parent.
type StepError struct {
	Step    string
	Message string
	Cause   error
}

func (e *StepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}
