package registry

import (
	"fmt"
	"strings"
)

// DuplicateRegistrationError reports a name registered twice.
type DuplicateRegistrationError struct {
	Name string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("derived value %q is already registered", e.Name)
}

// UnknownNameError reports a reference to a name that is not registered,
// not declared as a dependency, or not evaluated yet.
type UnknownNameError struct {
	Name       string
	Requester  string
	Reason     string
	Suggestion string
}

func (e *UnknownNameError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown derived value %q", e.Name)
	if e.Requester != "" {
		fmt.Fprintf(&b, " referenced by %q", e.Requester)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	return b.String()
}

// CyclicDependencyError reports definitions that depend on each other.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}

// EvaluationError wraps a failure inside an evaluator with its name.
type EvaluationError struct {
	Name string
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluating %s: %v", e.Name, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
