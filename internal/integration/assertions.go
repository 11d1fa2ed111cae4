package integration

import (
	"strings"
	"testing"

	"github.com/catspeak-dev/catspeak/internal/errors"
)

// Asserter provides assertion helpers for one CLI result.
type Asserter struct {
	t      *testing.T
	result Result
}

// NewAsserter creates an asserter for the given result.
func NewAsserter(t *testing.T, result Result) *Asserter {
	return &Asserter{t: t, result: result}
}

// ContainsText checks if stdout contains a substring.
func (a *Asserter) ContainsText(text string) bool {
	return strings.Contains(a.result.Stdout, text)
}

// HasErrorCode checks the error code of the result.
func (a *Asserter) HasErrorCode(code string) bool {
	return errors.HasCode(a.result.Err, errors.ErrorCode(code))
}

// RunAssertions runs all assertions from a step definition.
func (a *Asserter) RunAssertions(expect StepAssertions) {
	a.t.Helper()

	if expect.ErrorCode != "" {
		if a.result.Err == nil {
			a.t.Errorf("expected error %s, got success with output %q", expect.ErrorCode, a.result.Stdout)
			return
		}
		if !a.HasErrorCode(expect.ErrorCode) {
			a.t.Errorf("expected error %s, got %v (code %q)", expect.ErrorCode, a.result.Err, errors.CodeOf(a.result.Err))
		}
		return
	}

	if a.result.Err != nil {
		a.t.Errorf("unexpected error: %v", a.result.Err)
		return
	}

	if expect.Output != nil && a.result.Output() != *expect.Output {
		a.t.Errorf("expected output %q, got %q", *expect.Output, a.result.Output())
	}

	for _, text := range expect.Contains {
		if !a.ContainsText(text) {
			a.t.Errorf("expected output to contain %q, but not found", text)
		}
	}

	for _, text := range expect.NotContains {
		if a.ContainsText(text) {
			a.t.Errorf("expected output NOT to contain %q, but found", text)
		}
	}
}
