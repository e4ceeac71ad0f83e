// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"
)

// ScriptCall records one script invocation received by the mock.
type ScriptCall struct {
	Script string
	Args   []string
}

// ScriptResult is one canned response of a MockRunner.
type ScriptResult struct {
	Output string
	Err    error
}

// MockRunner implements scripting.Runner. It replays canned results in
// order and records every call it receives. Once the queue is
// exhausted it keeps returning empty successes, so tests only script
// the calls they care about.
type MockRunner struct {
	mu      sync.Mutex
	results []ScriptResult
	calls   []ScriptCall
}

// NewMockRunner creates a MockRunner that replays the given results.
func NewMockRunner(results ...ScriptResult) *MockRunner {
	return &MockRunner{results: results}
}

// Enqueue appends further canned results.
func (m *MockRunner) Enqueue(results ...ScriptResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = append(m.results, results...)
}

// Run records the call and pops the next canned result.
func (m *MockRunner) Run(ctx context.Context, script string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, ScriptCall{Script: script, Args: args})

	if len(m.results) == 0 {
		return "", nil
	}

	next := m.results[0]
	m.results = m.results[1:]
	return next.Output, next.Err
}

// Calls returns a copy of all recorded invocations.
func (m *MockRunner) Calls() []ScriptCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ScriptCall, len(m.calls))
	copy(out, m.calls)
	return out
}
