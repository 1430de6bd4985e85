// Package gitcmd contains helpers for testing git command interactions.
// The _test suffix ensures this file is only included during tests.
package gitcmd

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// setupMockRunner sets the package Runner to the given function and returns
// a teardown function. For tests that only need a single mock function.
func setupMockRunner(_ *testing.T, mockFunc func(_ context.Context, args ...string) (string, error)) func() {
	originalRunner := Runner
	Runner = mockFunc
	return func() {
		Runner = originalRunner
	}
}

// commandExpectation defines an expected git command call and its result.
type commandExpectation struct {
	args   []string // Expected arguments
	output string   // Output to return
	err    error    // Error to return
}

// setupExpectations sets the package Runner to a mock that verifies calls
// against a sequence of expectations. It returns a teardown function that
// restores the original runner and fails the test if expectations remain.
func setupExpectations(t *testing.T, expectations []commandExpectation) func() {
	t.Helper()

	originalRunner := Runner
	currentExpectationIndex := 0
	var mu sync.Mutex // Protect access to the index

	Runner = func(_ context.Context, args ...string) (string, error) {
		mu.Lock()
		defer mu.Unlock()

		if currentExpectationIndex >= len(expectations) {
			t.Fatalf("Unexpected git command call: %v. No more expectations.", args)
			return "", errors.New("unexpected call") // Should not be reached
		}

		expected := expectations[currentExpectationIndex]

		// Use go-cmp for robust slice comparison
		if diff := cmp.Diff(expected.args, args); diff != "" {
			t.Fatalf("Unexpected git command arguments (-want +got):\n%s", diff)
			return "", errors.New("unexpected arguments") // Should not be reached
		}

		currentExpectationIndex++
		return expected.output, expected.err
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if currentExpectationIndex < len(expectations) {
			t.Errorf("Not all expected git commands were called. Expected %d more.",
				len(expectations)-currentExpectationIndex)
			for i := currentExpectationIndex; i < len(expectations); i++ {
				t.Logf("Remaining expectation %d: args=%v, output=%q, err=%v",
					i, expectations[i].args, expectations[i].output, expectations[i].err)
			}
		}
		Runner = originalRunner
	}
}
