package trunk

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bral/git-trunk-go/internal/config"
	"github.com/bral/git-trunk-go/internal/gitcmd"
)

// commandExpectation defines an expected git command call and its result.
type commandExpectation struct {
	args   []string
	output string
	err    error
}

// setupExpectations swaps gitcmd.Runner for a mock that verifies calls
// against a sequence of expectations. Workflow tests care about the exact
// order of git invocations, so any deviation fails fast.
func setupExpectations(t *testing.T, expectations []commandExpectation) func() {
	t.Helper()

	originalRunner := gitcmd.Runner
	currentExpectationIndex := 0
	var mu sync.Mutex

	gitcmd.Runner = func(_ context.Context, args ...string) (string, error) {
		mu.Lock()
		defer mu.Unlock()

		if currentExpectationIndex >= len(expectations) {
			t.Fatalf("Unexpected git command call: %v. No more expectations.", args)
			return "", errors.New("unexpected call")
		}

		expected := expectations[currentExpectationIndex]
		if diff := cmp.Diff(expected.args, args); diff != "" {
			t.Fatalf("Unexpected git command arguments (-want +got):\n%s", diff)
			return "", errors.New("unexpected arguments")
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
				t.Logf("Remaining expectation %d: args=%v", i, expectations[i].args)
			}
		}
		gitcmd.Runner = originalRunner
	}
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	return cfg
}

// Probe expectations shared by most tests: a main-based repository.
func probeMainTrunk() []commandExpectation {
	return []commandExpectation{
		{args: []string{"rev-parse", "--verify", "--quiet", "refs/remotes/origin/master"},
			err: errors.New("fatal: Needed a single revision")},
		{args: []string{"rev-parse", "--verify", "--quiet", "refs/remotes/origin/main"}, output: "abc123"},
	}
}
