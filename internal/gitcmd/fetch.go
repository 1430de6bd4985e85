package gitcmd

import (
	"context"
	"fmt"
)

// FetchBranch runs 'git fetch --prune --no-tags <remote> <branch>' to update
// the remote-tracking ref for a single branch while removing any stale
// remote-tracking refs. Tags are deliberately not transferred; cleanup
// deletes them wholesale anyway.
func FetchBranch(ctx context.Context, remote, branch string) error {
	if remote == "" {
		return fmt.Errorf("remote name cannot be empty for fetch")
	}
	if branch == "" {
		return fmt.Errorf("branch name cannot be empty for fetch")
	}

	args := []string{"fetch", "--prune", "--no-tags", remote, branch}

	_, err := RunGitCommand(ctx, args...)
	if err != nil {
		// Wrap the error with more context. The caller decides whether
		// this is fatal.
		return fmt.Errorf("failed to fetch %q from %q: %w", branch, remote, err)
	}

	return nil
}
