package gitcmd

import (
	"context"
	"fmt"
)

// MergeBranch merges the given ref into the currently checked-out branch
// using '--no-edit' so no editor is spawned for the merge message. Git
// fast-forwards when possible.
func MergeBranch(ctx context.Context, ref string) error {
	if ref == "" {
		return fmt.Errorf("ref cannot be empty for merge")
	}
	_, err := RunGitCommand(ctx, "merge", "--no-edit", ref)
	if err != nil {
		return fmt.Errorf("failed to merge %q: %w", ref, err)
	}
	return nil
}

// ForceSetBranch moves the local branch pointer to the given ref without
// touching the working tree. Used to update a branch that is not currently
// checked out.
func ForceSetBranch(ctx context.Context, branch, ref string) error {
	if branch == "" || ref == "" {
		return fmt.Errorf("branch and ref cannot be empty for branch -f")
	}
	_, err := RunGitCommand(ctx, "branch", "-f", branch, ref)
	if err != nil {
		return fmt.Errorf("failed to set branch %q to %q: %w", branch, ref, err)
	}
	return nil
}

// Checkout switches the working tree to an existing branch.
func Checkout(ctx context.Context, branch string) error {
	if branch == "" {
		return fmt.Errorf("branch name cannot be empty for checkout")
	}
	_, err := RunGitCommand(ctx, "checkout", branch)
	if err != nil {
		return fmt.Errorf("failed to checkout %q: %w", branch, err)
	}
	return nil
}

// CreateAndCheckout creates a new branch starting at base and checks it out.
func CreateAndCheckout(ctx context.Context, branch, base string) error {
	if branch == "" || base == "" {
		return fmt.Errorf("branch and base cannot be empty for checkout -b")
	}
	_, err := RunGitCommand(ctx, "checkout", "-b", branch, base)
	if err != nil {
		return fmt.Errorf("failed to create branch %q from %q: %w", branch, base, err)
	}
	return nil
}
