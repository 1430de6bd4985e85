package gitcmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bral/git-trunk-go/internal/types"
)

const (
	// Format: branchname<NULL>objectname<NEWLINE>
	// Using the NULL character (\x00) as the field separator keeps branch
	// names containing unusual characters parseable.
	localBranchFormat = "%(refname:short)%00%(objectname)"
	fieldSeparator    = "\x00"
)

// RefExists reports whether the given fully-qualified ref resolves.
// A failing rev-parse is the expected "does not exist" outcome, not an error.
func RefExists(ctx context.Context, ref string) bool {
	_, err := RunGitCommand(ctx, "rev-parse", "--verify", "--quiet", ref)
	return err == nil
}

// LocalBranchExists reports whether a local branch with the given name exists.
func LocalBranchExists(ctx context.Context, name string) bool {
	return RefExists(ctx, "refs/heads/"+name)
}

// CurrentBranch returns the name of the currently checked-out branch.
// A detached HEAD yields an empty string and no error.
func CurrentBranch(ctx context.Context) (string, error) {
	output, err := RunGitCommand(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to determine current branch: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// ListLocalBranches fetches the name and tip hash of every local branch
// using git for-each-ref and parses the output into LocalBranch structs.
func ListLocalBranches(ctx context.Context) ([]types.LocalBranch, error) {
	args := []string{
		"for-each-ref",
		"refs/heads/", // Limit to local branches
		"--format=" + localBranchFormat,
	}

	output, err := RunGitCommand(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute git for-each-ref: %w", err)
	}

	output = strings.TrimSpace(output)
	if output == "" {
		// No local branches at all (fresh repository).
		return []types.LocalBranch{}, nil
	}

	var branches []types.LocalBranch
	for _, record := range strings.Split(output, "\n") {
		if record == "" {
			continue
		}
		fields := strings.Split(record, fieldSeparator)
		if len(fields) != 2 {
			// Unexpected output format from git; skip the malformed record.
			continue
		}
		branches = append(branches, types.LocalBranch{
			Name:       fields[0],
			CommitHash: fields[1],
		})
	}

	return branches, nil
}

// ListRemoteTrackingBranches returns the short names (e.g. "origin/feature/x")
// of all remote-tracking branches under the given remote. The symbolic
// <remote>/HEAD entry is excluded.
func ListRemoteTrackingBranches(ctx context.Context, remote string) ([]string, error) {
	if remote == "" {
		return nil, fmt.Errorf("remote name cannot be empty")
	}
	args := []string{
		"for-each-ref",
		"refs/remotes/" + remote + "/",
		"--format=%(refname:short)",
	}

	output, err := RunGitCommand(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote-tracking branches for %q: %w", remote, err)
	}

	var branches []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || name == remote+"/HEAD" {
			continue
		}
		branches = append(branches, name)
	}

	return branches, nil
}

// ListTags returns the names of all local tags.
func ListTags(ctx context.Context) ([]string, error) {
	output, err := RunGitCommand(ctx, "tag", "--list")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	var tags []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		name := strings.TrimSpace(line)
		if name != "" {
			tags = append(tags, name)
		}
	}

	return tags, nil
}

// IsInGitRepo checks if the current directory is within a Git working tree.
func IsInGitRepo(ctx context.Context) (bool, error) {
	output, err := RunGitCommand(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		// The command failing usually just means we're not in a repo,
		// which is an expected condition rather than an error.
		return false, nil
	}
	return output == "true", nil
}
