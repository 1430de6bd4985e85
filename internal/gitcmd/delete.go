package gitcmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bral/git-trunk-go/internal/types"
)

// DefaultTagBatchSize bounds the number of tag names passed to a single
// 'git tag -d' invocation so the command line stays well under OS limits.
const DefaultTagBatchSize = 100

// DeleteLocalBranches force-deletes the given local branches one at a time.
// Each deletion is attempted regardless of earlier failures; the outcome of
// every attempt is reported in the returned slice.
func DeleteLocalBranches(ctx context.Context, branches []types.LocalBranch) []types.DeleteResult {
	results := make([]types.DeleteResult, 0, len(branches))

	for _, branch := range branches {
		result := types.DeleteResult{
			Name: branch.Name,
			Cmd:  fmt.Sprintf("git branch -D %s", branch.Name),
		}

		_, err := RunGitCommand(ctx, "branch", "-D", branch.Name)
		if err != nil {
			result.Success = false
			result.Message = fmt.Sprintf("Failed: %s", extractStderr(err))
		} else {
			result.Success = true
			result.Message = "Successfully deleted"
		}
		results = append(results, result)
	}

	return results
}

// DeleteRemoteTrackingBranch removes a single remote-tracking ref (e.g.
// "origin/feature/x") from the local repository. The remote itself is never
// contacted.
func DeleteRemoteTrackingBranch(ctx context.Context, ref string) error {
	if ref == "" {
		return fmt.Errorf("ref cannot be empty for branch -rd")
	}
	_, err := RunGitCommand(ctx, "branch", "-rd", ref)
	if err != nil {
		return fmt.Errorf("failed to delete remote-tracking branch %q: %w", ref, err)
	}
	return nil
}

// DeleteTags removes the given local tags in batches of at most batchSize
// names per 'git tag -d' invocation. All batches are attempted even when an
// earlier one fails; the last error encountered is returned.
func DeleteTags(ctx context.Context, tags []string, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultTagBatchSize
	}

	var lastErr error
	for start := 0; start < len(tags); start += batchSize {
		end := start + batchSize
		if end > len(tags) {
			end = len(tags)
		}

		args := append([]string{"tag", "-d"}, tags[start:end]...)
		if _, err := RunGitCommand(ctx, args...); err != nil {
			lastErr = fmt.Errorf("failed to delete tag batch starting at %q: %w", tags[start], err)
		}
	}

	return lastErr
}

// extractStderr pulls the stderr portion out of a runner error message,
// which is more useful to show than the full wrapped chain.
func extractStderr(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "stderr:") {
		parts := strings.SplitN(msg, "stderr:", 2)
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1])
		}
	}
	return msg
}
