package trunk

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bral/git-trunk-go/internal/analyze"
	"github.com/bral/git-trunk-go/internal/config"
	"github.com/bral/git-trunk-go/internal/gitcmd"
	"github.com/bral/git-trunk-go/internal/ui"
)

// confirmToken must be entered verbatim before local branches are deleted.
const confirmToken = "YES"

// Clean prunes stale repository state: remote-tracking branches (except the
// trunk names) and all local tags. With local=true it first offers to delete
// every non-protected local branch behind a literal-YES confirmation gate.
//
// Only the trunk update is a hard failure. Individual deletions are
// best-effort: failures are logged as warnings and the loop continues.
func Clean(ctx context.Context, in io.Reader, out io.Writer, cfg config.Config, local bool) error {
	if local {
		if err := cleanLocal(ctx, in, out, cfg); err != nil {
			return err
		}
	}

	if _, err := Update(ctx, out, cfg); err != nil {
		return err
	}

	if err := cleanRemoteTracking(ctx, out, cfg); err != nil {
		return err
	}
	cleanTags(ctx, out, cfg)

	ui.Successf(out, "Cleanup complete")
	return nil
}

// cleanLocal deletes every local branch except the trunk names, branches
// protected by configuration, and the currently checked-out branch. The user
// must type YES exactly; any other input skips local deletion while the rest
// of the cleanup still runs.
func cleanLocal(ctx context.Context, in io.Reader, out io.Writer, cfg config.Config) error {
	ui.Warnf(out, "This will permanently delete ALL local branches except master, main, "+
		"protected branches, and the current branch.")
	_, _ = fmt.Fprintf(out, "Type %s to continue: ", confirmToken)

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if strings.TrimRight(input, "\r\n") != confirmToken {
		ui.Infof(out, "Skipping local branch deletion; remote cleanup proceeds")
		return nil
	}

	current, err := gitcmd.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	branches, err := gitcmd.ListLocalBranches(ctx)
	if err != nil {
		return err
	}

	deletable := analyze.Deletable(analyze.Branches(branches, cfg, current))
	if len(deletable) == 0 {
		ui.Infof(out, "No local branches to delete")
		return nil
	}

	for _, result := range gitcmd.DeleteLocalBranches(ctx, deletable) {
		if result.Success {
			ui.Infof(out, "Deleted local branch %s", result.Name)
		} else {
			ui.Warnf(out, "Could not delete local branch %s: %s", result.Name, result.Message)
		}
	}
	return nil
}

// cleanRemoteTracking deletes every remote-tracking branch under the remote
// except the trunk names. Each deletion failure is non-fatal.
func cleanRemoteTracking(ctx context.Context, out io.Writer, cfg config.Config) error {
	branches, err := gitcmd.ListRemoteTrackingBranches(ctx, cfg.Remote)
	if err != nil {
		return err
	}

	for _, ref := range branches {
		name := strings.TrimPrefix(ref, cfg.Remote+"/")
		if gitcmd.IsTrunkName(name) {
			continue
		}
		if err := gitcmd.DeleteRemoteTrackingBranch(ctx, ref); err != nil {
			ui.Warnf(out, "Could not delete %s: %v", ref, err)
			continue
		}
		ui.Infof(out, "Deleted remote-tracking branch %s", ref)
	}
	return nil
}

// cleanTags deletes all local tags in bounded batches. Tag deletion is
// best-effort; a failure is reported but never aborts the cleanup.
func cleanTags(ctx context.Context, out io.Writer, cfg config.Config) {
	tags, err := gitcmd.ListTags(ctx)
	if err != nil {
		ui.Warnf(out, "Could not list tags: %v", err)
		return
	}
	if len(tags) == 0 {
		return
	}

	if err := gitcmd.DeleteTags(ctx, tags, cfg.TagBatchSize); err != nil {
		ui.Warnf(out, "Could not delete some tags: %v", err)
		return
	}
	ui.Infof(out, "Deleted %d tags", len(tags))
}
