package trunk

import (
	"context"
	"fmt"
	"io"

	"github.com/bral/git-trunk-go/internal/config"
	"github.com/bral/git-trunk-go/internal/gitcmd"
	"github.com/bral/git-trunk-go/internal/ui"
)

// Update resolves the trunk branch and brings the local ref up to date with
// the remote. When the trunk is currently checked out the remote tip is
// merged into it (an honest merge, fast-forward where possible); otherwise
// the local branch pointer is moved directly, avoiding a checkout just to
// update a branch the user isn't on.
//
// The resolved trunk name is returned so callers can reuse it without
// probing the remote refs again.
func Update(ctx context.Context, out io.Writer, cfg config.Config) (string, error) {
	trunk, err := gitcmd.ResolveTrunk(ctx, cfg.Remote)
	if err != nil {
		return "", err
	}

	if err := gitcmd.FetchBranch(ctx, cfg.Remote, trunk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	current, err := gitcmd.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}

	remoteTrunk := cfg.Remote + "/" + trunk
	if current == trunk {
		if err := gitcmd.MergeBranch(ctx, remoteTrunk); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMergeFailed, err)
		}
	} else {
		if err := gitcmd.ForceSetBranch(ctx, trunk, remoteTrunk); err != nil {
			return "", fmt.Errorf("%w: %v", ErrForceUpdateFailed, err)
		}
	}

	ui.Successf(out, "Updated %s from %s", trunk, cfg.Remote)
	return trunk, nil
}

// Pull updates the trunk branch and then merges it into the current branch.
// When the trunk itself is checked out, Update already performed the merge
// and nothing further is needed.
func Pull(ctx context.Context, out io.Writer, cfg config.Config) error {
	trunk, err := Update(ctx, out, cfg)
	if err != nil {
		return err
	}

	current, err := gitcmd.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if current == trunk {
		return nil
	}
	if current == "" {
		return fmt.Errorf("cannot merge into current branch: HEAD is detached")
	}

	if err := gitcmd.MergeBranch(ctx, trunk); err != nil {
		return fmt.Errorf("%w: %v", ErrMergeFailed, err)
	}
	ui.Successf(out, "Merged %s into %s", trunk, current)
	return nil
}
