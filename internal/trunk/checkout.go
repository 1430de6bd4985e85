package trunk

import (
	"context"
	"fmt"
	"io"

	"github.com/bral/git-trunk-go/internal/config"
	"github.com/bral/git-trunk-go/internal/gitcmd"
	"github.com/bral/git-trunk-go/internal/types"
	"github.com/bral/git-trunk-go/internal/ui"
)

// CheckoutOrCreate switches to the target branch, creating it if necessary.
//
// The base for the branch is the trunk, or the current branch when
// opts.UseCurrent is set (the trunk is merged into the current branch first
// so new work starts from an up-to-date base). Existing targets are not
// recreated; instead the base is merged into them before the checkout.
// Unless opts.SkipFetch is set the trunk is updated from the remote first.
func CheckoutOrCreate(
	ctx context.Context, out io.Writer, cfg config.Config,
	target string, opts types.CheckoutOptions,
) error {
	if target == "" {
		return fmt.Errorf("branch name cannot be empty")
	}

	var trunk string
	var err error
	if opts.SkipFetch {
		ui.Infof(out, "Skipping fetch")
		trunk, err = gitcmd.ResolveTrunk(ctx, cfg.Remote)
	} else {
		trunk, err = Update(ctx, out, cfg)
	}
	if err != nil {
		return err
	}

	base := trunk
	if opts.UseCurrent {
		current, err := gitcmd.CurrentBranch(ctx)
		if err != nil {
			return err
		}
		if current == "" {
			return fmt.Errorf("cannot use current branch as base: HEAD is detached")
		}
		// Bring the base up to date with trunk before branching off it.
		if current != trunk {
			if err := gitcmd.MergeBranch(ctx, trunk); err != nil {
				return fmt.Errorf("%w: %v", ErrMergeFailed, err)
			}
		}
		base = current
	}

	if gitcmd.LocalBranchExists(ctx, target) {
		// Target exists: integrate the base into it, then switch.
		if err := gitcmd.Checkout(ctx, target); err != nil {
			return err
		}
		if target == base {
			ui.Successf(out, "Switched to %s", target)
			return nil
		}
		if err := gitcmd.MergeBranch(ctx, base); err != nil {
			return fmt.Errorf("%w: %v", ErrMergeFailed, err)
		}
		ui.Successf(out, "Merged %s into %s", base, target)
		return nil
	}

	if err := gitcmd.CreateAndCheckout(ctx, target, base); err != nil {
		return err
	}
	ui.Successf(out, "Created %s off %s", target, base)
	return nil
}
