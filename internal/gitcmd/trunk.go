// Package gitcmd provides functions for interacting with the git
// command-line tool.
package gitcmd

import (
	"context"
	"errors"
	"fmt"
)

// Trunk branch names recognized on the remote, probed in this order.
// master takes precedence when both exist.
const (
	TrunkMaster = "master"
	TrunkMain   = "main"
)

// ErrNoTrunkFound is returned by ResolveTrunk when the remote has neither a
// master nor a main branch.
var ErrNoTrunkFound = errors.New("no master or main branch found on remote")

// IsTrunkName reports whether name is one of the conventional trunk names.
// Both names are shielded from cleanup regardless of which one the remote
// actually uses.
func IsTrunkName(name string) bool {
	return name == TrunkMaster || name == TrunkMain
}

// ResolveTrunk determines the repository's trunk branch by probing the
// remote-tracking refs for master, then main. The result is never cached;
// each invocation queries the repository afresh.
func ResolveTrunk(ctx context.Context, remote string) (string, error) {
	if remote == "" {
		return "", fmt.Errorf("remote name cannot be empty")
	}
	for _, name := range []string{TrunkMaster, TrunkMain} {
		if RefExists(ctx, "refs/remotes/"+remote+"/"+name) {
			return name, nil
		}
	}
	return "", ErrNoTrunkFound
}
