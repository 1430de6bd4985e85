// Package analyze categorizes local branches for cleanup.
package analyze

import (
	"github.com/bral/git-trunk-go/internal/config"
	"github.com/bral/git-trunk-go/internal/gitcmd"
	"github.com/bral/git-trunk-go/internal/types"
)

// Branches categorizes local branches based on protection rules.
// A branch is protected when it carries one of the trunk names (both master
// and main, regardless of which one the remote uses), when it is listed in
// the configuration, or when it is currently checked out. Everything else is
// deletable.
func Branches(
	branches []types.LocalBranch, cfg config.Config, currentBranchName string,
) []types.AnalyzedBranch {
	analyzedBranches := make([]types.AnalyzedBranch, 0, len(branches))

	// The ProtectedBranchMap is assumed to be populated by LoadConfig.
	// Ensure it's not nil just in case.
	protectedMap := cfg.ProtectedBranchMap
	if protectedMap == nil {
		protectedMap = make(map[string]bool)
	}

	for _, branch := range branches {
		isCurrent := currentBranchName != "" && branch.Name == currentBranchName
		isProtected := gitcmd.IsTrunkName(branch.Name) || protectedMap[branch.Name]

		analyzed := types.AnalyzedBranch{
			LocalBranch: branch,
			IsCurrent:   isCurrent,
			IsProtected: isProtected,
		}

		switch {
		case isCurrent:
			analyzed.Category = types.CategoryCurrent
		case isProtected:
			analyzed.Category = types.CategoryProtected
		default:
			analyzed.Category = types.CategoryDeletable
		}

		analyzedBranches = append(analyzedBranches, analyzed)
	}

	return analyzedBranches
}

// Deletable filters an analyzed branch list down to the raw branches that
// local cleanup may remove.
func Deletable(branches []types.AnalyzedBranch) []types.LocalBranch {
	deletable := make([]types.LocalBranch, 0, len(branches))
	for _, branch := range branches {
		if branch.Category == types.CategoryDeletable {
			deletable = append(deletable, branch.LocalBranch)
		}
	}
	return deletable
}
