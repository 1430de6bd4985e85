// Package types defines the shared data structures passed between the
// gitcmd, trunk, and tui packages.
package types

// LocalBranch holds raw Git data for a local branch.
type LocalBranch struct {
	Name       string
	CommitHash string
}

// BranchCategory classifies a local branch for cleanup purposes.
type BranchCategory string

const (
	// CategoryCurrent is the currently checked-out branch. Never deletable.
	CategoryCurrent BranchCategory = "Current"
	// CategoryProtected covers the trunk names and any branches protected
	// via configuration. Never deletable.
	CategoryProtected BranchCategory = "Protected"
	// CategoryDeletable branches may be removed by local cleanup.
	CategoryDeletable BranchCategory = "Deletable"
)

// AnalyzedBranch is a local branch annotated with its cleanup category.
type AnalyzedBranch struct {
	LocalBranch
	IsCurrent   bool
	IsProtected bool
	Category    BranchCategory
}

// DeleteResult holds the outcome of one delete attempt.
type DeleteResult struct {
	Name    string
	Success bool
	Message string // Success message or error details
	Cmd     string // The command attempted
}

// CleanOptions controls the scope of a cleanup run.
type CleanOptions struct {
	// Local enables deletion of local branches behind a confirmation gate.
	Local bool
	// Interactive selects local branches through the TUI instead of the
	// all-or-nothing confirmation prompt. Implies Local.
	Interactive bool
}

// CheckoutOptions controls checkout-or-create behavior.
type CheckoutOptions struct {
	// SkipFetch leaves the local trunk ref as-is instead of updating it first.
	SkipFetch bool
	// UseCurrent bases the target branch on the current branch rather than trunk.
	UseCurrent bool
}
