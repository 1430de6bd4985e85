// Package trunk implements the trunk-relative workflows behind each CLI
// command: updating the trunk branch, cleaning up stale refs, and
// checkout-or-create.
package trunk

import "errors"

// Sentinel errors for the fatal failure modes. Callers branch on them with
// errors.Is; the wrapped message carries the underlying git diagnostic.
var (
	// ErrFetchFailed indicates the fetch of the trunk branch failed.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrMergeFailed indicates a merge invocation failed (conflicts, dirty
	// tree, unrelated histories).
	ErrMergeFailed = errors.New("merge failed")
	// ErrForceUpdateFailed indicates the local trunk pointer could not be
	// moved to the remote tip.
	ErrForceUpdateFailed = errors.New("force update failed")
)
