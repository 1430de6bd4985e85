package gitcmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bral/git-trunk-go/internal/types"
)

func TestCurrentBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("On A Branch", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"branch", "--show-current"}, output: "feature/x"},
		})
		defer teardown()

		branch, err := CurrentBranch(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if branch != "feature/x" {
			t.Errorf("Expected branch %q, got %q", "feature/x", branch)
		}
	})

	t.Run("Detached HEAD", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"branch", "--show-current"}, output: ""},
		})
		defer teardown()

		branch, err := CurrentBranch(ctx)
		if err != nil {
			t.Fatalf("Expected no error for detached HEAD, got %v", err)
		}
		if branch != "" {
			t.Errorf("Expected empty branch name, got %q", branch)
		}
	})

	t.Run("Git Command Error", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"branch", "--show-current"}, err: errors.New("simulated git error")},
		})
		defer teardown()

		_, err := CurrentBranch(ctx)
		if err == nil {
			t.Fatal("Expected an error, got nil")
		}
	})
}

func TestRefExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"rev-parse", "--verify", "--quiet", "refs/heads/feature-x"}, output: "abc123"},
		})
		defer teardown()

		if !RefExists(ctx, "refs/heads/feature-x") {
			t.Error("Expected ref to exist")
		}
	})

	t.Run("Does Not Exist", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"rev-parse", "--verify", "--quiet", "refs/heads/feature-x"},
				err: errors.New("fatal: Needed a single revision")},
		})
		defer teardown()

		if RefExists(ctx, "refs/heads/feature-x") {
			t.Error("Expected ref to not exist")
		}
	})
}

func TestListLocalBranches(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Parsing", func(t *testing.T) {
		sampleOutput := "main\x00hash1\n" +
			"feature/a\x00hash2\n" +
			"hotfix/b\x00hash3"

		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"for-each-ref", "refs/heads/", "--format=%(refname:short)%00%(objectname)"},
				output: sampleOutput},
		})
		defer teardown()

		branches, err := ListLocalBranches(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		expected := []types.LocalBranch{
			{Name: "main", CommitHash: "hash1"},
			{Name: "feature/a", CommitHash: "hash2"},
			{Name: "hotfix/b", CommitHash: "hash3"},
		}
		if diff := cmp.Diff(expected, branches); diff != "" {
			t.Errorf("Unexpected branches (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty Repository", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"for-each-ref", "refs/heads/", "--format=%(refname:short)%00%(objectname)"},
				output: ""},
		})
		defer teardown()

		branches, err := ListLocalBranches(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(branches) != 0 {
			t.Errorf("Expected no branches, got %v", branches)
		}
	})

	t.Run("Malformed Record Skipped", func(t *testing.T) {
		sampleOutput := "main\x00hash1\nbroken-record-without-separator\nfeature/a\x00hash2"

		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"for-each-ref", "refs/heads/", "--format=%(refname:short)%00%(objectname)"},
				output: sampleOutput},
		})
		defer teardown()

		branches, err := ListLocalBranches(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(branches) != 2 {
			t.Errorf("Expected 2 branches after skipping malformed record, got %d", len(branches))
		}
	})
}

func TestListRemoteTrackingBranches(t *testing.T) {
	ctx := context.Background()

	t.Run("Skips HEAD", func(t *testing.T) {
		sampleOutput := "origin/HEAD\norigin/main\norigin/feature/a\n"

		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"for-each-ref", "refs/remotes/origin/", "--format=%(refname:short)"},
				output: sampleOutput},
		})
		defer teardown()

		branches, err := ListRemoteTrackingBranches(ctx, "origin")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		expected := []string{"origin/main", "origin/feature/a"}
		if diff := cmp.Diff(expected, branches); diff != "" {
			t.Errorf("Unexpected branches (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty Remote Name", func(t *testing.T) {
		teardown := setupMockRunner(t, func(_ context.Context, args ...string) (string, error) {
			t.Errorf("Runner should not be called, called with: %v", args)
			return "", errors.New("runner called unexpectedly")
		})
		defer teardown()

		_, err := ListRemoteTrackingBranches(ctx, "")
		if err == nil {
			t.Fatal("Expected an error for empty remote name, got nil")
		}
	})
}

func TestListTags(t *testing.T) {
	ctx := context.Background()

	t.Run("Some Tags", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"tag", "--list"}, output: "v1.0.0\nv1.1.0\nrelease-2024\n"},
		})
		defer teardown()

		tags, err := ListTags(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		expected := []string{"v1.0.0", "v1.1.0", "release-2024"}
		if diff := cmp.Diff(expected, tags); diff != "" {
			t.Errorf("Unexpected tags (-want +got):\n%s", diff)
		}
	})

	t.Run("No Tags", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"tag", "--list"}, output: ""},
		})
		defer teardown()

		tags, err := ListTags(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(tags) != 0 {
			t.Errorf("Expected no tags, got %v", tags)
		}
	})
}

func TestIsInGitRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Inside Work Tree", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"rev-parse", "--is-inside-work-tree"}, output: "true"},
		})
		defer teardown()

		inRepo, err := IsInGitRepo(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !inRepo {
			t.Error("Expected to be inside a git repo")
		}
	})

	t.Run("Not A Repository", func(t *testing.T) {
		teardown := setupExpectations(t, []commandExpectation{
			{args: []string{"rev-parse", "--is-inside-work-tree"},
				err: errors.New("fatal: not a git repository")},
		})
		defer teardown()

		inRepo, err := IsInGitRepo(ctx)
		if err != nil {
			t.Fatalf("Expected no error for non-repo, got %v", err)
		}
		if inRepo {
			t.Error("Expected to not be inside a git repo")
		}
	})
}

// Guards against the error message losing the branch name, which the CLI
// surfaces directly to the user.
func TestCurrentBranchErrorMessage(t *testing.T) {
	teardown := setupExpectations(t, []commandExpectation{
		{args: []string{"branch", "--show-current"}, err: errors.New("simulated git error")},
	})
	defer teardown()

	_, err := CurrentBranch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "current branch") {
		t.Errorf("Expected error mentioning current branch, got: %v", err)
	}
}
