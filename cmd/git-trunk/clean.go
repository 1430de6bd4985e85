package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bral/git-trunk-go/internal/analyze"
	"github.com/bral/git-trunk-go/internal/gitcmd"
	"github.com/bral/git-trunk-go/internal/trunk"
	"github.com/bral/git-trunk-go/internal/tui"
	"github.com/bral/git-trunk-go/internal/types"
)

var cleanOpts types.CleanOptions

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete stale remote-tracking branches and all tags",
	Long: `clean updates the trunk branch with pruning, deletes every
remote-tracking branch except the trunk names, and deletes all local tags.

With --local it first offers to delete all non-protected local branches,
gated behind a literal YES confirmation. With --interactive the local
branches are picked in a terminal UI instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if err := requireRepo(ctx); err != nil {
			return err
		}

		if cleanOpts.Interactive {
			if err := runInteractiveLocalClean(ctx); err != nil {
				return err
			}
			// Local deletion already handled; run the remote cleanup only.
			return trunk.Clean(ctx, os.Stdin, os.Stdout, appConfig, false)
		}

		return trunk.Clean(ctx, os.Stdin, os.Stdout, appConfig, cleanOpts.Local)
	},
}

// runInteractiveLocalClean launches the branch selection TUI. Deletions are
// executed from within the TUI; protected and current branches are shown
// but cannot be selected.
func runInteractiveLocalClean(ctx context.Context) error {
	current, err := gitcmd.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	branches, err := gitcmd.ListLocalBranches(ctx)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		fmt.Println("No local branches found.")
		return nil
	}

	analyzed := analyze.Branches(branches, appConfig, current)
	p := tea.NewProgram(tui.InitialModel(ctx, analyzed))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanOpts.Local, "local", "l", false,
		"Also delete all non-protected local branches (asks for confirmation).")
	cleanCmd.Flags().BoolVarP(&cleanOpts.Interactive, "interactive", "i", false,
		"Select local branches to delete in a terminal UI. Implies --local.")
	rootCmd.AddCommand(cleanCmd)
}
