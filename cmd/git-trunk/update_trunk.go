package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bral/git-trunk-go/internal/trunk"
)

var updateTrunkCmd = &cobra.Command{
	Use:   "update-trunk",
	Short: "Fetch and update the local trunk branch",
	Long: `update-trunk resolves the trunk branch (master or main) on the remote,
fetches it with pruning, and brings the local trunk ref up to date. When the
trunk is checked out it is merged; otherwise the branch pointer is moved
directly without touching the working tree.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if err := requireRepo(ctx); err != nil {
			return err
		}
		_, err := trunk.Update(ctx, os.Stdout, appConfig)
		return err
	},
}

func init() {
	rootCmd.AddCommand(updateTrunkCmd)
}
