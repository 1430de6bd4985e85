package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bral/git-trunk-go/internal/trunk"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Update the trunk branch and merge it into the current branch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if err := requireRepo(ctx); err != nil {
			return err
		}
		return trunk.Pull(ctx, os.Stdout, appConfig)
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
