package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bral/git-trunk-go/internal/trunk"
	"github.com/bral/git-trunk-go/internal/types"
)

var checkoutOpts types.CheckoutOptions

var checkoutCmd = &cobra.Command{
	Use:   "checkout <branch>",
	Short: "Switch to a branch, creating it off trunk if it doesn't exist",
	Long: `checkout switches to the named branch. A missing branch is created off
the freshly updated trunk; an existing one gets the trunk merged into it
first. With --use-current the current branch serves as the base instead of
trunk (after trunk is merged into it), and --skip-fetch leaves the local
trunk ref as-is instead of updating it from the remote.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := requireRepo(ctx); err != nil {
			return err
		}
		return trunk.CheckoutOrCreate(ctx, os.Stdout, appConfig, args[0], checkoutOpts)
	},
}

func init() {
	checkoutCmd.Flags().BoolVarP(&checkoutOpts.SkipFetch, "skip-fetch", "o", false,
		"Skip updating the trunk branch from the remote first.")
	checkoutCmd.Flags().BoolVarP(&checkoutOpts.UseCurrent, "use-current", "c", false,
		"Base the target branch on the current branch instead of trunk.")
	rootCmd.AddCommand(checkoutCmd)
}
