package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bral/git-trunk-go/internal/config"
	"github.com/bral/git-trunk-go/internal/gitcmd"
	"github.com/bral/git-trunk-go/internal/version"
)

const appVersion = "0.1.0"

// Global config variable to be used by the command logic
var appConfig config.Config

// appConfigPath is the --config value the configuration was loaded from
// (empty for the default location); configLoaded records whether
// PersistentPreRunE actually ran. Help and usage errors resolve before the
// hooks, leaving appConfig zero-valued.
var appConfigPath string
var configLoaded bool

var isDebug bool

// logDebugf prints only if the --debug flag is set.
func logDebugf(format string, a ...any) {
	if isDebug {
		fmt.Printf(format, a...)
	}
}

// requireRepo aborts a command early when not run inside a Git working tree.
func requireRepo(ctx context.Context) error {
	inRepo, err := gitcmd.IsInGitRepo(ctx)
	if err != nil {
		return fmt.Errorf("error checking Git repository status: %w", err)
	}
	if !inRepo {
		return errors.New("not inside a Git repository")
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:     "git-trunk",
	Version: appVersion,
	Short:   "git-trunk provides shortcuts relative to the trunk branch",
	Long: `git-trunk resolves whether a repository's trunk is named master or main
and offers shortcuts relative to it: updating the local trunk ref, pulling
trunk into the current branch, cleaning up stale remote-tracking branches
and tags, and checking out (or creating) branches off trunk.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		isDebug, _ = cmd.Flags().GetBool("debug")

		customConfigPath, _ := cmd.Flags().GetString("config")
		logDebugf("Custom config path flag: %q\n", customConfigPath)
		appConfigPath = customConfigPath

		var err error
		appConfig, err = config.LoadConfig(customConfigPath)
		if err != nil {
			if !errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Config not found, run first-time setup
			reader := bufio.NewReader(os.Stdin)
			appConfig, err = config.FirstRunSetup(reader, os.Stdout)
			if err != nil {
				return fmt.Errorf("failed during first-time setup: %w", err)
			}

			savedPath, saveErr := config.SaveConfig(appConfig, customConfigPath)
			if saveErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to save configuration to %q: %v\n", savedPath, saveErr)
			} else {
				fmt.Printf("Configuration saved to %q\n", savedPath)
			}
		}

		// Apply command-line overrides AFTER loading/setup
		if remoteOverride, _ := cmd.Flags().GetString("remote"); remoteOverride != "" {
			logDebugf("Overriding remote with flag value: %q\n", remoteOverride)
			appConfig.Remote = remoteOverride
		}

		if appConfig.ProtectedBranchMap == nil {
			appConfig.ProtectedBranchMap = make(map[string]bool)
			for _, branch := range appConfig.ProtectedBranches {
				appConfig.ProtectedBranchMap[branch] = true
			}
		}
		configLoaded = true
		return nil
	},
}

func main() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}

	// Best-effort update notice; never affects the exit status. Help and
	// usage paths never load the config, and checking against a zero-valued
	// config would persist it over the user's file.
	if !configLoaded {
		return
	}
	checkCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	if hasUpdate, latest, url, err := version.Check(checkCtx, appVersion, &appConfig, appConfigPath); err == nil && hasUpdate {
		version.ShowUpdateNotification(appVersion, latest, url)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging.")
	rootCmd.PersistentFlags().String("config", "",
		"Path to custom configuration file (default: ~/.config/git-trunk/config.toml).")
	rootCmd.PersistentFlags().StringP("remote", "r", "",
		"Override config: the remote to resolve the trunk branch against.")
}
