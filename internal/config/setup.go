package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FirstRunSetup prompts the user for initial configuration values when no
// config file is found. It takes an input reader and output writer for
// flexibility (e.g., testing). Empty inputs retain the defaults. The
// returned Config should be persisted by the caller.
func FirstRunSetup(reader *bufio.Reader, writer io.Writer) (Config, error) {
	_, _ = fmt.Fprintln(writer, "Configuration file not found. Let's set up some defaults.")
	cfg := DefaultConfig()

	// Prompt for the remote name
	_, _ = fmt.Fprintf(writer, "Enter the remote to resolve the trunk branch against [%s]: ", defaultRemote)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return cfg, fmt.Errorf("failed to read remote name: %w", err)
	}
	input = strings.TrimSpace(input)
	if input != "" {
		cfg.Remote = input
	} // else keep default

	// Prompt for protected branches
	_, _ = fmt.Fprint(writer, "Enter any extra branches to protect from local cleanup ")
	_, _ = fmt.Fprintln(writer, "(comma-separated, e.g., develop,release). master and main are always protected: ")
	input, err = reader.ReadString('\n')
	if err != nil && input == "" {
		return cfg, fmt.Errorf("failed to read protected branches: %w", err)
	}
	input = strings.TrimSpace(input)
	if input != "" {
		protected := strings.Split(input, ",")
		cfg.ProtectedBranches = make([]string, 0, len(protected))
		for _, p := range protected {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				cfg.ProtectedBranches = append(cfg.ProtectedBranches, trimmed)
			}
		}
	} // else keep default (empty list)

	// Populate the map based on the final list
	cfg.ProtectedBranchMap = make(map[string]bool)
	for _, branch := range cfg.ProtectedBranches {
		cfg.ProtectedBranchMap[branch] = true
	}

	_, _ = fmt.Fprintln(writer, "\nConfiguration setup complete.")

	return cfg, nil
}
