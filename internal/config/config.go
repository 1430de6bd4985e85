// Package config handles loading, saving, and defining the application's
// configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrConfigNotFound is returned by LoadConfig when no config file is found.
var ErrConfigNotFound = errors.New("configuration file not found")

const (
	defaultConfigDir    = "git-trunk"
	defaultConfigFile   = "config.toml"
	defaultRemote       = "origin"
	defaultTagBatchSize = 100
)

// Config holds the application configuration settings.
// Tags correspond to the keys in the TOML configuration file.
type Config struct {
	Remote             string   `toml:"remote"`
	ProtectedBranches  []string `toml:"protected_branches"`
	TagBatchSize       int      `toml:"tag_batch_size"`
	LastVersionCheck   int64    `toml:"last_version_check"`   // Unix timestamp of last check
	LatestKnownVersion string   `toml:"latest_known_version"` // Latest version found during checks

	// Internal map for faster lookups, not loaded from TOML directly
	ProtectedBranchMap map[string]bool `toml:"-"`
}

// DefaultConfig returns a Config struct with default values. The trunk names
// master and main are always protected and are not part of this list.
func DefaultConfig() Config {
	return Config{
		Remote:             defaultRemote,
		ProtectedBranches:  []string{},
		TagBatchSize:       defaultTagBatchSize,
		LastVersionCheck:   0,
		LatestKnownVersion: "",
		ProtectedBranchMap: make(map[string]bool),
	}
}

// LoadConfig loads configuration from the specified path or the default
// location. If a custom path is provided and exists, it's used. Otherwise,
// it checks the default path. If neither exists, it returns default settings
// and ErrConfigNotFound. It also populates the ProtectedBranchMap.
func LoadConfig(customPath string) (Config, error) {
	cfg := DefaultConfig()
	configPath := ""

	if customPath != "" {
		// If a custom path is provided, use it exclusively.
		configPath = customPath
		if _, err := os.Stat(customPath); err != nil {
			if os.IsNotExist(err) {
				return cfg, ErrConfigNotFound
			}
			return cfg, fmt.Errorf("error checking custom config path %q: %w", customPath, err)
		}
	} else {
		// No custom path, check the default location.
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			// Cannot determine user config dir; the default path cannot be
			// checked, so behave as if no config exists.
			return cfg, ErrConfigNotFound
		}
		configPath = filepath.Join(userConfigDir, defaultConfigDir, defaultConfigFile)
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return cfg, ErrConfigNotFound
			}
			return cfg, fmt.Errorf("error checking default config path %q: %w", configPath, err)
		}
	}

	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config file %q: %w", configPath, err)
	}

	// Ensure defaults are applied if values are missing or invalid in the file.
	if cfg.Remote == "" {
		cfg.Remote = defaultRemote
	}
	if cfg.TagBatchSize <= 0 {
		cfg.TagBatchSize = defaultTagBatchSize
	}
	if cfg.ProtectedBranches == nil {
		cfg.ProtectedBranches = []string{}
	}

	cfg.ProtectedBranchMap = make(map[string]bool)
	for _, branch := range cfg.ProtectedBranches {
		cfg.ProtectedBranchMap[branch] = true
	}

	return cfg, nil
}

// SaveConfig saves the provided configuration to the specified path or the
// default location, creating directories as needed. It returns the path
// where the file was saved and any error encountered.
func SaveConfig(cfg Config, customPath string) (string, error) {
	savePath := ""

	if customPath != "" {
		savePath = customPath
	} else {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not determine user config directory: %w", err)
		}
		savePath = filepath.Join(userConfigDir, defaultConfigDir, defaultConfigFile)
	}

	dir := filepath.Dir(savePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return savePath, fmt.Errorf("could not create config directory %q: %w", dir, err)
	}

	file, err := os.Create(savePath)
	if err != nil {
		return savePath, fmt.Errorf("could not create config file %q: %w", savePath, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close config file %q: %w", savePath, closeErr)
		}
	}()

	encoder := toml.NewEncoder(file)
	// We don't want to save the internal map
	configToSave := struct {
		Remote             string   `toml:"remote"`
		ProtectedBranches  []string `toml:"protected_branches"`
		TagBatchSize       int      `toml:"tag_batch_size"`
		LastVersionCheck   int64    `toml:"last_version_check"`
		LatestKnownVersion string   `toml:"latest_known_version"`
	}{
		Remote:             cfg.Remote,
		ProtectedBranches:  cfg.ProtectedBranches,
		TagBatchSize:       cfg.TagBatchSize,
		LastVersionCheck:   cfg.LastVersionCheck,
		LatestKnownVersion: cfg.LatestKnownVersion,
	}

	if err := encoder.Encode(configToSave); err != nil {
		return savePath, fmt.Errorf("could not encode config to TOML file %q: %w", savePath, err)
	}

	return savePath, nil
}
