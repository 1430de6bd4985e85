// Package version handles version checks and update notifications.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bral/git-trunk-go/internal/config"
)

const (
	// GitHubReleaseURL is the URL for checking the latest release
	GitHubReleaseURL = "https://api.github.com/repos/bral/git-trunk-go/releases/latest"
	// DayInSeconds is the number of seconds in a day (for version check interval)
	DayInSeconds = 86400
)

// GitHubRelease represents the GitHub API response for releases
type GitHubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check checks if a new version is available, at most once per day. The
// check time and latest known version are persisted in the config file at
// configPath (empty for the default location) so repeated invocations stay
// cheap. Network failures are silent; an update notice is never worth
// breaking the tool for.
func Check(ctx context.Context, currentVersion string, cfg *config.Config, configPath string) (bool, string, string, error) {
	now := time.Now().Unix()

	// Check if it's been at least a day since last check
	if now-cfg.LastVersionCheck < DayInSeconds {
		// If we already know about an update, return that info
		if cfg.LatestKnownVersion != "" && isNewerVersion(currentVersion, cfg.LatestKnownVersion) {
			return true, cfg.LatestKnownVersion, GitHubReleaseURL, nil
		}
		return false, "", "", nil
	}

	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", GitHubReleaseURL, nil)
	if err != nil {
		return false, "", "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", "git-trunk-go/"+currentVersion)

	resp, err := client.Do(req)
	if err != nil {
		// Silently fail on network errors
		return false, "", "", nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// GitHub API error, silently fail
		return false, "", "", nil
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return false, "", "", nil
	}

	cfg.LastVersionCheck = now
	cfg.LatestKnownVersion = release.TagName

	if err := persistCheckResult(configPath, now, release.TagName); err != nil {
		// Just log the error, don't fail the check
		fmt.Fprintf(os.Stderr, "Warning: Failed to save version check info: %v\n", err)
	}

	if isNewerVersion(currentVersion, release.TagName) {
		return true, release.TagName, release.HTMLURL, nil
	}

	return false, "", "", nil
}

// persistCheckResult records the check bookkeeping in the config file the
// run loaded. The file is re-read first so only the two bookkeeping keys
// change; in-memory state such as a --remote override is never written
// back, and a missing file is left missing rather than created from
// defaults.
func persistCheckResult(configPath string, checkedAt int64, latest string) error {
	onDisk, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	onDisk.LastVersionCheck = checkedAt
	onDisk.LatestKnownVersion = latest
	_, err = config.SaveConfig(onDisk, configPath)
	return err
}

// isNewerVersion reports whether latest is a higher version than current.
// Versions are compared segment by segment as numbers (an optional leading
// 'v' is ignored), so 0.10.0 sorts after 0.9.0.
func isNewerVersion(current, latest string) bool {
	cur := strings.Split(strings.TrimPrefix(current, "v"), ".")
	lat := strings.Split(strings.TrimPrefix(latest, "v"), ".")

	for i := 0; i < len(cur) || i < len(lat); i++ {
		var c, l int
		if i < len(cur) {
			c, _ = strconv.Atoi(cur[i])
		}
		if i < len(lat) {
			l, _ = strconv.Atoi(lat[i])
		}
		if l != c {
			return l > c
		}
	}
	return false
}

// ShowUpdateNotification displays a notification about an available update.
func ShowUpdateNotification(currentVersion, latestVersion, releaseURL string) {
	out := os.Stdout

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintf(out, "A new version of git-trunk is available: %s (you have %s)\n", latestVersion, currentVersion)
	_, _ = fmt.Fprintln(out, "Update with: go install github.com/bral/git-trunk-go/cmd/git-trunk@"+latestVersion)
	_, _ = fmt.Fprintf(out, "Release details: %s\n", releaseURL)
	_, _ = fmt.Fprintln(out, "")
}
