// Package update checks Homebrew for newer bbq releases and installs them.
package update

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/nicobailon/bbq/internal/shell"
)

const formula = "bbq"

var releaseVersionPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z.-]+))?$`)

type parsedVersion struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
}

type Brew struct {
	Cmd shell.Commander
}

// IsHomebrewInstall reports whether the running binary lives in the
// Homebrew cellar.
func IsHomebrewInstall() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	return strings.Contains(exe, "/Cellar/"+formula+"/")
}

type outdated struct {
	Formulae []struct {
		Name           string `json:"name"`
		CurrentVersion string `json:"current_version"`
	} `json:"formulae"`
}

// Latest returns the newer version Homebrew knows about, if bbq is outdated.
func (b *Brew) Latest() (string, bool) {
	out, err := b.Cmd.Run("brew", "outdated", "--json=v2")
	if err != nil {
		return "", false
	}
	return parseOutdated(out)
}

func parseOutdated(data []byte) (string, bool) {
	var report outdated
	if err := json.Unmarshal(data, &report); err != nil {
		return "", false
	}
	for _, f := range report.Formulae {
		if f.Name != formula {
			continue
		}
		latest := strings.TrimSpace(f.CurrentVersion)
		return latest, latest != ""
	}
	return "", false
}

func (b *Brew) Upgrade() error {
	_, err := b.Cmd.Run("brew", "upgrade", formula)
	if err == nil {
		return nil
	}
	if msg := shell.Stderr(err); msg != "" {
		return errors.New(msg)
	}
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return errors.New("brew upgrade failed")
	}
	return fmt.Errorf("Failed to run brew: %v", err)
}

// IsNewer compares two release versions. Unparseable versions count as newer
// whenever they differ.
func IsNewer(latest, current string) bool {
	l, okLatest := parseReleaseVersion(latest)
	c, okCurrent := parseReleaseVersion(current)
	if !okLatest || !okCurrent {
		return strings.TrimSpace(latest) != strings.TrimSpace(current)
	}
	return compareReleaseVersions(l, c) > 0
}

func parseReleaseVersion(version string) (parsedVersion, bool) {
	match := releaseVersionPattern.FindStringSubmatch(strings.TrimSpace(version))
	if len(match) != 5 {
		return parsedVersion{}, false
	}
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return parsedVersion{}, false
	}
	minor, err := strconv.Atoi(match[2])
	if err != nil {
		return parsedVersion{}, false
	}
	patch, err := strconv.Atoi(match[3])
	if err != nil {
		return parsedVersion{}, false
	}
	return parsedVersion{Major: major, Minor: minor, Patch: patch, Prerelease: match[4]}, true
}

func compareReleaseVersions(a, b parsedVersion) int {
	for _, pair := range [][2]int{{a.Major, b.Major}, {a.Minor, b.Minor}, {a.Patch, b.Patch}} {
		if pair[0] != pair[1] {
			if pair[0] > pair[1] {
				return 1
			}
			return -1
		}
	}
	switch {
	case a.Prerelease == b.Prerelease:
		return 0
	case a.Prerelease == "":
		return 1
	case b.Prerelease == "":
		return -1
	case a.Prerelease > b.Prerelease:
		return 1
	default:
		return -1
	}
}
