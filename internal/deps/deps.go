package deps

import (
	"os/exec"
	"runtime"
	"strings"
	"unicode"

	"github.com/nicobailon/bbq/internal/shell"
)

type Dependency struct {
	Name       string
	Command    string
	Required   bool
	InstallCmd map[string]string
}

type MissingDep struct {
	Dependency
}

var dependencies = []Dependency{
	{
		Name:     "git",
		Command:  "git",
		Required: true,
		InstallCmd: map[string]string{
			"darwin": "brew install git",
			"linux":  "sudo apt install git",
		},
	},
	{
		Name:    "gh",
		Command: "gh",
		InstallCmd: map[string]string{
			"darwin": "brew install gh",
			"linux":  "sudo apt install gh",
		},
	},
}

// Check returns the required tools that are not on PATH.
func Check() []MissingDep {
	missing := []MissingDep{}
	for _, dep := range dependencies {
		if !dep.Required {
			continue
		}
		if _, err := exec.LookPath(dep.Command); err != nil {
			missing = append(missing, MissingDep{dep})
		}
	}
	return missing
}

func InstallHint(dep MissingDep) string {
	if cmd, ok := dep.InstallCmd[runtime.GOOS]; ok {
		return cmd
	}
	return "install " + dep.Name + " via your package manager"
}

// Version runs "command --version" and extracts the version number.
func Version(cmd shell.Commander, command string) (string, bool) {
	out, err := cmd.Run(command, "--version")
	if err != nil {
		return "", false
	}
	return ExtractVersion(string(out))
}

// ExtractVersion finds the first token that looks like a version number,
// e.g. "2.43.0" in "git version 2.43.0".
func ExtractVersion(output string) (string, bool) {
	for _, raw := range strings.Fields(output) {
		token := strings.TrimLeft(strings.Trim(raw, ",;"), "v")
		if strings.IndexFunc(token, unicode.IsDigit) < 0 {
			continue
		}
		end := strings.IndexFunc(token, func(r rune) bool {
			return !(r >= '0' && r <= '9' || r == '.' || r == '-')
		})
		if end >= 0 {
			token = token[:end]
		}
		if strings.IndexFunc(token, unicode.IsDigit) >= 0 {
			return token, true
		}
	}
	return "", false
}
