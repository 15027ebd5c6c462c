// Package names suggests default names for new worktrees.
package names

import (
	"strconv"
	"strings"
	"time"
)

type Mode string

const (
	ModeNone   Mode = ""
	ModeCities Mode = "cities"
)

const fallbackSeed uint64 = 0x9e3779b97f4a7c15

// ParseMode maps a config value to a naming mode; unknown values mean none.
func ParseMode(value string) Mode {
	if strings.EqualFold(strings.TrimSpace(value), string(ModeCities)) {
		return ModeCities
	}
	return ModeNone
}

// Suggest returns the pre-filled worktree name. Without a mode it is derived
// from the source branch and is empty when the source is the default.
func Suggest(source, defaultSource string, mode Mode, existing map[string]bool) string {
	if mode == ModeCities {
		return City(existing)
	}
	if source == defaultSource {
		return ""
	}
	if i := strings.LastIndex(source, "/"); i >= 0 {
		return source[i+1:]
	}
	return source
}

func City(existing map[string]bool) string {
	return pickCity(existing, uint64(time.Now().UnixNano()))
}

func pickCity(existing map[string]bool, seed uint64) string {
	state := seed
	var available []string
	for _, name := range cities {
		if !existing[name] {
			available = append(available, name)
		}
	}
	if len(available) > 0 {
		return available[nextIndex(&state, len(available))]
	}

	base := cities[nextIndex(&state, len(cities))]
	for suffix := 2; ; suffix++ {
		candidate := base + "-" + strconv.Itoa(suffix)
		if !existing[candidate] {
			return candidate
		}
	}
}

// nextIndex advances a xorshift64 state.
func nextIndex(state *uint64, n int) int {
	v := *state
	if v == 0 {
		v = fallbackSeed
	}
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*state = v
	return int(v % uint64(n))
}
