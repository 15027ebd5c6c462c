// Package validate checks user-typed worktree and branch names.
package validate

import (
	"errors"
	"strings"
	"unicode"
)

func WorktreeName(name string) error {
	if name == "" {
		return errors.New("Worktree name required")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.New("Worktree name cannot contain spaces")
	}
	for _, ch := range name {
		if !isNameChar(ch) {
			return errors.New("Worktree name can only use letters, numbers, '-', '_', or '.'")
		}
	}
	return nil
}

func BranchName(name string) error {
	if name == "" {
		return errors.New("Branch name required")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.New("Branch name cannot contain spaces")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return errors.New("Branch name cannot start or end with '/'")
	}
	for _, ch := range name {
		if !isNameChar(ch) && ch != '/' {
			return errors.New("Branch name can only use letters, numbers, '-', '_', '.', or '/'")
		}
	}
	return nil
}

func isNameChar(ch rune) bool {
	return ch < unicode.MaxASCII && (unicode.IsLetter(ch) || unicode.IsDigit(ch)) ||
		ch == '-' || ch == '_' || ch == '.'
}
