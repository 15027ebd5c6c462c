package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Commit struct {
	Author  string
	Message string
}

// HeadCommit returns author and subject of the worktree's HEAD.
func (g *Git) HeadCommit(dir string) (Commit, bool) {
	out, err := g.runAt(dir, "log", "-1", "--format=%an%n%s")
	if err != nil {
		return Commit{}, false
	}
	lines := strings.SplitN(out, "\n", 3)
	c := Commit{Author: strings.TrimSpace(lines[0])}
	if len(lines) > 1 {
		c.Message = strings.TrimSpace(lines[1])
	}
	return c, c.Author != "" || c.Message != ""
}

type Upstream struct {
	Ref     string
	Display string
}

func (g *Git) Upstream(dir string) (Upstream, bool) {
	out, err := g.runAt(dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil {
		return Upstream{}, false
	}
	ref := firstLine(out)
	if ref == "" {
		return Upstream{}, false
	}
	return Upstream{Ref: ref, Display: ShortRef(ref)}, true
}

// Divergence counts commits HEAD is ahead of and behind ref.
func (g *Git) Divergence(dir, ref string) (int, int, bool) {
	out, err := g.runAt(dir, "rev-list", "--left-right", "--count", "HEAD..."+ref)
	if err != nil {
		return 0, 0, false
	}
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return 0, 0, false
	}
	ahead, err1 := strconv.Atoi(fields[0])
	behind, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return ahead, behind, true
}

// SyncStatus describes a worktree's position relative to its upstream.
func (g *Git) SyncStatus(dir string) (Upstream, string) {
	up, ok := g.Upstream(dir)
	if !ok {
		return Upstream{}, "no upstream"
	}
	ahead, behind, known := g.Divergence(dir, up.Ref)
	return up, FormatSync(up.Display, ahead, behind, known)
}

func FormatSync(upstream string, ahead, behind int, known bool) string {
	switch {
	case !known:
		return "unknown vs " + upstream
	case ahead == 0 && behind == 0:
		return "up to date with " + upstream
	case behind == 0:
		return fmt.Sprintf("ahead of %s by %s", upstream, commits(ahead))
	case ahead == 0:
		return fmt.Sprintf("behind %s by %s", upstream, commits(behind))
	default:
		return fmt.Sprintf("diverged from %s (%s ahead, %s behind)", upstream, commits(ahead), commits(behind))
	}
}

func commits(n int) string {
	if n == 1 {
		return "1 commit"
	}
	return fmt.Sprintf("%d commits", n)
}

type ChangedFile struct {
	Path    string
	Added   int
	Removed int
}

// ChangedFiles lists uncommitted changes with line counts. Untracked files
// count every line as added.
func (g *Git) ChangedFiles(dir string) []ChangedFile {
	stats := g.numstat(dir)
	out, err := g.runAt(dir, "status", "--porcelain")
	if err != nil {
		return nil
	}

	var files []ChangedFile
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}
		code := line[:2]
		file := renamedPath(strings.TrimSpace(line[3:]))
		if file == "" {
			continue
		}
		cf := ChangedFile{Path: file}
		if s, ok := stats[file]; ok {
			cf.Added, cf.Removed = s[0], s[1]
			delete(stats, file)
		} else if code == "??" {
			cf.Added = countLines(filepath.Join(dir, file))
		}
		files = append(files, cf)
	}
	return files
}

func (g *Git) numstat(dir string) map[string][2]int {
	stats := map[string][2]int{}
	out, err := g.runAt(dir, "diff", "--numstat", "HEAD")
	if err != nil {
		return stats
	}
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		file := renamedPath(strings.TrimSpace(parts[2]))
		if file == "" {
			continue
		}
		added, _ := strconv.Atoi(parts[0])
		removed, _ := strconv.Atoi(parts[1])
		stats[file] = [2]int{added, removed}
	}
	return stats
}

func renamedPath(p string) string {
	if _, after, ok := strings.Cut(p, "->"); ok {
		return strings.TrimSpace(after)
	}
	return p
}

func countLines(path string) int {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return 0
	}
	n := strings.Count(string(data), "\n")
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}
