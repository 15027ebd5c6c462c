package tui

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nicobailon/bbq/internal/paths"
)

const watchDebounce = 250 * time.Millisecond

// Watcher reports changes to the repo and worktree roots as FsChanged
// events. Only changes that can alter the listing count: a repo directory
// appearing or vanishing, its refs, HEAD or packed-refs, and direct children
// of the worktrees root.
type Watcher struct {
	repos     string
	worktrees string
	events    chan<- Event
	debounce  time.Duration
	last      time.Time
}

func NewWatcher(layout paths.Layout, events chan<- Event) *Watcher {
	return &Watcher{
		repos:     filepath.Clean(layout.Repos),
		worktrees: filepath.Clean(layout.Worktrees),
		events:    events,
		debounce:  watchDebounce,
	}
}

// Run watches until ctx is done. The repos root is covered down to each
// repo's refs tree; objects are never watched.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.repos); err != nil {
		return err
	}
	entries, _ := os.ReadDir(w.repos)
	for _, entry := range entries {
		if entry.IsDir() {
			w.addRepo(fw, filepath.Join(w.repos, entry.Name()))
		}
	}
	if err := fw.Add(w.worktrees); err != nil {
		log.Printf("watcher: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher: %v", err)
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				w.track(fw, ev.Name)
			}
			if w.relevant(ev.Name) && w.admit(time.Now()) {
				w.notify()
			}
		}
	}
}

func (w *Watcher) addRepo(fw *fsnotify.Watcher, dir string) {
	if err := fw.Add(dir); err != nil {
		log.Printf("watcher: %v", err)
		return
	}
	addTree(fw, filepath.Join(dir, "refs"))
}

func addTree(fw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			log.Printf("watcher: %v", err)
		}
		return nil
	})
}

// track starts watching directories created inside the watched part of the
// repos root.
func (w *Watcher) track(fw *fsnotify.Watcher, path string) {
	parts, ok := w.repoParts(path)
	if !ok {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	switch {
	case len(parts) == 1:
		w.addRepo(fw, path)
	case parts[1] == "refs":
		addTree(fw, path)
	}
}

func (w *Watcher) relevant(path string) bool {
	path = filepath.Clean(path)
	if rel, ok := within(w.worktrees, path); ok {
		return rel != "." && !strings.Contains(rel, string(filepath.Separator))
	}
	parts, ok := w.repoParts(path)
	if !ok {
		return false
	}
	if len(parts) == 1 {
		return true
	}
	switch parts[1] {
	case "refs", "HEAD", "packed-refs":
		return true
	}
	return false
}

// repoParts splits a path below the repos root into its components.
func (w *Watcher) repoParts(path string) ([]string, bool) {
	rel, ok := within(w.repos, filepath.Clean(path))
	if !ok || rel == "." {
		return nil, false
	}
	var parts []string
	for _, p := range strings.Split(rel, string(filepath.Separator)) {
		if p != "" && p != "." {
			parts = append(parts, p)
		}
	}
	return parts, len(parts) > 0
}

func within(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// admit applies the debounce window: once an event is let through, relevant
// events in the following window are dropped.
func (w *Watcher) admit(now time.Time) bool {
	if !w.last.IsZero() && now.Sub(w.last) < w.debounce {
		return false
	}
	w.last = now
	return true
}

func (w *Watcher) notify() {
	select {
	case w.events <- FsChanged{}:
	default:
		log.Printf("watcher: event queue full, change dropped")
	}
}
