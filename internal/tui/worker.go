package tui

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/workspace"
)

const eventBuffer = 256

// Backend performs the operations behind each request. *workspace.Service
// is the production implementation.
type Backend interface {
	EnvInfo() workspace.EnvInfo
	LoadAll(ctx context.Context) (workspace.Snapshot, error)
	CheckoutRepo(url string) (git.Repo, error)
	CreateWorktree(repo git.Repo, name, branch, source string, started func(script string)) (workspace.Created, error)
	DeleteRepo(name string) error
	DeleteWorktree(repo git.Repo, name string, force bool) error
	LatestVersion() (string, bool)
	Upgrade() error
}

// Worker runs requests one at a time in submission order. Submit never
// blocks, so the UI can queue work at any point.
type Worker struct {
	backend Backend
	events  chan<- Event

	mu    sync.Mutex
	queue []Request
	wake  chan struct{}
}

func NewWorker(backend Backend, events chan<- Event) *Worker {
	return &Worker{
		backend: backend,
		events:  events,
		wake:    make(chan struct{}, 1),
	}
}

func (w *Worker) Submit(req Request) {
	w.mu.Lock()
	w.queue = append(w.queue, req)
	w.mu.Unlock()
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Worker) next() (Request, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.queue) == 0 {
		return nil, false
	}
	req := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	return req, true
}

// Run drains the queue until ctx is done. An operation in flight is not
// interrupted.
func (w *Worker) Run(ctx context.Context) {
	for {
		req, ok := w.next()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-w.wake:
				continue
			}
		}
		if !w.emit(ctx, w.handle(ctx, req)) {
			return
		}
	}
}

func (w *Worker) emit(ctx context.Context, ev Event) bool {
	select {
	case w.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Worker) handle(ctx context.Context, req Request) Event {
	log.Printf("worker: %T", req)
	switch r := req.(type) {
	case LoadEnvInfo:
		return EnvInfoLoaded{Info: w.backend.EnvInfo()}
	case LoadAll:
		snap, err := w.backend.LoadAll(ctx)
		return AllDataLoaded{ID: r.ID, Data: snap, Err: errString(err)}
	case CheckForUpdate:
		latest, _ := w.backend.LatestVersion()
		return UpdateCheckResult{Latest: latest}
	case RunUpgrade:
		return UpgradeResult{Err: errString(w.backend.Upgrade())}
	case CheckoutRepo:
		repo, err := w.backend.CheckoutRepo(r.URL)
		return CheckoutRepoResult{Repo: repo, Err: errString(err)}
	case CreateWorktree:
		created, err := w.backend.CreateWorktree(r.Repo, r.Name, r.Branch, r.SourceBranch, func(script string) {
			w.emit(ctx, WorktreeScriptStarted{Kind: workspace.ScriptPostCreate, Path: script})
		})
		return CreateWorktreeResult{
			RepoName:  r.Repo.Name,
			Worktree:  created.Worktree,
			Err:       errString(err),
			ScriptErr: errString(created.ScriptErr),
		}
	case DeleteRepo:
		return DeleteRepoResult{Name: r.Name, Err: errString(w.backend.DeleteRepo(r.Name))}
	case DeleteWorktree:
		err := w.backend.DeleteWorktree(r.Repo, r.Name, r.Force)
		return DeleteWorktreeResult{RepoName: r.Repo.Name, WorktreeName: r.Name, Err: errString(err)}
	}
	panic(fmt.Sprintf("tui: unhandled request %T", req))
}
