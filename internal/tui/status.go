package tui

import (
	"time"
	"unicode/utf8"
)

const (
	statusMin     = 2000 * time.Millisecond
	statusPerChar = 30 * time.Millisecond
	statusMax     = 8000 * time.Millisecond
)

type StatusTone int

const (
	StatusSuccess StatusTone = iota
	StatusError
)

type StatusMessage struct {
	Text     string
	Tone     StatusTone
	Deadline time.Time
}

func (s *StatusMessage) expired(now time.Time) bool {
	return !now.Before(s.Deadline)
}

// statusDuration gives longer messages more time on screen, up to a cap.
func statusDuration(text string) time.Duration {
	d := statusMin + statusPerChar*time.Duration(utf8.RuneCountInString(text))
	return min(d, statusMax)
}

type LoadingGroup int

const (
	LoadingEnvInfo LoadingGroup = iota
	LoadingRepos
	LoadingWorktrees
	LoadingAction
)

// LoadingPriority ranks messages competing for the footer.
type LoadingPriority int

const (
	PriorityBackground LoadingPriority = iota
	PriorityAction
)

type LoadingMessage struct {
	Group     LoadingGroup
	Text      string
	StartedAt time.Time
	Priority  LoadingPriority
}

// loadingSet holds at most one message per group.
type loadingSet []LoadingMessage

func (l *loadingSet) set(msg LoadingMessage) {
	l.clear(msg.Group)
	*l = append(*l, msg)
}

func (l *loadingSet) clear(group LoadingGroup) {
	kept := (*l)[:0]
	for _, m := range *l {
		if m.Group != group {
			kept = append(kept, m)
		}
	}
	*l = kept
}

func (l loadingSet) get(group LoadingGroup) (LoadingMessage, bool) {
	for _, m := range l {
		if m.Group == group {
			return m, true
		}
	}
	return LoadingMessage{}, false
}

// current is the message to display: highest priority, then the one that
// started first.
func (l loadingSet) current() (LoadingMessage, bool) {
	best := -1
	for i, m := range l {
		if best < 0 {
			best = i
			continue
		}
		b := l[best]
		if m.Priority > b.Priority || (m.Priority == b.Priority && m.StartedAt.Before(b.StartedAt)) {
			best = i
		}
	}
	if best < 0 {
		return LoadingMessage{}, false
	}
	return l[best], true
}
