package services

import (
	"errors"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/google/uuid"
)

// ErrDuplicateSubmission means the same form token is in flight or was already accepted
var ErrDuplicateSubmission = errors.New("duplicate contact submission")

// ErrInvalidSubmissionToken means the form did not carry a usable token
var ErrInvalidSubmissionToken = errors.New("invalid submission token")

// maxSweepInterval bounds how often expired tokens are evicted
const maxSweepInterval = time.Minute

type tokenEntry struct {
	seenAt   time.Time
	accepted bool
	owner    *byte // distinguishes the caller that inserted the entry
}

// SubmissionGuard tracks contact form tokens so that a double click cannot
// issue two backend writes for the same rendered form. A token is held while
// its submission is in flight and, once accepted by the backend, for ttl.
type SubmissionGuard struct {
	tokens cmap.ConcurrentMap[string, tokenEntry]
	ttl    time.Duration
	done   chan struct{}
	once   sync.Once
}

// NewSubmissionGuard creates an empty guard and starts its sweeper.
// Call Stop to end it.
func NewSubmissionGuard(ttl time.Duration) *SubmissionGuard {
	g := &SubmissionGuard{
		tokens: cmap.New[tokenEntry](),
		ttl:    ttl,
		done:   make(chan struct{}),
	}
	go g.cleanup(min(ttl, maxSweepInterval))
	return g
}

// ContactGuard is the process wide guard used by the contact handler
var ContactGuard = NewSubmissionGuard(30 * time.Minute)

// NewSubmissionToken returns a fresh token for a rendered form
func NewSubmissionToken() string {
	return uuid.New().String()
}

// Acquire marks token as in flight. The returned release func must be called
// exactly once with the outcome: an accepted token stays blocked, a failed
// one is freed so the same form can be retried.
func (g *SubmissionGuard) Acquire(token string) (release func(accepted bool), err error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrInvalidSubmissionToken
	}
	now := time.Now()
	owner := new(byte)
	inserted := g.tokens.Upsert(token, tokenEntry{seenAt: now, owner: owner}, func(exist bool, old, fresh tokenEntry) tokenEntry {
		if exist && (!old.accepted || now.Sub(old.seenAt) < g.ttl) {
			return old
		}
		return fresh
	})
	if inserted.owner != owner {
		return nil, ErrDuplicateSubmission
	}

	return func(accepted bool) {
		if !accepted {
			g.tokens.Remove(token)
			return
		}
		g.tokens.Set(token, tokenEntry{seenAt: time.Now(), accepted: true})
	}, nil
}

// Stop ends the sweeper
func (g *SubmissionGuard) Stop() {
	g.once.Do(func() { close(g.done) })
}

func (g *SubmissionGuard) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-g.done:
			return
		case <-ticker.C:
			g.Sweep()
		}
	}
}

// Sweep drops accepted tokens older than the ttl
func (g *SubmissionGuard) Sweep() {
	now := time.Now()
	for item := range g.tokens.IterBuffered() {
		if item.Val.accepted && now.Sub(item.Val.seenAt) >= g.ttl {
			g.tokens.RemoveCb(item.Key, func(_ string, v tokenEntry, exists bool) bool {
				return exists && v.accepted && now.Sub(v.seenAt) >= g.ttl
			})
		}
	}
}

// Held returns the number of tokens currently blocked
func (g *SubmissionGuard) Held() int {
	return g.tokens.Count()
}
