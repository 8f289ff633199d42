// Package lockout tracks consecutive failed login attempts per username and
// enforces a cooldown window once the failure threshold is reached.
//
// State per username moves between three situations: open (failures below
// the threshold), locked (threshold reached and the cooldown has not
// elapsed), and eligible-after-cooldown (threshold reached but the cooldown
// has passed; the next eligibility check resets the counter).
//
// State is process-local and intentionally not persisted: a restart clears
// all counters and active locks.
package lockout

import (
	"fmt"
	"sync"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultCooldown    = 5 * time.Minute
)

// LockedError reports that an account is locked and when it may be retried.
type LockedError struct {
	RetryAfter time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked, retry in %s", e.RetryAfter.Round(time.Second))
}

type state struct {
	failedCount int
	lockedUntil time.Time
}

// Tracker counts failed attempts per username. All methods take the current
// time from the caller so cooldown behavior is deterministic under test.
// Tracker is safe for concurrent use, but the check-then-act sequence across
// CheckEligible and RecordFailure/RecordSuccess must be serialized by the
// caller (the authentication controller holds a mutex around login).
type Tracker struct {
	mu          sync.Mutex
	maxAttempts int
	cooldown    time.Duration
	states      map[string]*state
}

func NewTracker(maxAttempts int, cooldown time.Duration) *Tracker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Tracker{
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
		states:      make(map[string]*state),
	}
}

// CheckEligible returns a *LockedError while the username is locked. If the
// cooldown has elapsed it resets the failure counter and reports eligible.
func (t *Tracker) CheckEligible(username string, now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.states[username]
	if !ok || st.failedCount < t.maxAttempts {
		return nil
	}

	if now.Before(st.lockedUntil) {
		return &LockedError{RetryAfter: st.lockedUntil.Sub(now)}
	}

	// Cooldown elapsed: back to open with a clean slate.
	delete(t.states, username)
	return nil
}

// RecordFailure increments the failure counter; reaching the threshold
// starts the cooldown window at now.
func (t *Tracker) RecordFailure(username string, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.states[username]
	if !ok {
		st = &state{}
		t.states[username] = st
	}

	st.failedCount++
	if st.failedCount >= t.maxAttempts {
		st.lockedUntil = now.Add(t.cooldown)
	}
}

// RecordSuccess clears all failure state for the username.
func (t *Tracker) RecordSuccess(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, username)
}

// FailedCount reports the current consecutive-failure count.
func (t *Tracker) FailedCount(username string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.states[username]; ok {
		return st.failedCount
	}
	return 0
}
