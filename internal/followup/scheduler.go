// Package followup schedules deferred check-in messages.
package followup

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/echo-journal/echod/internal/metrics"
)

// Sender delivers outbound messages to the messaging front end.
type Sender interface {
	Send(ctx context.Context, channelID, content string) error
}

// PolicyFunc decides whether a deferred delivery may fire for a user at
// the given instant. A suppressed delivery is dropped, not rescheduled.
type PolicyFunc func(ctx context.Context, userID string, at time.Time) (allow bool, reason string)

// Scheduler arms one cancelable timer per (user, channel) key. Timers are
// in-memory only: a restart loses pending follow-ups. Scheduling a new
// follow-up for a key takes over the cancel slot; an earlier un-cancelled
// timer still fires independently, so follow-ups never block new message
// handling.
type Scheduler struct {
	sender   Sender
	allow    PolicyFunc
	recorder metrics.Recorder

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending int
}

// NewScheduler creates a Scheduler. allow may be nil, in which case every
// delivery is permitted.
func NewScheduler(sender Sender, allow PolicyFunc, recorder metrics.Recorder) *Scheduler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Scheduler{
		sender:   sender,
		allow:    allow,
		recorder: recorder,
		timers:   make(map[string]*time.Timer),
	}
}

func key(userID, channelID string) string {
	return userID + "\x00" + channelID
}

// DeliverNow sends a message immediately.
func (s *Scheduler) DeliverNow(ctx context.Context, channelID, content string) error {
	return s.sender.Send(ctx, channelID, content)
}

// Schedule arms a follow-up for delivery after delay. The timer registered
// under (userID, channelID) is replaced; the new one fires independently.
func (s *Scheduler) Schedule(userID, channelID string, delay time.Duration, content string) {
	k := key(userID, channelID)

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.fire(k, timer, userID, channelID, content)
	})

	s.mu.Lock()
	s.timers[k] = timer
	s.pending++
	s.mu.Unlock()

	s.recorder.RecordFollowUpScheduled()
}

func (s *Scheduler) fire(k string, timer *time.Timer, userID, channelID, content string) {
	s.mu.Lock()
	if s.timers[k] == timer {
		delete(s.timers, k)
	}
	s.pending--
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if s.allow != nil {
		if ok, reason := s.allow(ctx, userID, time.Now()); !ok {
			log.Printf("follow-up for user %s suppressed: %s", userID, reason)
			s.recorder.RecordFollowUpSuppressed()
			return
		}
	}

	if err := s.sender.Send(ctx, channelID, content); err != nil {
		log.Printf("WARN: failed to deliver follow-up to channel %s: %v", channelID, err)
		return
	}
	s.recorder.RecordFollowUpDelivered()
}

// Cancel stops the pending follow-up for (userID, channelID), if any.
// Returns true when a timer was stopped before firing.
func (s *Scheduler) Cancel(userID, channelID string) bool {
	k := key(userID, channelID)

	s.mu.Lock()
	timer, ok := s.timers[k]
	if ok {
		delete(s.timers, k)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	stopped := timer.Stop()
	if stopped {
		s.mu.Lock()
		s.pending--
		s.mu.Unlock()
		s.recorder.RecordFollowUpCancelled()
	}
	return stopped
}

// Pending returns the number of armed follow-ups.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Stop cancels all pending follow-ups. Called on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, timer := range s.timers {
		if timer.Stop() {
			s.pending--
		}
		delete(s.timers, k)
	}
}
