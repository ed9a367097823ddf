package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/slack-go/slack"

	"github.com/sunwatch/slack-sunset-bot/internal/domain"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/contract"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

// todayJob is an armed one-shot timer for a channel's reminder on the
// current calendar day. Jobs never survive a restart; they are rederived
// from the store at boot and at the daily checkpoint.
type todayJob struct {
	channelID string
	fireAt    time.Time
	timer     *time.Timer
}

// timerManager owns the set of live today-jobs, at most one per channel.
// The job map is guarded by mu; sunset lookups run outside the lock so
// channels never block each other.
type timerManager struct {
	mu    sync.Mutex
	jobs  map[string]*todayJob
	calc  contract.SunsetCalculator
	slack contract.SlackClient
	loc   *time.Location

	// wanted is consulted under mu right before arming, so an in-flight
	// sunset lookup that lost to an unsubscribe never arms a stale job.
	wanted func(channelID string) bool

	offset time.Duration
	now    func() time.Time
}

func newTimerManager(calc contract.SunsetCalculator, slackClient contract.SlackClient, loc *time.Location) *timerManager {
	return &timerManager{
		jobs:   make(map[string]*todayJob),
		calc:   calc,
		slack:  slackClient,
		loc:    loc,
		offset: domain.OffsetMinutes * time.Minute,
		now:    time.Now,
	}
}

// Schedule resolves today's sunset for the place and arms a one-shot timer
// for the channel at sunset minus the offset, replacing any existing job.
// A fire time already in the past still arms and fires immediately: the
// reminder is for today only and the checkpoint rederives tomorrow's.
func (t *timerManager) Schedule(ctx context.Context, channelID string, place entity.Place) error {
	today := t.now().In(t.loc)
	sunset, err := t.calc.SunsetAt(ctx, &place, today)
	if err != nil {
		return fmt.Errorf("failed to get sunset for %s: %w", place.DisplayName, err)
	}
	fireAt := sunset.Add(-t.offset)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.wanted != nil && !t.wanted(channelID) {
		// Unsubscribed while the sunset lookup was in flight.
		return nil
	}

	if prev, ok := t.jobs[channelID]; ok {
		prev.timer.Stop()
	}

	job := &todayJob{channelID: channelID, fireAt: fireAt}
	delay := fireAt.Sub(t.now())
	if delay < 0 {
		delay = 0
	}
	job.timer = time.AfterFunc(delay, func() { t.fire(job) })
	t.jobs[channelID] = job

	log.Printf("Armed sunset reminder for channel %s at %s", channelID, fireAt.In(t.loc).Format(domain.ClockFormat))
	return nil
}

// CancelToday stops and discards the channel's job. No-op when absent.
func (t *timerManager) CancelToday(channelID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if job, ok := t.jobs[channelID]; ok {
		job.timer.Stop()
		delete(t.jobs, channelID)
	}
}

// ClearAllToday stops and discards every live job. Used as the first step
// of a daily rederive so stale cross-day jobs are never double-armed.
func (t *timerManager) ClearAllToday() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for channelID, job := range t.jobs {
		job.timer.Stop()
		delete(t.jobs, channelID)
	}
}

// fire runs when a job's timer signals. The job self-discards before
// notifying; a job that was cancelled or replaced after its timer already
// signalled is detected here and dropped.
func (t *timerManager) fire(job *todayJob) {
	t.mu.Lock()
	current, ok := t.jobs[job.channelID]
	if !ok || current != job {
		t.mu.Unlock()
		return
	}
	delete(t.jobs, job.channelID)
	t.mu.Unlock()

	sunset := job.fireAt.Add(t.offset)
	text := fmt.Sprintf("🌅 The sun sets in %d minutes, at %s!",
		domain.OffsetMinutes, sunset.In(t.loc).Format(domain.ClockFormat))

	if _, _, err := t.slack.PostMessage(job.channelID, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("Failed to notify channel %s: %v", job.channelID, err)
	}
}

// liveJobs returns the fire time of every armed job, keyed by channel.
func (t *timerManager) liveJobs() map[string]time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	jobs := make(map[string]time.Time, len(t.jobs))
	for channelID, job := range t.jobs {
		jobs[channelID] = job.fireAt
	}
	return jobs
}
