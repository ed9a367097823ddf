package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sunwatch/slack-sunset-bot/internal/domain"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/contract"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

// reminderEngine composes the store and the timer manager behind the
// ReminderService surface. The store is the durable ground truth; live
// today-jobs are a disposable projection of it, rederived at boot and at
// each daily checkpoint.
type reminderEngine struct {
	store    *reminderStore
	timers   *timerManager
	resolver contract.PlaceResolver
	loc      *time.Location
	now      func() time.Time
}

func newReminderEngine(dm contract.DataManager, slackClient contract.SlackClient, resolver contract.PlaceResolver, calc contract.SunsetCalculator, loc *time.Location) *reminderEngine {
	engine := &reminderEngine{
		store:    newReminderStore(dm),
		timers:   newTimerManager(calc, slackClient, loc),
		resolver: resolver,
		loc:      loc,
		now:      time.Now,
	}
	// Drops in-flight schedules for channels that unsubscribed meanwhile.
	engine.timers.wanted = engine.store.Has
	return engine
}

// Start loads the durable store and rederives today's jobs from it. Boot
// recovery: jobs never persist across restarts.
func (s *reminderEngine) Start(ctx context.Context) error {
	if err := s.store.Load(); err != nil {
		return err
	}
	s.Rederive(ctx)
	return nil
}

// Subscribe binds the channel to the resolved address and arms today's
// reminder. A channel that is already subscribed keeps its original place,
// even when given a different address.
func (s *reminderEngine) Subscribe(ctx context.Context, channelID, address string) (*entity.Place, error) {
	if s.store.Has(channelID) {
		return nil, domain.ErrAlreadySubscribed
	}

	place, err := s.resolver.Resolve(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve address %q: %w", address, err)
	}

	if err := s.store.Put(channelID, *place); err != nil {
		return nil, err
	}

	// Best effort for today only: the durable subscription is recorded
	// either way and the daily checkpoint retries tomorrow.
	if err := s.timers.Schedule(ctx, channelID, *place); err != nil {
		log.Printf("Could not arm today's reminder for channel %s: %v", channelID, err)
	}

	return place, nil
}

// Unsubscribe removes the durable reminder first, then cancels today's job.
// A crash between the two steps leaves at worst a harmless cancel-of-nothing
// on the next boot, never an orphaned durable reminder.
func (s *reminderEngine) Unsubscribe(ctx context.Context, channelID string) error {
	if !s.store.Has(channelID) {
		return domain.ErrNotSubscribed
	}

	if err := s.store.Remove(channelID); err != nil {
		return err
	}

	s.timers.CancelToday(channelID)
	return nil
}

// HasReminder reports whether the channel is subscribed. Timer state never
// back-drives this; only the store answers.
func (s *reminderEngine) HasReminder(channelID string) bool {
	return s.store.Has(channelID)
}

// PeekSunset is a stateless one-shot query: resolve the address, compute
// today's sunset and return it formatted. Nothing is persisted.
func (s *reminderEngine) PeekSunset(ctx context.Context, address string) (string, error) {
	place, err := s.resolver.Resolve(ctx, address)
	if err != nil {
		return "", fmt.Errorf("failed to resolve address %q: %w", address, err)
	}

	sunset, err := s.timers.calc.SunsetAt(ctx, place, s.now().In(s.loc))
	if err != nil {
		return "", fmt.Errorf("failed to get sunset for %s: %w", place.DisplayName, err)
	}

	return fmt.Sprintf("Today the sun sets at %s in %s.",
		sunset.In(s.loc).Format(domain.ClockFormat), place.DisplayName), nil
}

// Rederive clears every live job and re-arms one fresh job per store entry.
// Invoked once at boot and by the daily checkpoint. Failures here are
// logged only; the affected channel stays subscribed and is retried at the
// next checkpoint.
func (s *reminderEngine) Rederive(ctx context.Context) {
	s.timers.ClearAllToday()

	reminders := s.store.All()
	log.Printf("Rederiving today's sunset reminders for %d channels", len(reminders))

	for _, r := range reminders {
		if err := s.timers.Schedule(ctx, r.ChannelID, r.Place); err != nil {
			log.Printf("Rederive failed for channel %s: %v", r.ChannelID, err)
		}
	}
}
