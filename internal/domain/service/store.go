package service

import (
	"fmt"
	"sync"

	"github.com/sunwatch/slack-sunset-bot/internal/domain"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/contract"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

// reminderStore is the durable ground truth for "who is subscribed and
// where": an in-memory cache over the reminder repository. Writes go to the
// database first; a failed write is never reflected in the cache.
type reminderStore struct {
	mu     sync.RWMutex
	dm     contract.DataManager
	cache  map[string]entity.Place
	loaded bool
}

func newReminderStore(dm contract.DataManager) *reminderStore {
	return &reminderStore{
		dm:    dm,
		cache: make(map[string]entity.Place),
	}
}

// Load populates the cache from the database. It is idempotent: once loaded,
// further calls are no-ops and never reset existing entries.
func (s *reminderStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	reminders, err := s.dm.Reminder().GetAll()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	for _, r := range reminders {
		s.cache[r.ChannelID] = r.Place
	}
	s.loaded = true
	return nil
}

// Has reports whether the channel holds a reminder. Pure lookup.
func (s *reminderStore) Has(channelID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.cache[channelID]
	return ok
}

// Put persists the reminder and then updates the cache. Returns
// ErrAlreadySubscribed when the channel already holds one.
func (s *reminderStore) Put(channelID string, place entity.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache[channelID]; ok {
		return domain.ErrAlreadySubscribed
	}

	reminder := &entity.Reminder{
		ChannelID: channelID,
		Place:     place,
	}
	if err := s.dm.Reminder().Create(reminder); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	s.cache[channelID] = place
	return nil
}

// Remove deletes the reminder for the channel. No-op when absent.
func (s *reminderStore) Remove(channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache[channelID]; !ok {
		return nil
	}

	if err := s.dm.Reminder().Delete(channelID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	delete(s.cache, channelID)
	return nil
}

// All returns a snapshot of the current entries.
func (s *reminderStore) All() []entity.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]entity.Reminder, 0, len(s.cache))
	for channelID, place := range s.cache {
		reminders = append(reminders, entity.Reminder{ChannelID: channelID, Place: place})
	}
	return reminders
}
