package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwatch/slack-sunset-bot/internal/domain"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
	"go.uber.org/mock/gomock"
)

// fixClock pins the engine and its timer manager to a deterministic instant
// so armed jobs never fire during a test.
func fixClock(engine *reminderEngine, now time.Time) {
	engine.now = func() time.Time { return now }
	engine.timers.now = func() time.Time { return now }
}

func Test_reminderEngine_Subscribe(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 18, 2, 0, 0, time.UTC)
	fixClock(engine, now)

	address := "1100 Glendon Ave, Los Angeles, CA 90024"
	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), address).
		Return(&testPlace, nil)
	m.mockReminderRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(reminder *entity.Reminder) error {
			assert.Equal(t, "room1", reminder.ChannelID)
			assert.Equal(t, testPlace, reminder.Place)
			return nil
		})
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sunset, nil)

	place, err := engine.Subscribe(context.Background(), "room1", address)
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, testPlace.DisplayName, place.DisplayName)

	assert.True(t, engine.HasReminder("room1"))

	jobs := engine.timers.liveJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, time.Date(2024, 6, 1, 17, 57, 0, 0, time.UTC), jobs["room1"])
}

func Test_reminderEngine_Subscribe_AlreadySubscribedKeepsPlace(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 18, 2, 0, 0, time.UTC)
	fixClock(engine, now)

	// Resolve happens exactly once: the second and third calls are
	// no-ops and never touch the resolver.
	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), "los angeles").
		Return(&testPlace, nil)
	m.mockReminderRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sunset, nil)

	_, err := engine.Subscribe(context.Background(), "room1", "los angeles")
	require.NoError(t, err)

	_, err = engine.Subscribe(context.Background(), "room1", "los angeles")
	require.ErrorIs(t, err, domain.ErrAlreadySubscribed)

	// A different address must not overwrite the stored place.
	_, err = engine.Subscribe(context.Background(), "room1", "new york")
	require.ErrorIs(t, err, domain.ErrAlreadySubscribed)

	all := engine.store.All()
	require.Len(t, all, 1)
	assert.Equal(t, testPlace, all[0].Place)
}

func Test_reminderEngine_Subscribe_ResolutionFailure(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), "nowhere").
		Return(nil, domain.ErrAddressNotFound)

	_, err := engine.Subscribe(context.Background(), "room1", "nowhere")
	require.ErrorIs(t, err, domain.ErrAddressNotFound)

	assert.False(t, engine.HasReminder("room1"), "failed subscription must not take effect")
	assert.Empty(t, engine.timers.liveJobs())
}

func Test_reminderEngine_Subscribe_StorageFailureNotCached(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), "los angeles").
		Return(&testPlace, nil)
	m.mockReminderRepo.EXPECT().
		Create(gomock.Any()).
		Return(assert.AnError)

	_, err := engine.Subscribe(context.Background(), "room1", "los angeles")
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)

	assert.False(t, engine.HasReminder("room1"), "failed write must not be reflected in the cache")
	assert.Empty(t, engine.store.All())
}

func Test_reminderEngine_Subscribe_ScheduleFailureKeepsSubscription(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), "los angeles").
		Return(&testPlace, nil)
	m.mockReminderRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(time.Time{}, domain.ErrCalculationUnavailable)

	// Durability of intent wins: the subscription is recorded even though
	// today's timer could not be armed.
	_, err := engine.Subscribe(context.Background(), "room1", "los angeles")
	require.NoError(t, err)

	assert.True(t, engine.HasReminder("room1"))
	assert.Empty(t, engine.timers.liveJobs())
}

func Test_reminderEngine_Unsubscribe_RoundTrip(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 18, 2, 0, 0, time.UTC)
	fixClock(engine, now)

	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), "los angeles").
		Return(&testPlace, nil)
	m.mockReminderRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sunset, nil)
	m.mockReminderRepo.EXPECT().Delete("room1").Return(nil)

	_, err := engine.Subscribe(context.Background(), "room1", "los angeles")
	require.NoError(t, err)
	require.Len(t, engine.timers.liveJobs(), 1)

	require.NoError(t, engine.Unsubscribe(context.Background(), "room1"))

	assert.False(t, engine.HasReminder("room1"))
	assert.Empty(t, engine.timers.liveJobs(), "no job may remain after unsubscribe")
}

func Test_reminderEngine_Unsubscribe_NotSubscribed(t *testing.T) {
	_, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// No Delete expectation: the repository must not be touched.
	err := engine.Unsubscribe(context.Background(), "room2")
	require.ErrorIs(t, err, domain.ErrNotSubscribed)
	assert.Empty(t, engine.timers.liveJobs())
}

func Test_reminderEngine_Unsubscribe_CancelsInFlightSchedule(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})
	sunset := time.Date(2024, 6, 1, 18, 2, 0, 0, time.UTC)

	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), "los angeles").
		Return(&testPlace, nil)
	m.mockReminderRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.mockReminderRepo.EXPECT().Delete("room1").Return(nil)
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, place *entity.Place, date time.Time) (time.Time, error) {
			close(entered)
			<-release
			return sunset, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := engine.Subscribe(context.Background(), "room1", "los angeles")
		assert.NoError(t, err)
	}()

	// Unsubscribe lands while the sunset lookup is still in flight.
	<-entered
	require.NoError(t, engine.Unsubscribe(context.Background(), "room1"))
	close(release)
	wg.Wait()

	assert.False(t, engine.HasReminder("room1"))
	assert.Empty(t, engine.timers.liveJobs(), "stale in-flight resolution must not arm a job")
}

func Test_reminderEngine_Rederive(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 18, 2, 0, 0, time.UTC)
	fixClock(engine, now)

	m.mockResolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(&testPlace, nil).
		Times(2)
	m.mockReminderRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sunset, nil).
		AnyTimes()

	_, err := engine.Subscribe(context.Background(), "room1", "los angeles")
	require.NoError(t, err)
	_, err = engine.Subscribe(context.Background(), "room2", "santa monica")
	require.NoError(t, err)
	require.Len(t, engine.timers.liveJobs(), 2)

	// The checkpoint replaces the already-live jobs instead of piling on.
	engine.Rederive(context.Background())
	assert.Len(t, engine.timers.liveJobs(), 2)

	engine.Rederive(context.Background())
	assert.Len(t, engine.timers.liveJobs(), 2)
}

func Test_reminderEngine_Start_BootRecovery(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 18, 2, 0, 0, time.UTC)
	fixClock(engine, now)

	persisted := []*entity.Reminder{
		{ID: 1, ChannelID: "room1", Place: testPlace},
	}
	m.mockReminderRepo.EXPECT().GetAll().Return(persisted, nil)
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sunset, nil)

	require.NoError(t, engine.Start(context.Background()))

	assert.True(t, engine.HasReminder("room1"))
	jobs := engine.timers.liveJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, sunset.Add(-domain.OffsetMinutes*time.Minute), jobs["room1"])
}

func Test_reminderEngine_Start_LoadIsIdempotent(t *testing.T) {
	m, engine, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 18, 2, 0, 0, time.UTC)
	fixClock(engine, now)

	persisted := []*entity.Reminder{
		{ID: 1, ChannelID: "room1", Place: testPlace},
	}
	// GetAll runs exactly once: a second load signal must not reset or
	// duplicate entries.
	m.mockReminderRepo.EXPECT().GetAll().Return(persisted, nil).Times(1)
	m.mockCalculator.EXPECT().
		SunsetAt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sunset, nil).
		AnyTimes()

	require.NoError(t, engine.Start(context.Background()))
	require.NoError(t, engine.Start(context.Background()))

	assert.Len(t, engine.store.All(), 1)
	assert.Len(t, engine.timers.liveJobs(), 1)
}
