package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sunwatch/slack-sunset-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockReminderRepo *mocks.MockReminderRepo
	mockSlackClient  *mocks.MockSlackClient
	mockResolver     *mocks.MockPlaceResolver
	mockCalculator   *mocks.MockSunsetCalculator
}

func newServiceTestMock(t *testing.T) (m allMocks, engine *reminderEngine, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	resolver := mocks.NewMockPlaceResolver(ctrl)
	calculator := mocks.NewMockSunsetCalculator(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockReminderRepo: reminderRepo,
		mockSlackClient:  slackClient,
		mockResolver:     resolver,
		mockCalculator:   calculator,
	}

	engine = newReminderEngine(dm, slackClient, resolver, calculator, time.UTC)
	require.NotNil(t, engine)

	return
}
