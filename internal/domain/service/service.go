package service

import (
	"time"

	"github.com/sunwatch/slack-sunset-bot/internal/domain/contract"
)

type Services struct {
	Reminder *reminderEngine
}

func New(dm contract.DataManager, slackClient contract.SlackClient, resolver contract.PlaceResolver, calc contract.SunsetCalculator, loc *time.Location) *Services {
	return &Services{
		Reminder: newReminderEngine(dm, slackClient, resolver, calc, loc),
	}
}
