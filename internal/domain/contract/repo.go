package contract

import (
	"context"

	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reminder() ReminderRepo
}

// ReminderRepo defines the contract for the reminder repository
type ReminderRepo interface {
	Create(reminder *entity.Reminder) error
	GetByChannelID(channelID string) (*entity.Reminder, error)
	Delete(channelID string) error
	GetAll() ([]*entity.Reminder, error)
}
