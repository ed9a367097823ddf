package contract

import (
	"context"

	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

// ReminderService is the engine surface consumed by the command layer.
type ReminderService interface {
	Subscribe(ctx context.Context, channelID, address string) (*entity.Place, error)
	Unsubscribe(ctx context.Context, channelID string) error
	HasReminder(channelID string) bool
	PeekSunset(ctx context.Context, address string) (string, error)
}
