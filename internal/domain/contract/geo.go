package contract

import (
	"context"
	"time"

	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

// PlaceResolver turns a free-text address into a resolved place.
type PlaceResolver interface {
	Resolve(ctx context.Context, address string) (*entity.Place, error)
}

// SunsetCalculator computes the sunset instant for a place on a calendar day.
// The returned instant is in UTC; callers convert for display.
type SunsetCalculator interface {
	SunsetAt(ctx context.Context, place *entity.Place, date time.Time) (time.Time, error)
}
