package entity

import "time"

// Place is a resolved geographic location. It is immutable once produced by
// the place resolver.
type Place struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Reminder is a durable subscription: one channel bound to one place.
type Reminder struct {
	ID        int64
	ChannelID string
	Place     Place
	CreatedAt time.Time
}
