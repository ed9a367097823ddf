package database

import (
	"database/sql"
	"fmt"

	"github.com/sunwatch/slack-sunset-bot/internal/domain/contract"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (channel_id, latitude, longitude, display_name)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		reminder.ChannelID,
		reminder.Place.Lat,
		reminder.Place.Lon,
		reminder.Place.DisplayName,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	return nil
}

func (r *reminderRepo) GetByChannelID(channelID string) (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	query := `
		SELECT id, channel_id, latitude, longitude, display_name, created_at
		FROM reminders
		WHERE channel_id = ?
	`

	err := r.db.QueryRow(query, channelID).Scan(
		&reminder.ID,
		&reminder.ChannelID,
		&reminder.Place.Lat,
		&reminder.Place.Lon,
		&reminder.Place.DisplayName,
		&reminder.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepo) Delete(channelID string) error {
	query := `DELETE FROM reminders WHERE channel_id = ?`

	if _, err := r.db.Exec(query, channelID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

func (r *reminderRepo) GetAll() ([]*entity.Reminder, error) {
	query := `
		SELECT id, channel_id, latitude, longitude, display_name, created_at
		FROM reminders
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		reminder := &entity.Reminder{}
		err := rows.Scan(
			&reminder.ID,
			&reminder.ChannelID,
			&reminder.Place.Lat,
			&reminder.Place.Lon,
			&reminder.Place.DisplayName,
			&reminder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, nil
}
