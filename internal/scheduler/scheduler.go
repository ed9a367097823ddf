package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sunwatch/slack-sunset-bot/internal/domain"
)

// Rederiver regenerates today's reminder jobs from the durable store.
type Rederiver interface {
	Rederive(ctx context.Context)
}

// Scheduler fires the daily checkpoint that throws away every live job and
// rederives one fresh job per subscribed channel. It is deliberately a
// separate job kind from the per-channel one-shot timers: the checkpoint
// recurs and is never cancelled, the reminders are one-shot and replaceable.
type Scheduler struct {
	cron   *cron.Cron
	engine Rederiver
}

func New(engine Rederiver, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		engine: engine,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(domain.CheckpointSpec, func() {
		s.engine.Rederive(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Daily checkpoint scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Daily checkpoint scheduler stopped")
}
