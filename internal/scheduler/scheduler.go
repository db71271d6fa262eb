// Package scheduler sends a daily practice reminder to every user the bot
// has seen.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Notifier delivers a reminder to a single user.
type Notifier interface {
	SendReminder(userID int64) error
}

// UserSource lists the users eligible for reminders.
type UserSource interface {
	Users() []int64
}

type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	users     UserSource
	log       *zap.Logger
}

func New(notifier Notifier, users UserSource, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		users:     users,
		log:       log,
	}
}

// Start schedules the daily reminder at the given hour (UTC) and runs the
// scheduler in the background.
func (s *Scheduler) Start(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("reminder hour out of range: %d", hour)
	}

	_, err := s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(s.sendReminders)
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sendReminders() {
	users := s.users.Users()
	s.log.Info("sending practice reminders", zap.Int("users", len(users)))

	for _, userID := range users {
		if err := s.notifier.SendReminder(userID); err != nil {
			s.log.Warn("failed to send reminder",
				zap.Int64("user_id", userID),
				zap.Error(err))
		}
	}
}
