// Package scheduler runs the periodic due-for-review check and hands
// reminders to a notifier.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Default active-hours window for reminders.
const (
	DefaultStartHour = 8
	DefaultEndHour   = 22
)

// DueSource reports which words are currently due for review.
type DueSource interface {
	DueForReview() []int
}

// Notifier delivers a reminder about due words.
type Notifier interface {
	RemindDueWords(wordIDs []int) error
}

// Config tunes the reminder loop.
type Config struct {
	Interval  time.Duration // how often to check; zero means hourly
	StartHour int           // reminders are silenced before this hour
	EndHour   int           // and after this one
}

// Scheduler periodically checks the progress store for due words and
// notifies the learner during the configured active hours.
type Scheduler struct {
	scheduler *gocron.Scheduler
	log       *zap.Logger
	due       DueSource
	notifier  Notifier
	cfg       Config
}

// New creates a scheduler. Zero-valued config fields fall back to the
// defaults.
func New(log *zap.Logger, due DueSource, notifier Notifier, cfg Config) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.StartHour == 0 && cfg.EndHour == 0 {
		cfg.StartHour = DefaultStartHour
		cfg.EndHour = DefaultEndHour
	}

	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		log:       log,
		due:       due,
		notifier:  notifier,
		cfg:       cfg,
	}
}

// Start begins the reminder loop without blocking.
func (s *Scheduler) Start() {
	if _, err := s.scheduler.Every(s.cfg.Interval).Do(s.check); err != nil {
		s.log.Error("failed to schedule reminder check", zap.Error(err))
		return
	}
	s.scheduler.StartAsync()
}

// Stop terminates the reminder loop.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunManualCheck triggers one reminder check immediately, ignoring the
// active-hours window.
func (s *Scheduler) RunManualCheck() error {
	due := s.due.DueForReview()
	if len(due) == 0 {
		return nil
	}
	return s.notifier.RemindDueWords(due)
}

func (s *Scheduler) check() {
	hour := time.Now().Hour()
	if hour < s.cfg.StartHour || hour > s.cfg.EndHour {
		s.log.Debug("outside reminder hours, skipping check",
			zap.Int("hour", hour),
			zap.Int("start", s.cfg.StartHour),
			zap.Int("end", s.cfg.EndHour))
		return
	}

	due := s.due.DueForReview()
	if len(due) == 0 {
		return
	}

	s.log.Info("words due for review", zap.Int("count", len(due)))
	if err := s.notifier.RemindDueWords(due); err != nil {
		s.log.Error("failed to send reminder", zap.Error(err))
	}
}
