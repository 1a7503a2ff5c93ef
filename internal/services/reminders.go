package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type ReminderKind string

const (
	ReminderUpcomingPeriod ReminderKind = "upcoming_period"
	ReminderConsultation   ReminderKind = "consultation"
)

const (
	DefaultReminderInterval   = 6 * time.Hour
	DefaultPeriodReminderDays = 2
	maxTrackedReminders       = 500
)

type Reminder struct {
	UserID  uint         `json:"userId"`
	Kind    ReminderKind `json:"kind"`
	Date    time.Time    `json:"date"`
	Message string       `json:"message"`
}

// Notifier delivers reminders. Delivery channels live outside this module.
type Notifier interface {
	Notify(ctx context.Context, reminder Reminder) error
}

type ReminderUserLister interface {
	ListUserIDs(ctx context.Context) ([]uint, error)
}

type ReminderAnalyzer interface {
	Analyze(ctx context.Context, userID uint, referenceDate time.Time) (Analysis, CycleHistory, error)
}

type ReminderConfig struct {
	Interval           time.Duration
	PeriodReminderDays int
	Location           *time.Location
}

type ReminderService struct {
	users              ReminderUserLister
	analyzer           ReminderAnalyzer
	notifier           Notifier
	interval           time.Duration
	periodReminderDays int
	location           *time.Location
	now                func() time.Time

	mu   sync.Mutex
	sent map[string]time.Time
}

func NewReminderService(users ReminderUserLister, analyzer ReminderAnalyzer, notifier Notifier, config ReminderConfig) *ReminderService {
	if config.Interval <= 0 {
		config.Interval = DefaultReminderInterval
	}
	if config.PeriodReminderDays < 0 {
		config.PeriodReminderDays = DefaultPeriodReminderDays
	}
	if config.Location == nil {
		config.Location = time.Local
	}

	return &ReminderService{
		users:              users,
		analyzer:           analyzer,
		notifier:           notifier,
		interval:           config.Interval,
		periodReminderDays: config.PeriodReminderDays,
		location:           config.Location,
		now:                time.Now,
		sent:               make(map[string]time.Time),
	}
}

func (service *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		service.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce analyzes every user against today's date and hands due reminders
// to the notifier. It returns the number of reminders delivered.
func (service *ReminderService) RunOnce(ctx context.Context) int {
	userIDs, err := service.users.ListUserIDs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reminders: list users failed")
		return 0
	}

	today := dateOnly(service.now().In(service.location))
	delivered := 0
	for _, userID := range userIDs {
		analysis, _, err := service.analyzer.Analyze(ctx, userID, today)
		if err != nil {
			log.Error().Err(err).Uint("user_id", userID).Msg("reminders: analysis failed")
			continue
		}

		for _, reminder := range service.dueReminders(userID, analysis, today) {
			if !service.shouldSend(reminder, today) {
				continue
			}
			if err := service.notifier.Notify(ctx, reminder); err != nil {
				service.forget(reminder, today)
				log.Error().Err(err).Uint("user_id", userID).Str("kind", string(reminder.Kind)).Msg("reminders: notify failed")
				continue
			}
			delivered++
		}
	}
	return delivered
}

func (service *ReminderService) dueReminders(userID uint, analysis Analysis, today time.Time) []Reminder {
	reminders := make([]Reminder, 0, 2)
	if analysis.Status != AnalysisReady {
		return reminders
	}

	if analysis.ExpectedDate != nil && daysBetween(today, *analysis.ExpectedDate) == service.periodReminderDays {
		reminders = append(reminders, Reminder{
			UserID: userID,
			Kind:   ReminderUpcomingPeriod,
			Date:   today,
			Message: fmt.Sprintf("Your next cycle is expected in %d day(s) on %s.",
				service.periodReminderDays, analysis.ExpectedDate.Format("Jan 2")),
		})
	}

	if analysis.Tier() == TierConsultation {
		reminders = append(reminders, Reminder{
			UserID:  userID,
			Kind:    ReminderConsultation,
			Date:    today,
			Message: analysis.Response.Base().Message,
		})
	}
	return reminders
}

func (service *ReminderService) shouldSend(reminder Reminder, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	key := reminderKey(reminder, today)
	if sentOn, ok := service.sent[key]; ok && daysBetween(sentOn, today) == 0 {
		return false
	}

	service.sent[key] = today
	if len(service.sent) > maxTrackedReminders {
		service.evictBeforeLocked(today)
	}
	return true
}

// evictBeforeLocked drops entries from earlier days. Keys carry the date, so
// only today's entries can still suppress a reminder.
func (service *ReminderService) evictBeforeLocked(today time.Time) {
	for key, sentOn := range service.sent {
		if daysBetween(sentOn, today) > 0 {
			delete(service.sent, key)
		}
	}
}

// forget lets a reminder whose delivery failed go out on the next run.
func (service *ReminderService) forget(reminder Reminder, today time.Time) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.sent, reminderKey(reminder, today))
}

func reminderKey(reminder Reminder, today time.Time) string {
	return fmt.Sprintf("%s:%d:%s", reminder.Kind, reminder.UserID, today.Format(exportDateLayout))
}

// LogNotifier writes reminders to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, reminder Reminder) error {
	log.Info().
		Uint("user_id", reminder.UserID).
		Str("kind", string(reminder.Kind)).
		Str("date", reminder.Date.Format(exportDateLayout)).
		Msg(reminder.Message)
	return nil
}
