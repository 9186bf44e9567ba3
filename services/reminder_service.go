// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"foxfood-backend/models"
	"foxfood-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ErrRunInProgress is returned when a reminder run is triggered while a
// previous one is still executing.
var ErrRunInProgress = errors.New("reminder run already in progress")

// AdminContact is the admin's notification settings plus the account
// email used as fallback recipient.
type AdminContact struct {
	models.AdminSettings
	UserEmail string
}

// ReminderStore is the data access needed by a reminder run.
type ReminderStore interface {
	EligibleUsers() ([]models.User, error)
	EnabledReminders(userID uuid.UUID) ([]models.UserReminder, error)
	HasFreshSelection(userID uuid.UUID, now time.Time) (bool, error)
	AdminContact() (*AdminContact, error)
	AlreadyNotifiedToday(notificationType string, aboutUserID uuid.UUID, now time.Time) (bool, error)
}

// ReminderNotifier is the dispatch surface the run uses.
type ReminderNotifier interface {
	SendUserReminder(p UserReminderParams) DispatchResult
	NotifyAdminMissingSelection(p MissingSelectionParams) DispatchResult
}

// ReminderRunResults summarizes one run.
type ReminderRunResults struct {
	Processed     int      `json:"processed"`
	RemindersSent int      `json:"reminders_sent"`
	AdminAlerts   int      `json:"admin_alerts"`
	Errors        []string `json:"errors"`
}

// ReminderService runs the daily reminder pass: for every client with
// completed settings and a delivery day, fire the reminder entries whose
// offset matches today, and alert the admin about missing selections.
type ReminderService struct {
	store    ReminderStore
	notifier ReminderNotifier
	now      func() time.Time
	running  atomic.Bool
}

func NewReminderService(db *gorm.DB, notifier ReminderNotifier) *ReminderService {
	return &ReminderService{
		store:    &gormReminderStore{db: db},
		notifier: notifier,
		now:      time.Now,
	}
}

// NewReminderServiceWithStore is used by tests to inject store and clock.
func NewReminderServiceWithStore(store ReminderStore, notifier ReminderNotifier, now func() time.Time) *ReminderService {
	return &ReminderService{store: store, notifier: notifier, now: now}
}

// StartScheduler registers the daily 9 AM run and starts the cron.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 9 * * *", func() {
		results, err := s.ProcessReminders()
		if err != nil {
			log.Printf("Reminder run failed: %v", err)
			return
		}
		log.Printf("Reminder run done: processed=%d reminders_sent=%d admin_alerts=%d errors=%d",
			results.Processed, results.RemindersSent, results.AdminAlerts, len(results.Errors))
	})
	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// ProcessReminders performs one sequential pass over all eligible users.
// A second concurrent call exits early with ErrRunInProgress instead of
// duplicating sends. A failing user is recorded in Errors and does not
// stop the run.
func (s *ReminderService) ProcessReminders() (*ReminderRunResults, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer s.running.Store(false)

	results := &ReminderRunResults{Errors: []string{}}
	now := s.now()

	users, err := s.store.EligibleUsers()
	if err != nil {
		return nil, fmt.Errorf("fetch eligible users: %w", err)
	}
	admin, err := s.store.AdminContact()
	if err != nil {
		return nil, fmt.Errorf("fetch admin settings: %w", err)
	}

	for i := range users {
		results.Processed++
		if err := s.processUser(&users[i], admin, now, results); err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("user %s: %v", users[i].ID, err))
		}
	}

	return results, nil
}

func (s *ReminderService) processUser(user *models.User, admin *AdminContact, now time.Time, results *ReminderRunResults) error {
	dayNumber, err := utils.DayNumber(user.DeliveryDay)
	if err != nil {
		return err
	}
	daysUntilDelivery := utils.DaysUntilNext(dayNumber, now)

	hasSelection, err := s.store.HasFreshSelection(user.ID, now)
	if err != nil {
		return err
	}

	reminders, err := s.store.EnabledReminders(user.ID)
	if err != nil {
		return err
	}

	for _, reminder := range reminders {
		if reminder.DaysBefore != daysUntilDelivery || hasSelection {
			continue
		}

		sent, err := s.store.AlreadyNotifiedToday(models.NotificationTypeUserReminder, user.ID, now)
		if err != nil {
			return err
		}
		if sent {
			continue
		}

		email := user.NotificationEmail
		if email == "" {
			email = user.Email
		}
		res := s.notifier.SendUserReminder(UserReminderParams{
			UserID:             user.ID,
			UserName:           user.Name,
			UserEmail:          email,
			UserPhone:          user.NotificationPhone,
			DaysBeforeDelivery: daysUntilDelivery,
			SendEmail:          reminder.SendEmail,
			SendSMS:            reminder.SendSMS,
		})
		if res.Success {
			results.RemindersSent++
		} else {
			results.Errors = append(results.Errors, fmt.Sprintf("reminder failed for user %s", user.ID))
		}
	}

	if !hasSelection && admin != nil && admin.NotifyOnMissingSelection &&
		admin.AutoReminderDaysBefore == daysUntilDelivery {

		sent, err := s.store.AlreadyNotifiedToday(models.NotificationTypeMissingSelection, user.ID, now)
		if err != nil {
			return err
		}
		if sent {
			return nil
		}

		adminEmail := admin.NotificationEmail
		if adminEmail == "" {
			adminEmail = admin.UserEmail
		}
		res := s.notifier.NotifyAdminMissingSelection(MissingSelectionParams{
			AdminEmail: adminEmail,
			AdminPhone: admin.NotificationPhone,
			SendEmail:  admin.SendEmail,
			SendSMS:    admin.SendSMS,
			UserID:     user.ID,
			UserName:   user.Name,
			UserEmail:  user.Email,
			DaysLeft:   daysUntilDelivery,
		})
		if res.Success {
			results.AdminAlerts++
		} else {
			results.Errors = append(results.Errors, fmt.Sprintf("admin alert failed for user %s", user.ID))
		}
	}

	return nil
}

type gormReminderStore struct {
	db *gorm.DB
}

func (s *gormReminderStore) EligibleUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.
		Where("role = ? AND settings_completed = ? AND delivery_day <> ''", models.RoleClient, true).
		Find(&users).Error
	return users, err
}

func (s *gormReminderStore) EnabledReminders(userID uuid.UUID) ([]models.UserReminder, error) {
	var reminders []models.UserReminder
	err := s.db.
		Where("user_id = ? AND enabled = ?", userID, true).
		Order("days_before DESC").
		Find(&reminders).Error
	return reminders, err
}

func (s *gormReminderStore) HasFreshSelection(userID uuid.UUID, now time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.WeeklySelection{}).
		Where("user_id = ? AND created_at > ?", userID, now.AddDate(0, 0, -7)).
		Count(&count).Error
	return count > 0, err
}

func (s *gormReminderStore) AdminContact() (*AdminContact, error) {
	var settings models.AdminSettings
	if err := s.db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var admin models.User
	if err := s.db.First(&admin, "id = ?", settings.UserID).Error; err != nil {
		return nil, err
	}

	return &AdminContact{AdminSettings: settings, UserEmail: admin.Email}, nil
}

func (s *gormReminderStore) AlreadyNotifiedToday(notificationType string, aboutUserID uuid.UUID, now time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.NotificationLog{}).
		Where("notification_type = ? AND about_user_id = ? AND sent_at >= ?",
			notificationType, aboutUserID, utils.BeginningOfDay(now)).
		Count(&count).Error
	return count > 0, err
}
