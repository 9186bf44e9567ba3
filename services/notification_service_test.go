package services

import (
	"testing"

	"foxfood-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailSender struct {
	result ChannelResult
	sent   []EmailMessage
}

func (f *fakeEmailSender) Send(msg EmailMessage) ChannelResult {
	f.sent = append(f.sent, msg)
	return f.result
}

type fakeSMSSender struct {
	result ChannelResult
	sent   []SMSMessage
}

func (f *fakeSMSSender) Send(msg SMSMessage) ChannelResult {
	f.sent = append(f.sent, msg)
	return f.result
}

type memoryLogStore struct {
	entries []models.NotificationLog
}

func (m *memoryLogStore) Create(entry *models.NotificationLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func newTestNotifier(emailResult, smsResult ChannelResult) (*NotificationService, *memoryLogStore, *fakeEmailSender, *fakeSMSSender) {
	logs := &memoryLogStore{}
	email := &fakeEmailSender{result: emailResult}
	sms := &fakeSMSSender{result: smsResult}
	return NewNotificationServiceWithStore(logs, email, sms, "https://foxfood.example"), logs, email, sms
}

func TestSendUserReminderLogsExactlyOnce(t *testing.T) {
	svc, logs, email, sms := newTestNotifier(ChannelResult{Success: true}, ChannelResult{Success: true})

	userID := uuid.New()
	res := svc.SendUserReminder(UserReminderParams{
		UserID:             userID,
		UserName:           "Alice",
		UserEmail:          "alice@example.com",
		UserPhone:          "+33600000001",
		DaysBeforeDelivery: 3,
		SendEmail:          true,
		SendSMS:            true,
	})

	assert.True(t, res.Success)
	assert.Len(t, email.sent, 1)
	assert.Len(t, sms.sent, 1)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, models.NotificationTypeUserReminder, entry.NotificationType)
	assert.Equal(t, models.NotificationMethodBoth, entry.Method)
	assert.Equal(t, models.NotificationStatusSent, entry.Status)
	assert.Empty(t, entry.ErrorMessage)
	require.NotNil(t, entry.RecipientUserID)
	assert.Equal(t, userID, *entry.RecipientUserID)
	require.NotNil(t, entry.AboutUserID)
	assert.Equal(t, userID, *entry.AboutUserID)
	assert.Contains(t, entry.Subject, "3 jours")
}

func TestDispatchPartialFailureIsFailed(t *testing.T) {
	svc, logs, _, _ := newTestNotifier(
		ChannelResult{Success: true},
		ChannelResult{Error: "twilio: invalid number"},
	)

	res := svc.SendUserReminder(UserReminderParams{
		UserID:             uuid.New(),
		UserName:           "Bob",
		UserEmail:          "bob@example.com",
		UserPhone:          "0600",
		DaysBeforeDelivery: 1,
		SendEmail:          true,
		SendSMS:            true,
	})

	// Aggregate failure, per-channel results preserved
	assert.False(t, res.Success)
	assert.True(t, res.Email.Success)
	assert.False(t, res.SMS.Success)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.NotificationStatusFailed, logs.entries[0].Status)
	assert.Equal(t, "twilio: invalid number", logs.entries[0].ErrorMessage)
}

func TestDispatchEmailOnlyMethod(t *testing.T) {
	svc, logs, email, sms := newTestNotifier(ChannelResult{Success: true}, ChannelResult{Success: true})

	res := svc.SendUserReminder(UserReminderParams{
		UserID:             uuid.New(),
		UserName:           "Chloé",
		UserEmail:          "chloe@example.com",
		DaysBeforeDelivery: 5,
		SendEmail:          true,
	})

	assert.True(t, res.Success)
	assert.Len(t, email.sent, 1)
	assert.Empty(t, sms.sent)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.NotificationMethodEmail, logs.entries[0].Method)
}

func TestDispatchSkipsChannelWithoutAddress(t *testing.T) {
	svc, logs, email, sms := newTestNotifier(ChannelResult{Success: true}, ChannelResult{Success: true})

	// SMS requested but no phone on file: channel is skipped, not failed
	res := svc.SendUserReminder(UserReminderParams{
		UserID:             uuid.New(),
		UserName:           "Dan",
		UserEmail:          "dan@example.com",
		DaysBeforeDelivery: 1,
		SendEmail:          true,
		SendSMS:            true,
	})

	assert.True(t, res.Success)
	assert.Len(t, email.sent, 1)
	assert.Empty(t, sms.sent)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.NotificationStatusSent, logs.entries[0].Status)
}

func TestNotifyAdminMissingSelection(t *testing.T) {
	svc, logs, email, _ := newTestNotifier(ChannelResult{Success: true}, ChannelResult{Success: true})

	userID := uuid.New()
	res := svc.NotifyAdminMissingSelection(MissingSelectionParams{
		AdminEmail: "admin@foxfood.fr",
		SendEmail:  true,
		UserID:     userID,
		UserName:   "Alice",
		UserEmail:  "alice@example.com",
		DaysLeft:   2,
	})

	assert.True(t, res.Success)
	require.Len(t, email.sent, 1)
	assert.Equal(t, "admin@foxfood.fr", email.sent[0].To)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, models.NotificationTypeMissingSelection, entry.NotificationType)
	assert.Nil(t, entry.RecipientUserID)
	require.NotNil(t, entry.AboutUserID)
	assert.Equal(t, userID, *entry.AboutUserID)
}

func TestNotifyAdminOnSelectionListsDishes(t *testing.T) {
	svc, logs, email, _ := newTestNotifier(ChannelResult{Success: true}, ChannelResult{Success: true})

	res := svc.NotifyAdminOnSelection(AdminSelectionParams{
		AdminEmail:     "admin@foxfood.fr",
		SendEmail:      true,
		UserID:         uuid.New(),
		UserName:       "Alice",
		UserEmail:      "alice@example.com",
		SelectedDishes: []string{"Lasagnes", "Ratatouille"},
	})

	assert.True(t, res.Success)
	require.Len(t, email.sent, 1)
	assert.Contains(t, email.sent[0].HTML, "Lasagnes")
	assert.Contains(t, email.sent[0].HTML, "Ratatouille")

	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.NotificationTypeAdminSelection, logs.entries[0].NotificationType)
}

func TestNotifyAdminCustomDishDetailedIncludesIngredients(t *testing.T) {
	svc, _, email, _ := newTestNotifier(ChannelResult{Success: true}, ChannelResult{Success: true})

	svc.NotifyAdminCustomDish(CustomDishParams{
		AdminEmail:  "admin@foxfood.fr",
		SendEmail:   true,
		UserID:      uuid.New(),
		UserName:    "Alice",
		UserEmail:   "alice@example.com",
		DishName:    "Couscous",
		Description: "Comme à la maison",
		IsDetailed:  true,
		Ingredients: []string{"semoule", "pois chiches"},
	})

	require.Len(t, email.sent, 1)
	assert.Contains(t, email.sent[0].HTML, "semoule")
	assert.Contains(t, email.sent[0].HTML, "Demande détaillée")
}

func TestSimulatedChannelCountsAsSuccess(t *testing.T) {
	svc, logs, _, _ := newTestNotifier(
		ChannelResult{Success: true, Simulated: true},
		ChannelResult{Success: true, Simulated: true},
	)

	res := svc.SendUserReminder(UserReminderParams{
		UserID:             uuid.New(),
		UserName:           "Eve",
		UserEmail:          "eve@example.com",
		UserPhone:          "+33600000002",
		DaysBeforeDelivery: 1,
		SendEmail:          true,
		SendSMS:            true,
	})

	assert.True(t, res.Success)
	assert.True(t, res.Email.Simulated)
	assert.True(t, res.SMS.Simulated)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.NotificationStatusSent, logs.entries[0].Status)
}
