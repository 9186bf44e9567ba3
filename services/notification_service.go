// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"foxfood-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLogStore persists dispatch audit entries.
type NotificationLogStore interface {
	Create(entry *models.NotificationLog) error
}

type gormNotificationLogStore struct {
	db *gorm.DB
}

func (s *gormNotificationLogStore) Create(entry *models.NotificationLog) error {
	return s.db.Create(entry).Error
}

// DispatchResult aggregates one dispatch: Success is true only when
// every requested channel succeeded. Per-channel outcomes are kept for
// callers that need them.
type DispatchResult struct {
	Success bool
	Email   ChannelResult
	SMS     ChannelResult
}

// NotificationService renders and dispatches every notification type and
// writes exactly one log entry per dispatch. Channel providers are
// injected so tests can substitute doubles.
type NotificationService struct {
	logs   NotificationLogStore
	email  EmailSender
	sms    SMSSender
	appURL string
}

func NewNotificationService(db *gorm.DB, email EmailSender, sms SMSSender) *NotificationService {
	return &NotificationService{
		logs:   &gormNotificationLogStore{db: db},
		email:  email,
		sms:    sms,
		appURL: os.Getenv("APP_URL"),
	}
}

// NewNotificationServiceWithStore is used by tests to inject the log store.
func NewNotificationServiceWithStore(logs NotificationLogStore, email EmailSender, sms SMSSender, appURL string) *NotificationService {
	return &NotificationService{logs: logs, email: email, sms: sms, appURL: appURL}
}

type dispatchRequest struct {
	notificationType string
	recipientUserID  *uuid.UUID
	aboutUserID      *uuid.UUID
	email            string
	phone            string
	sendEmail        bool
	sendSMS          bool
	subject          string
	html             string
	sms              string
}

func (s *NotificationService) dispatch(req dispatchRequest) DispatchResult {
	emailResult := ChannelResult{Success: true}
	smsResult := ChannelResult{Success: true}

	if req.sendEmail && req.email != "" {
		emailResult = s.email.Send(EmailMessage{To: req.email, Subject: req.subject, HTML: req.html})
	}
	if req.sendSMS && req.phone != "" {
		smsResult = s.sms.Send(SMSMessage{To: req.phone, Message: req.sms})
	}

	method := models.NotificationMethodSMS
	if req.sendEmail && req.sendSMS {
		method = models.NotificationMethodBoth
	} else if req.sendEmail {
		method = models.NotificationMethodEmail
	}

	status := models.NotificationStatusSent
	errorMsg := ""
	if !emailResult.Success {
		status = models.NotificationStatusFailed
		errorMsg = emailResult.Error
	} else if !smsResult.Success {
		status = models.NotificationStatusFailed
		errorMsg = smsResult.Error
	}

	entry := models.NotificationLog{
		NotificationType: req.notificationType,
		RecipientUserID:  req.recipientUserID,
		AboutUserID:      req.aboutUserID,
		RecipientEmail:   req.email,
		RecipientPhone:   req.phone,
		Method:           method,
		Subject:          req.subject,
		Content:          req.html,
		Status:           status,
		ErrorMessage:     errorMsg,
		SentAt:           time.Now(),
	}
	if err := s.logs.Create(&entry); err != nil {
		log.Printf("Failed to log %s notification: %v", req.notificationType, err)
	}

	return DispatchResult{
		Success: emailResult.Success && smsResult.Success,
		Email:   emailResult,
		SMS:     smsResult,
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

type UserReminderParams struct {
	UserID             uuid.UUID
	UserName           string
	UserEmail          string
	UserPhone          string
	DaysBeforeDelivery int
	SendEmail          bool
	SendSMS            bool
}

// SendUserReminder nudges a client who has not selected dishes yet.
func (s *NotificationService) SendUserReminder(p UserReminderParams) DispatchResult {
	subject := fmt.Sprintf("Rappel: Sélectionnez vos plats - %d jour%s restant%s",
		p.DaysBeforeDelivery, plural(p.DaysBeforeDelivery), plural(p.DaysBeforeDelivery))

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Bonjour %s</h2>
  <p>Emeric passe dans <strong>%d jour%s</strong> !</p>
  <p>N'oubliez pas de sélectionner vos plats pour cette semaine.</p>
  <p style="margin: 30px 0;">
    <a href="%s" style="background-color: #ea580c; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; display: inline-block;">Choisir mes plats</a>
  </p>
  <p style="color: #666; font-size: 14px;">À bientôt,<br/>L'équipe FoxFood</p>
</div>`, p.UserName, p.DaysBeforeDelivery, plural(p.DaysBeforeDelivery), s.appURL)

	sms := fmt.Sprintf("Bonjour %s, Emeric passe dans %d jour(s). N'oubliez pas de sélectionner vos plats: %s",
		p.UserName, p.DaysBeforeDelivery, s.appURL)

	userID := p.UserID
	return s.dispatch(dispatchRequest{
		notificationType: models.NotificationTypeUserReminder,
		recipientUserID:  &userID,
		aboutUserID:      &userID,
		email:            p.UserEmail,
		phone:            p.UserPhone,
		sendEmail:        p.SendEmail,
		sendSMS:          p.SendSMS,
		subject:          subject,
		html:             html,
		sms:              sms,
	})
}

type AdminSelectionParams struct {
	AdminEmail     string
	AdminPhone     string
	SendEmail      bool
	SendSMS        bool
	UserID         uuid.UUID
	UserName       string
	UserEmail      string
	SelectedDishes []string
}

// NotifyAdminOnSelection tells the admin a client finished their weekly selection.
func (s *NotificationService) NotifyAdminOnSelection(p AdminSelectionParams) DispatchResult {
	subject := fmt.Sprintf("%s a fait sa sélection", p.UserName)

	var dishList strings.Builder
	for _, d := range p.SelectedDishes {
		fmt.Fprintf(&dishList, "<li>%s</li>", d)
	}
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Nouvelle sélection</h2>
  <p><strong>%s</strong> (%s) a terminé sa sélection :</p>
  <ul style="margin: 20px 0;">%s</ul>
  <p style="color: #666; font-size: 14px;">FoxFood - Notifications admin</p>
</div>`, p.UserName, p.UserEmail, dishList.String())

	sms := fmt.Sprintf("%s a fait sa sélection de %d plat(s).", p.UserName, len(p.SelectedDishes))

	aboutID := p.UserID
	return s.dispatch(dispatchRequest{
		notificationType: models.NotificationTypeAdminSelection,
		aboutUserID:      &aboutID,
		email:            p.AdminEmail,
		phone:            p.AdminPhone,
		sendEmail:        p.SendEmail,
		sendSMS:          p.SendSMS,
		subject:          subject,
		html:             html,
		sms:              sms,
	})
}

type MissingSelectionParams struct {
	AdminEmail string
	AdminPhone string
	SendEmail  bool
	SendSMS    bool
	UserID     uuid.UUID
	UserName   string
	UserEmail  string
	DaysLeft   int
}

// NotifyAdminMissingSelection alerts the admin that a client has not
// selected dishes close to their delivery day.
func (s *NotificationService) NotifyAdminMissingSelection(p MissingSelectionParams) DispatchResult {
	subject := fmt.Sprintf("%s n'a pas encore fait sa sélection", p.UserName)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Sélection manquante</h2>
  <p><strong>%s</strong> (%s) n'a pas encore sélectionné ses plats.</p>
  <p>Son passage est prévu dans <strong>%d jour%s</strong>.</p>
  <p style="color: #666; font-size: 14px;">FoxFood - Notifications admin</p>
</div>`, p.UserName, p.UserEmail, p.DaysLeft, plural(p.DaysLeft))

	sms := fmt.Sprintf("%s n'a pas encore fait sa sélection. Passage dans %d jour(s).", p.UserName, p.DaysLeft)

	aboutID := p.UserID
	return s.dispatch(dispatchRequest{
		notificationType: models.NotificationTypeMissingSelection,
		aboutUserID:      &aboutID,
		email:            p.AdminEmail,
		phone:            p.AdminPhone,
		sendEmail:        p.SendEmail,
		sendSMS:          p.SendSMS,
		subject:          subject,
		html:             html,
		sms:              sms,
	})
}

type CustomDishParams struct {
	AdminEmail  string
	AdminPhone  string
	SendEmail   bool
	SendSMS     bool
	UserID      uuid.UUID
	UserName    string
	UserEmail   string
	DishName    string
	Description string
	IsDetailed  bool
	Ingredients []string
}

// NotifyAdminCustomDish tells the admin a client requested a custom dish.
func (s *NotificationService) NotifyAdminCustomDish(p CustomDishParams) DispatchResult {
	subject := fmt.Sprintf("Nouvelle demande de plat personnalisé de %s", p.UserName)

	requestType := "Demande simple"
	ingredientsList := ""
	if p.IsDetailed {
		requestType = "Demande détaillée"
		if len(p.Ingredients) > 0 {
			var items strings.Builder
			for _, i := range p.Ingredients {
				fmt.Fprintf(&items, "<li>%s</li>", i)
			}
			ingredientsList = fmt.Sprintf("<p><strong>Ingrédients suggérés :</strong></p><ul>%s</ul>", items.String())
		}
	}

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Nouvelle demande de plat</h2>
  <p><strong>%s</strong> (%s) a demandé un plat personnalisé :</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Plat :</strong> %s</p>
    <p><strong>Description :</strong> %s</p>
    <p><strong>Type :</strong> %s</p>
    %s
  </div>
  <p style="color: #666; font-size: 14px;">FoxFood - Notifications admin</p>
</div>`, p.UserName, p.UserEmail, p.DishName, p.Description, requestType, ingredientsList)

	sms := fmt.Sprintf("%s a demandé un plat personnalisé: %s", p.UserName, p.DishName)

	aboutID := p.UserID
	return s.dispatch(dispatchRequest{
		notificationType: models.NotificationTypeCustomDish,
		aboutUserID:      &aboutID,
		email:            p.AdminEmail,
		phone:            p.AdminPhone,
		sendEmail:        p.SendEmail,
		sendSMS:          p.SendSMS,
		subject:          subject,
		html:             html,
		sms:              sms,
	})
}
