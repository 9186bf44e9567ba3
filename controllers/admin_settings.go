package controllers

import (
	"errors"
	"net/http"

	"foxfood-backend/config"
	"foxfood-backend/models"
	"foxfood-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminSettingsInput struct {
	NotificationEmail          string `json:"notification_email"`
	NotificationPhone          string `json:"notification_phone"`
	NotificationPhoneSecondary string `json:"notification_phone_secondary"`
	SendEmail                  *bool  `json:"send_email"`
	SendSMS                    *bool  `json:"send_sms"`
	NotifyOnSelection          *bool  `json:"notify_on_selection"`
	NotifyOnMissingSelection   *bool  `json:"notify_on_missing_selection"`
	NotifyOnCustomDish         *bool  `json:"notify_on_custom_dish"`
	DailySummary               *bool  `json:"daily_summary"`
	AutoReminderDaysBefore     int    `json:"auto_reminder_days_before"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// GetAdminSettings returns the admin's notification settings, with
// defaults when none are stored yet.
func GetAdminSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var settings models.AdminSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			var user models.User
			config.DB.First(&user, "id = ?", userID)
			c.JSON(http.StatusOK, gin.H{
				"notification_email":           user.Email,
				"notification_phone":           "",
				"notification_phone_secondary": "",
				"send_email":                   true,
				"send_sms":                     false,
				"notify_on_selection":          true,
				"notify_on_missing_selection":  true,
				"notify_on_custom_dish":        true,
				"daily_summary":                false,
				"auto_reminder_days_before":    2,
			})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SaveAdminSettings upserts the admin's notification settings.
func SaveAdminSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input AdminSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sendEmail := boolOr(input.SendEmail, true)
	sendSMS := boolOr(input.SendSMS, false)

	if sendEmail && input.NotificationEmail == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Email required when email notifications are enabled")
		return
	}
	if sendSMS && input.NotificationPhone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone required when SMS notifications are enabled")
		return
	}
	if !sendEmail && !sendSMS {
		utils.RespondWithError(c, http.StatusBadRequest, "At least one notification method must be enabled")
		return
	}

	daysBefore := input.AutoReminderDaysBefore
	if daysBefore == 0 {
		daysBefore = 2
	}
	if daysBefore < 1 || daysBefore > 5 {
		utils.RespondWithError(c, http.StatusBadRequest, "Reminder delay must be between 1 and 5 days")
		return
	}

	var settings models.AdminSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	settings.UserID = userID
	settings.NotificationEmail = input.NotificationEmail
	settings.NotificationPhone = input.NotificationPhone
	settings.NotificationPhoneSecondary = input.NotificationPhoneSecondary
	settings.SendEmail = sendEmail
	settings.SendSMS = sendSMS
	settings.NotifyOnSelection = boolOr(input.NotifyOnSelection, true)
	settings.NotifyOnMissingSelection = boolOr(input.NotifyOnMissingSelection, true)
	settings.NotifyOnCustomDish = boolOr(input.NotifyOnCustomDish, true)
	settings.DailySummary = boolOr(input.DailySummary, false)
	settings.AutoReminderDaysBefore = daysBefore

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Admin settings saved",
		"settings": settings,
	})
}
