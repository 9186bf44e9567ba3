package controllers

import (
	"net/http"

	"foxfood-backend/config"
	"foxfood-backend/models"
	"foxfood-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReminderInput struct {
	DaysBefore int  `json:"days_before" binding:"required,min=1,max=5"`
	Enabled    bool `json:"enabled"`
	SendEmail  bool `json:"send_email"`
	SendSMS    bool `json:"send_sms"`
}

type SettingsInput struct {
	DeliveryDay          string          `json:"delivery_day" binding:"required"`
	DeliveryTimeSlot     string          `json:"delivery_time_slot" binding:"required"`
	NotificationEmail    string          `json:"notification_email"`
	NotificationPhone    string          `json:"notification_phone"`
	ReceiveNotifications *bool           `json:"receive_notifications"`
	Reminders            []ReminderInput `json:"reminders" binding:"required"`
}

// GetSettings returns the user's delivery preferences and reminder slots.
func GetSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var reminders []models.UserReminder
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("days_before DESC").
		Find(&reminders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch reminders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"delivery_day":          user.DeliveryDay,
		"delivery_time_slot":    user.DeliveryTimeSlot,
		"notification_email":    user.NotificationEmail,
		"notification_phone":    user.NotificationPhone,
		"receive_notifications": user.ReceiveNotifications,
		"settings_completed":    user.SettingsCompleted,
		"reminders":             reminders,
	})
}

// SaveSettings updates delivery preferences and replaces the reminder
// slots. Write-time invariants: the delivery day must be a recognized
// weekday, at least one reminder must be enabled, and every enabled
// reminder needs at least one channel with a matching address.
func SaveSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.IsValidWeekday(input.DeliveryDay) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid delivery day")
		return
	}

	enabledCount := 0
	seenDays := map[int]bool{}
	for _, r := range input.Reminders {
		if seenDays[r.DaysBefore] {
			utils.RespondWithError(c, http.StatusBadRequest, "Duplicate reminder offset")
			return
		}
		seenDays[r.DaysBefore] = true

		if !r.Enabled {
			continue
		}
		enabledCount++
		if !r.SendEmail && !r.SendSMS {
			utils.RespondWithError(c, http.StatusBadRequest, "Enabled reminders need at least one delivery method")
			return
		}
		if r.SendSMS && input.NotificationPhone == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Phone number required for SMS reminders")
			return
		}
		if r.SendSMS && !utils.ValidatePhone(input.NotificationPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
	}
	if enabledCount == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "At least one reminder must be enabled")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"delivery_day":       input.DeliveryDay,
			"delivery_time_slot": input.DeliveryTimeSlot,
			"notification_email": input.NotificationEmail,
			"notification_phone": input.NotificationPhone,
			"settings_completed": true,
		}
		if input.ReceiveNotifications != nil {
			updates["receive_notifications"] = *input.ReceiveNotifications
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.UserReminder{}).Error; err != nil {
			return err
		}
		for _, r := range input.Reminders {
			reminder := models.UserReminder{
				UserID:     userID,
				DaysBefore: r.DaysBefore,
				Enabled:    r.Enabled,
				SendEmail:  r.SendEmail,
				SendSMS:    r.SendSMS,
			}
			if err := tx.Create(&reminder).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}
