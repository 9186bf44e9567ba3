package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"foxfood-backend/config"
	"foxfood-backend/models"
	"foxfood-backend/services"
	"foxfood-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SelectionInput struct {
	SelectedDishes   []string `json:"selected_dishes" binding:"required"`
	DeliveryDay      string   `json:"delivery_day" binding:"required"`
	DeliveryTimeSlot string   `json:"delivery_time_slot" binding:"required"`
}

// GetSelection returns the current week's selection, or null.
func GetSelection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	weekStart := utils.WeekStart(time.Now())

	var selection models.WeeklySelection
	err := config.DB.
		Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		First(&selection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch selection")
		}
		return
	}

	c.JSON(http.StatusOK, selection)
}

// SaveSelection upserts the current week's selection and notifies the
// admin (best effort, never blocks the save).
func SaveSelection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input SelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if len(input.SelectedDishes) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "At least one dish is required")
		return
	}
	if len(input.SelectedDishes) > 5 {
		utils.RespondWithError(c, http.StatusBadRequest, "Maximum 5 dishes allowed")
		return
	}
	if !utils.IsValidWeekday(input.DeliveryDay) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid delivery day")
		return
	}

	weekStart := utils.WeekStart(time.Now())

	var selection models.WeeklySelection
	err := config.DB.
		Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		First(&selection).Error
	switch {
	case err == nil:
		selection.DeliveryDay = input.DeliveryDay
		selection.DeliveryTimeSlot = input.DeliveryTimeSlot
		selection.SelectedDishes = input.SelectedDishes
		if err := config.DB.Save(&selection).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save selection")
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		selection = models.WeeklySelection{
			UserID:           userID,
			WeekStartDate:    weekStart,
			DeliveryDay:      input.DeliveryDay,
			DeliveryTimeSlot: input.DeliveryTimeSlot,
			SelectedDishes:   input.SelectedDishes,
			Status:           models.SelectionStatusPending,
		}
		if err := config.DB.Create(&selection).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save selection")
			return
		}
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	notifyAdminSelection(userID, selection.SelectedDishes)

	c.JSON(http.StatusOK, selection)
}

func notifyAdminSelection(userID uuid.UUID, dishIDs models.StringArray) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("Admin notification skipped, user lookup failed: %v", err)
		return
	}

	var settings models.AdminSettings
	err := config.DB.Where("notify_on_selection = ?", true).First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Admin notification skipped: %v", err)
		}
		return
	}

	var admin models.User
	if err := config.DB.First(&admin, "id = ?", settings.UserID).Error; err != nil {
		log.Printf("Admin notification skipped, admin lookup failed: %v", err)
		return
	}

	var dishes []models.Dish
	if err := config.DB.Where("id IN ?", []string(dishIDs)).Find(&dishes).Error; err != nil {
		log.Printf("Admin notification skipped, dish lookup failed: %v", err)
		return
	}
	dishNames := make([]string, 0, len(dishes))
	for _, d := range dishes {
		dishNames = append(dishNames, d.Name)
	}

	adminEmail := settings.NotificationEmail
	if adminEmail == "" {
		adminEmail = admin.Email
	}

	notifier.NotifyAdminOnSelection(services.AdminSelectionParams{
		AdminEmail:     adminEmail,
		AdminPhone:     settings.NotificationPhone,
		SendEmail:      settings.SendEmail,
		SendSMS:        settings.SendSMS,
		UserID:         user.ID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		SelectedDishes: dishNames,
	})
}
