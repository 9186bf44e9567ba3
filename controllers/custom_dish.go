package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"foxfood-backend/config"
	"foxfood-backend/models"
	"foxfood-backend/services"
	"foxfood-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomDishInput struct {
	DishName             string   `json:"dish_name" binding:"required"`
	Description          string   `json:"description" binding:"required"`
	SuggestedIngredients []string `json:"suggested_ingredients"`
	IsDetailed           bool     `json:"is_detailed"`
}

type CustomDishReviewInput struct {
	Status     string `json:"status" binding:"required,oneof=pending approved rejected"`
	AdminNotes string `json:"admin_notes"`
}

// GetMyCustomDishes lists the authenticated user's requests.
func GetMyCustomDishes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var requests []models.CustomDishRequest
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// CreateCustomDish records a custom dish request and notifies the admin
// (best effort).
func CreateCustomDish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CustomDishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	dishName := strings.TrimSpace(input.DishName)
	description := strings.TrimSpace(input.Description)
	if dishName == "" || description == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Dish name and description are required")
		return
	}

	request := models.CustomDishRequest{
		UserID:               userID,
		DishName:             dishName,
		Description:          description,
		SuggestedIngredients: input.SuggestedIngredients,
		IsDetailed:           input.IsDetailed,
		Status:               models.CustomDishStatusPending,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create request")
		return
	}

	notifyAdminCustomDish(userID, &request)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Request created",
		"request": request,
	})
}

func notifyAdminCustomDish(userID uuid.UUID, request *models.CustomDishRequest) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("Admin notification skipped, user lookup failed: %v", err)
		return
	}

	var settings models.AdminSettings
	err := config.DB.Where("notify_on_custom_dish = ?", true).First(&settings).Error
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

	adminEmail := settings.NotificationEmail
	if adminEmail == "" {
		adminEmail = admin.Email
	}

	notifier.NotifyAdminCustomDish(services.CustomDishParams{
		AdminEmail:  adminEmail,
		AdminPhone:  settings.NotificationPhone,
		SendEmail:   settings.SendEmail,
		SendSMS:     settings.SendSMS,
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		DishName:    request.DishName,
		Description: request.Description,
		IsDetailed:  request.IsDetailed,
		Ingredients: request.SuggestedIngredients,
	})
}

// GetAllCustomDishes lists every request for review, optionally by status.
func GetAllCustomDishes(c *gin.Context) {
	query := config.DB.Preload("User").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.CustomDishRequest
	if err := query.Find(&requests).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateCustomDish sets the review status and notes on a request.
func UpdateCustomDish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var input CustomDishReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var request models.CustomDishRequest
	if err := config.DB.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Request not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	request.Status = input.Status
	request.AdminNotes = input.AdminNotes
	if err := config.DB.Save(&request).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update request")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request updated",
		"request": request,
	})
}

// DeleteCustomDish removes a request.
func DeleteCustomDish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	result := config.DB.Delete(&models.CustomDishRequest{}, "id = ?", id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete request")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Request not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
