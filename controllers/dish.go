package controllers

import (
	"errors"
	"net/http"

	"foxfood-backend/config"
	"foxfood-backend/models"
	"foxfood-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DishInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Active      *bool    `json:"active"`
}

// GetDishes lists the catalog, optionally filtered by category and active flag.
func GetDishes(c *gin.Context) {
	query := config.DB.Order("category, name")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	var dishes []models.Dish
	if err := query.Find(&dishes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch dishes")
		return
	}

	c.JSON(http.StatusOK, dishes)
}

func CreateDish(c *gin.Context) {
	var input DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	dish := models.Dish{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Ingredients: input.Ingredients,
		Active:      true,
	}
	if input.Active != nil {
		dish.Active = *input.Active
	}

	if err := config.DB.Create(&dish).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create dish")
		return
	}

	c.JSON(http.StatusCreated, dish)
}

func UpdateDish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dish ID")
		return
	}

	var input DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Dish not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	dish.Name = input.Name
	dish.Category = input.Category
	dish.Description = input.Description
	dish.Ingredients = input.Ingredients
	if input.Active != nil {
		dish.Active = *input.Active
	}

	if err := config.DB.Save(&dish).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update dish")
		return
	}

	c.JSON(http.StatusOK, dish)
}

func DeleteDish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dish ID")
		return
	}

	result := config.DB.Delete(&models.Dish{}, "id = ?", id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete dish")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Dish not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
}

// ImportDishes bulk-loads a catalog; existing name+category pairs are skipped.
func ImportDishes(c *gin.Context) {
	var input []DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	imported := 0
	for _, d := range input {
		if d.Name == "" || d.Category == "" {
			continue
		}
		dish := models.Dish{
			Name:        d.Name,
			Category:    d.Category,
			Description: d.Description,
			Ingredients: d.Ingredients,
			Active:      true,
		}
		result := config.DB.
			Where("name = ? AND category = ?", d.Name, d.Category).
			FirstOrCreate(&dish)
		if result.Error != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import dishes")
			return
		}
		if result.RowsAffected > 0 {
			imported++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Import completed",
		"count":   imported,
	})
}
