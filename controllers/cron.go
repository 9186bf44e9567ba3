package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"foxfood-backend/services"

	"github.com/gin-gonic/gin"
)

// SendReminders is the external trigger for the daily reminder run,
// guarded by a shared secret bearer token (CRON_SECRET).
func SendReminders(c *gin.Context) {
	secret := os.Getenv("CRON_SECRET")
	auth := c.GetHeader("Authorization")

	if secret == "" || auth != "Bearer "+secret {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":   false,
			"error":     "Unauthorized",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	results, err := reminderProcessor.ProcessReminders()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrRunInProgress) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"results":   results,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
