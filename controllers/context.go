package controllers

import (
	"net/http"

	"foxfood-backend/services"
	"foxfood-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReminderProcessor triggers one reminder run.
type ReminderProcessor interface {
	ProcessReminders() (*services.ReminderRunResults, error)
}

var (
	notifier          *services.NotificationService
	reminderProcessor ReminderProcessor
)

// Setup wires the services the controllers depend on. Called once from main.
func Setup(n *services.NotificationService, r ReminderProcessor) {
	notifier = n
	reminderProcessor = r
}

// currentUserID extracts the authenticated user's id set by the auth
// middleware. Responds with an error and returns false when missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID in context")
		return uuid.Nil, false
	}
	return id, true
}
