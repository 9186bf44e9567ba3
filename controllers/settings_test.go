package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func settingsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", uuid.New().String())
	})
	r.POST("/api/settings", SaveSettings)
	return r
}

func postSettings(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := settingsRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// All rejections below happen before any database access.
func TestSaveSettingsValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "unrecognized weekday",
			body: `{"delivery_day":"Wednesday","delivery_time_slot":"matin",
				"reminders":[{"days_before":3,"enabled":true,"send_email":true}]}`,
		},
		{
			name: "no enabled reminder",
			body: `{"delivery_day":"Mercredi","delivery_time_slot":"matin",
				"reminders":[{"days_before":3,"enabled":false,"send_email":true}]}`,
		},
		{
			name: "enabled reminder without channel",
			body: `{"delivery_day":"Mercredi","delivery_time_slot":"matin",
				"reminders":[{"days_before":3,"enabled":true}]}`,
		},
		{
			name: "sms without phone",
			body: `{"delivery_day":"Mercredi","delivery_time_slot":"matin",
				"reminders":[{"days_before":3,"enabled":true,"send_sms":true}]}`,
		},
		{
			name: "duplicate offsets",
			body: `{"delivery_day":"Mercredi","delivery_time_slot":"matin",
				"reminders":[{"days_before":3,"enabled":true,"send_email":true},
				{"days_before":3,"enabled":true,"send_email":true}]}`,
		},
		{
			name: "offset out of bounds",
			body: `{"delivery_day":"Mercredi","delivery_time_slot":"matin",
				"reminders":[{"days_before":6,"enabled":true,"send_email":true}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postSettings(t, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
