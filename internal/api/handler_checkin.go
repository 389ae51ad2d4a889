package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ceu-checkin-backend/internal/model"
	"ceu-checkin-backend/internal/notification"
	"ceu-checkin-backend/internal/parse"
)

type checkinRequest struct {
	BadgeID string `json:"badge_id" binding:"required"`
}

// PostCheckin handles one badge scan, whether it came from the QR reader or
// was typed by hand. The badge must be numeric; the scan is stamped with the
// current time in the conference timezone and appended to the scan log.
// Whether this scan means "entered" or "left" is not decided here; the report
// engine reconstructs that after the fact.
func (h *Handler) PostCheckin(c *gin.Context) {
	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	badge, err := parse.BadgeID(req.BadgeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().In(h.schedule.Location())
	badgeStr := strconv.FormatInt(badge, 10)
	if err := h.store.AppendScan(c.Request.Context(), badgeStr, now.Format(time.RFC3339)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record scan"})
		return
	}

	name := fmt.Sprintf("<unregistered %d>", badge)
	registered := false
	var attendee model.Attendee
	err = h.store.DB().WithContext(c.Request.Context()).First(&attendee, badge).Error
	switch {
	case err == nil:
		name = attendee.Name
		registered = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		// An unknown badge is a valid first-class scan; it just renders as
		// unregistered in the reports.
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up attendee"})
		return
	}

	if h.pool != nil {
		h.pool.Dispatch(notification.CheckIn{BadgeID: badge, Name: name})
	}

	c.JSON(http.StatusCreated, gin.H{
		"badge_id":   badge,
		"name":       name,
		"registered": registered,
		"timestamp":  now.Format(time.RFC3339),
	})
}
