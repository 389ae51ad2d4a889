package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ceu-checkin-backend/internal/model"
	"ceu-checkin-backend/internal/parse"
	"ceu-checkin-backend/internal/report"
)

type registerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// PostAttendee registers a new attendee. The badge number is assigned by the
// store (highest existing badge plus one) and returned to the caller so the
// front desk can print it.
func (h *Handler) PostAttendee(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	attendee, err := h.store.RegisterAttendee(c.Request.Context(), name, strings.TrimSpace(req.Email))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register attendee"})
		return
	}

	c.JSON(http.StatusCreated, attendee)
}

// GetAttendees returns the full registry ordered by badge number.
func (h *Handler) GetAttendees(c *gin.Context) {
	attendees, err := h.store.ListAttendees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list attendees"})
		return
	}
	if attendees == nil {
		attendees = []model.Attendee{}
	}
	c.JSON(http.StatusOK, attendees)
}

// attendedSessionResponse is one catalog entry the badge earned credit for.
type attendedSessionResponse struct {
	Title   string  `json:"title"`
	Speaker string  `json:"speaker"`
	Credits float64 `json:"credits"`
}

// GetAttendeeCredits resolves one badge's credited sessions against the CEU
// catalog and totals the hours. This is the feed for certificate generation,
// which happens outside this service.
func (h *Handler) GetAttendeeCredits(c *gin.Context) {
	badge, err := parse.BadgeID(c.Param("badge_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid badge id"})
		return
	}

	scans, registry, ok := h.loadReportInputs(c)
	if !ok {
		return
	}

	intervals := h.engine.Intervals(scans)
	rows := h.engine.Credit(intervals, h.schedule.Windows(), []int64{badge})
	attended := report.AttendedPublished(rows, h.schedule.Catalog())

	sessions := make([]attendedSessionResponse, 0, len(attended))
	for _, p := range attended {
		sessions = append(sessions, attendedSessionResponse{
			Title:   p.Title,
			Speaker: p.Speaker,
			Credits: p.Credits,
		})
	}

	name := ""
	email := ""
	if a, found := registry[badge]; found {
		name = a.Name
		email = a.Email
	}

	c.JSON(http.StatusOK, gin.H{
		"badge_id":    badge,
		"name":        name,
		"email":       email,
		"sessions":    sessions,
		"total_hours": report.TotalHours(attended),
	})
}
