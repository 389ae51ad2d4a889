package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ceu-checkin-backend/internal/model"
	"ceu-checkin-backend/internal/report"
)

// loadReportInputs fetches the full scan log and registry and normalizes the
// scans. Quarantined rows are logged and skipped; a bad row never fails a
// report. Returns ok=false after writing an error response.
func (h *Handler) loadReportInputs(c *gin.Context) ([]report.Scan, map[int64]model.Attendee, bool) {
	events, err := h.store.ListScans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scan log"})
		return nil, nil, false
	}
	attendees, err := h.store.ListAttendees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load registry"})
		return nil, nil, false
	}

	scans, failures := h.engine.Normalize(events)
	for _, f := range failures {
		log.Printf("Quarantined scan row %d (badge %q): %v", f.Raw.ID, f.Raw.BadgeID, f.Err)
	}

	registry := make(map[int64]model.Attendee, len(attendees))
	for _, a := range attendees {
		registry[a.BadgeID] = a
	}
	return scans, registry, true
}

// GetPunchSummary reports first and last scan per badge per day.
func (h *Handler) GetPunchSummary(c *gin.Context) {
	scans, registry, ok := h.loadReportInputs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.engine.PunchSummary(scans, registry))
}

// GetScanListing reports each badge's scans as fixed positional columns.
func (h *Handler) GetScanListing(c *gin.Context) {
	scans, registry, ok := h.loadReportInputs(c)
	if !ok {
		return
	}
	rows := h.engine.FlattenedListing(scans, registry)
	if rows == nil {
		rows = []report.FlatRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// reportDate parses the required ?date=YYYY-MM-DD query parameter as a
// calendar day in the conference timezone.
func (h *Handler) reportDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("2006-01-02", raw, h.schedule.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid date %q, want YYYY-MM-DD", raw)})
		return time.Time{}, false
	}
	return date, true
}

// creditRowsFor computes the day's credit decisions for every badge that is
// either registered or present in the scan log.
func (h *Handler) creditRowsFor(c *gin.Context, date time.Time) ([]report.CreditRow, map[int64]model.Attendee, bool) {
	scans, registry, ok := h.loadReportInputs(c)
	if !ok {
		return nil, nil, false
	}

	windows := h.schedule.WindowsOn(date)
	if len(windows) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("no sessions scheduled for %s", date.Format("2006-01-02")),
			"rows":    []report.CreditTableRow{},
		})
		return nil, nil, false
	}

	seen := make(map[int64]bool)
	var badges []int64
	for b := range registry {
		seen[b] = true
		badges = append(badges, b)
	}
	for _, s := range scans {
		if !seen[s.BadgeID] {
			seen[s.BadgeID] = true
			badges = append(badges, s.BadgeID)
		}
	}

	intervals := h.engine.Intervals(scans)
	return h.engine.Credit(intervals, windows, badges), registry, true
}

// GetCreditReport computes the credit table for one conference day. Days
// without scheduled sessions are reported explicitly rather than as an empty
// table.
func (h *Handler) GetCreditReport(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}

	rows, registry, ok := h.creditRowsFor(c, date)
	if !ok {
		return
	}

	table := h.engine.CreditTable(rows, registry)
	c.JSON(http.StatusOK, gin.H{
		"date": date.Format("2006-01-02"),
		"rows": table,
	})
}

// SaveCreditReport computes the day's credit table and persists it, replacing
// any previously saved report for that day.
func (h *Handler) SaveCreditReport(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}

	rows, _, ok := h.creditRowsFor(c, date)
	if !ok {
		return
	}

	records := make([]model.CreditReport, 0, len(rows))
	for _, r := range rows {
		records = append(records, model.CreditReport{
			BadgeID:      r.BadgeID,
			SessionTitle: r.SessionTitle,
			Attended:     r.Attended,
			ReportDate:   r.Date,
		})
	}

	if err := h.store.SaveCreditReport(c.Request.Context(), date, records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save credit report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"date":  date.Format("2006-01-02"),
		"saved": len(records),
	})
}
