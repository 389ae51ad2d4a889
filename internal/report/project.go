package report

import (
	"fmt"
	"sort"
	"time"

	"ceu-checkin-backend/internal/model"
)

// Column formats, kept as the admin dashboard has always shown them.
const (
	dateFormat  = "January 2, 2006"
	clockFormat = "03:04 PM"
	scanFormat  = "2006-01-02 15:04:05"
)

// MaxListedScans caps the flattened listing at ten positional scan columns.
// Overflow is silently truncated; it is a capacity limit, not an error.
const MaxListedScans = 10

// lookup resolves a badge against the registry. Badges that were scanned but
// never registered render a placeholder instead of failing the report.
func lookup(badge int64, registry map[int64]model.Attendee) (name, email string) {
	if a, ok := registry[badge]; ok {
		return a.Name, a.Email
	}
	return fmt.Sprintf("<unregistered %d>", badge), ""
}

// PunchRow is one line of the daily punch summary: the first and last time a
// badge was seen on a day, independent of how scans were paired.
type PunchRow struct {
	BadgeID  int64  `json:"badge_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// PunchSummary reports, for every (badge, day) with at least one scan, the
// earliest and latest raw scan times. Rows are ordered by date, then badge.
func (e *Engine) PunchSummary(scans []Scan, registry map[int64]model.Attendee) []PunchRow {
	type key struct {
		day   time.Time
		badge int64
	}
	type bounds struct {
		first time.Time
		last  time.Time
	}

	seen := make(map[key]bounds)
	for _, s := range scans {
		k := key{day: e.day(s.At), badge: s.BadgeID}
		b, ok := seen[k]
		if !ok {
			seen[k] = bounds{first: s.At, last: s.At}
			continue
		}
		if s.At.Before(b.first) {
			b.first = s.At
		}
		if s.At.After(b.last) {
			b.last = s.At
		}
		seen[k] = b
	}

	keys := make([]key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].day.Equal(keys[j].day) {
			return keys[i].day.Before(keys[j].day)
		}
		return keys[i].badge < keys[j].badge
	})

	rows := make([]PunchRow, 0, len(keys))
	for _, k := range keys {
		b := seen[k]
		name, email := lookup(k.badge, registry)
		rows = append(rows, PunchRow{
			BadgeID:  k.badge,
			Name:     name,
			Email:    email,
			Date:     k.day.Format(dateFormat),
			CheckIn:  b.first.In(e.loc).Format(clockFormat),
			CheckOut: b.last.In(e.loc).Format(clockFormat),
		})
	}
	return rows
}

// CreditTableRow is a credit decision joined with registry info for display.
type CreditTableRow struct {
	BadgeID      int64  `json:"badge_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	SessionTitle string `json:"session_title"`
	Attended     bool   `json:"attended"`
	Date         string `json:"date"`
}

// CreditTable joins credit rows with attendee names and emails.
func (e *Engine) CreditTable(rows []CreditRow, registry map[int64]model.Attendee) []CreditTableRow {
	out := make([]CreditTableRow, 0, len(rows))
	for _, r := range rows {
		name, email := lookup(r.BadgeID, registry)
		out = append(out, CreditTableRow{
			BadgeID:      r.BadgeID,
			Name:         name,
			Email:        email,
			SessionTitle: r.SessionTitle,
			Attended:     r.Attended,
			Date:         r.Date.Format("2006-01-02"),
		})
	}
	return out
}

// FlatRow is one badge's line in the flattened scan listing: registry info
// plus up to ten ordered scan times in fixed positional columns.
type FlatRow struct {
	BadgeID int64    `json:"badge_id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Scans   []string `json:"scans"`
}

// FlattenedListing builds one row per scanned badge, its scans ordered
// earliest to latest. Every row carries exactly MaxListedScans columns;
// unused columns are empty and scans past the cap are dropped. Rows are
// ordered numerically by badge.
func (e *Engine) FlattenedListing(scans []Scan, registry map[int64]model.Attendee) []FlatRow {
	byBadge := make(map[int64][]time.Time)
	for _, s := range scans {
		byBadge[s.BadgeID] = append(byBadge[s.BadgeID], s.At)
	}

	badges := make([]int64, 0, len(byBadge))
	for b := range byBadge {
		badges = append(badges, b)
	}
	sort.Slice(badges, func(i, j int) bool { return badges[i] < badges[j] })

	rows := make([]FlatRow, 0, len(badges))
	for _, b := range badges {
		times := byBadge[b]
		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

		cols := make([]string, MaxListedScans)
		for i := 0; i < len(times) && i < MaxListedScans; i++ {
			cols[i] = times[i].In(e.loc).Format(scanFormat)
		}

		name, email := lookup(b, registry)
		rows = append(rows, FlatRow{BadgeID: b, Name: name, Email: email, Scans: cols})
	}
	return rows
}
