package report

import (
	"sort"
	"time"

	"ceu-checkin-backend/internal/schedule"
)

// CreditRow is one credit decision for a (badge, scheduled block) pair.
type CreditRow struct {
	BadgeID      int64
	SessionTitle string
	Date         time.Time // midnight, conference timezone
	Attended     bool
}

// overlaps reports strict overlap between an interval and a session window.
// Touching endpoints do not count: an interval ending exactly when a session
// starts earns no credit.
func overlaps(iv Interval, w schedule.Window) bool {
	return iv.Start.Before(w.End) && iv.End.After(w.Start)
}

// Credit decides, for every badge in badges and every window, whether any of
// the badge's reconstructed intervals strictly overlaps the window. A badge
// is credited at most once per window no matter how many of its intervals
// overlap it; a badge with no intervals near a window gets an explicit
// attended=false row rather than no row.
func (e *Engine) Credit(intervals []Interval, windows []schedule.Window, badges []int64) []CreditRow {
	byBadge := make(map[int64][]Interval)
	for _, iv := range intervals {
		byBadge[iv.BadgeID] = append(byBadge[iv.BadgeID], iv)
	}

	sorted := append([]int64(nil), badges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var rows []CreditRow
	for _, b := range sorted {
		for _, w := range windows {
			attended := false
			for _, iv := range byBadge[b] {
				if overlaps(iv, w) {
					attended = true
					break
				}
			}
			rows = append(rows, CreditRow{
				BadgeID:      b,
				SessionTitle: w.Title,
				Date:         e.day(w.Start),
				Attended:     attended,
			})
		}
	}
	return rows
}

// AttendedPublished resolves a single badge's credit rows against the CEU
// catalog. A published session counts as attended when at least one of the
// scheduled blocks it is made of was credited.
func AttendedPublished(rows []CreditRow, catalog []schedule.Published) []schedule.Published {
	credited := make(map[string]bool)
	for _, r := range rows {
		if r.Attended {
			credited[r.SessionTitle] = true
		}
	}

	var attended []schedule.Published
	for _, p := range catalog {
		for _, block := range p.Blocks {
			if credited[block] {
				attended = append(attended, p)
				break
			}
		}
	}
	return attended
}

// TotalHours sums the credit-hour weights of the attended published sessions.
func TotalHours(attended []schedule.Published) float64 {
	var total float64
	for _, p := range attended {
		total += p.Credits
	}
	return total
}
