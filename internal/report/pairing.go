package report

import (
	"sort"
	"time"
)

// TimeRange is one reconstructed presence window within a single day.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// PairingPolicy turns one badge-day's ascending scan times into presence
// windows. The raw log carries no enter/leave flag, so every policy is a
// heuristic; an alternative (collapsing rapid double-taps, say) can be
// swapped in without touching the rest of the engine.
type PairingPolicy interface {
	Pair(times []time.Time) []TimeRange
}

// PositionalPolicy pairs scans by position: the first scan of the day opens a
// window, the second closes it, the third opens the next, and so on. An
// unmatched trailing scan is closed at 23:59:59 of the same day, meaning
// "still present at day's end" rather than losing the scan.
type PositionalPolicy struct{}

// Pair implements PairingPolicy.
func (PositionalPolicy) Pair(times []time.Time) []TimeRange {
	var out []TimeRange
	for i := 0; i < len(times); i += 2 {
		start := times[i]
		var end time.Time
		if i+1 < len(times) {
			end = times[i+1]
		} else {
			y, m, d := start.Date()
			end = time.Date(y, m, d, 23, 59, 59, 0, start.Location())
		}
		out = append(out, TimeRange{Start: start, End: end})
	}
	return out
}

// Interval is one presence window attributed to a badge on a calendar day.
// Derived only; never persisted.
type Interval struct {
	BadgeID int64
	Day     time.Time // midnight, conference timezone
	Start   time.Time
	End     time.Time
}

// Intervals groups normalized scans by badge and calendar day, sorts each
// day's scans ascending and applies the pairing policy. Output order is
// deterministic: badge ascending, then day ascending, then chronological
// within the day. A badge with no scans on a day simply has no intervals for
// that day.
func (e *Engine) Intervals(scans []Scan) []Interval {
	type dayScans struct {
		day   time.Time
		times []time.Time
	}
	byBadge := make(map[int64]map[time.Time][]time.Time)
	for _, s := range scans {
		d := e.day(s.At)
		if byBadge[s.BadgeID] == nil {
			byBadge[s.BadgeID] = make(map[time.Time][]time.Time)
		}
		byBadge[s.BadgeID][d] = append(byBadge[s.BadgeID][d], s.At.In(e.loc))
	}

	badges := make([]int64, 0, len(byBadge))
	for b := range byBadge {
		badges = append(badges, b)
	}
	sort.Slice(badges, func(i, j int) bool { return badges[i] < badges[j] })

	var out []Interval
	for _, b := range badges {
		days := make([]dayScans, 0, len(byBadge[b]))
		for d, times := range byBadge[b] {
			days = append(days, dayScans{day: d, times: times})
		}
		sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

		for _, ds := range days {
			sort.Slice(ds.times, func(i, j int) bool { return ds.times[i].Before(ds.times[j]) })
			for _, r := range e.policy.Pair(ds.times) {
				out = append(out, Interval{BadgeID: b, Day: ds.day, Start: r.Start, End: r.End})
			}
		}
	}
	return out
}
