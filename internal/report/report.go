package report

import (
	"time"

	"ceu-checkin-backend/internal/model"
	"ceu-checkin-backend/internal/parse"
)

// Engine reconstructs attendance from the raw scan log and projects the
// reports over it. It holds no derived state: every projection is recomputed
// from the scans handed to it, so concurrent report requests need no
// coordination and always reflect the log they were given.
type Engine struct {
	loc    *time.Location
	policy PairingPolicy
}

// NewEngine creates an engine for the given conference timezone. A nil
// policy selects positional pairing.
func NewEngine(loc *time.Location, policy PairingPolicy) *Engine {
	if policy == nil {
		policy = PositionalPolicy{}
	}
	return &Engine{loc: loc, policy: policy}
}

// Scan is one normalized badge observation.
type Scan struct {
	BadgeID int64
	At      time.Time
}

// ParseFailure is a quarantined scan record: the raw row is preserved next to
// the error so the caller can log it and move on. One bad row never aborts a
// report.
type ParseFailure struct {
	Raw model.ScanEvent
	Err error
}

// Normalize converts raw scan log rows into normalized scans. Rows whose
// badge is not numeric are dropped. Rows whose timestamp matches no known
// encoding are returned as failures; everything else proceeds.
func (e *Engine) Normalize(events []model.ScanEvent) ([]Scan, []ParseFailure) {
	var scans []Scan
	var failures []ParseFailure
	for _, ev := range events {
		badge, err := parse.BadgeID(ev.BadgeID)
		if err != nil {
			continue
		}
		at, err := parse.Timestamp(ev.Timestamp, e.loc)
		if err != nil {
			failures = append(failures, ParseFailure{Raw: ev, Err: err})
			continue
		}
		scans = append(scans, Scan{BadgeID: badge, At: at})
	}
	return scans, failures
}

// day truncates an instant to midnight of its calendar day in the conference
// timezone.
func (e *Engine) day(t time.Time) time.Time {
	y, m, d := t.In(e.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.loc)
}
