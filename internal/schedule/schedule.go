package schedule

import (
	"fmt"
	"time"

	"ceu-checkin-backend/config"
)

// windowLayout is the literal form session times are configured in.
const windowLayout = "2006-01-02 15:04"

// Window is one scheduled session block with resolved start and end instants.
type Window struct {
	Title string
	Start time.Time
	End   time.Time
}

// Published is one CEU catalog entry. A published session may be made of
// several scheduled blocks; it carries a single credit-hour weight.
type Published struct {
	Title   string
	Speaker string
	Credits float64
	Blocks  []string
}

// Schedule is the static conference schedule: the scheduled blocks the
// overlap matcher tests against, and the published catalog credit totals are
// resolved through. It is built once at startup and never mutated.
type Schedule struct {
	loc     *time.Location
	windows []Window
	catalog []Published
}

// New parses the configured schedule in the conference timezone.
func New(cfg *config.ConferenceConfig) (*Schedule, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	s := &Schedule{loc: loc}
	for _, w := range cfg.Sessions {
		start, err := time.ParseInLocation(windowLayout, w.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("session %q: bad start %q: %w", w.Title, w.Start, err)
		}
		end, err := time.ParseInLocation(windowLayout, w.End, loc)
		if err != nil {
			return nil, fmt.Errorf("session %q: bad end %q: %w", w.Title, w.End, err)
		}
		if !start.Before(end) {
			return nil, fmt.Errorf("session %q: start %q is not before end %q", w.Title, w.Start, w.End)
		}
		s.windows = append(s.windows, Window{Title: w.Title, Start: start, End: end})
	}

	for _, p := range cfg.Catalog {
		blocks := append([]string(nil), p.Blocks...)
		s.catalog = append(s.catalog, Published{
			Title:   p.Title,
			Speaker: p.Speaker,
			Credits: p.Credits,
			Blocks:  blocks,
		})
	}

	return s, nil
}

// Location returns the conference timezone.
func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Windows returns every scheduled block.
func (s *Schedule) Windows() []Window {
	return s.windows
}

// WindowsOn returns the scheduled blocks whose start falls on the given
// calendar day (in the conference timezone). The result may be empty; the
// caller decides how to report a day without sessions.
func (s *Schedule) WindowsOn(date time.Time) []Window {
	y, m, d := date.In(s.loc).Date()
	var out []Window
	for _, w := range s.windows {
		wy, wm, wd := w.Start.Date()
		if wy == y && wm == m && wd == d {
			out = append(out, w)
		}
	}
	return out
}

// Catalog returns every published session entry.
func (s *Schedule) Catalog() []Published {
	return s.catalog
}
