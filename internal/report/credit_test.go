package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ceu-checkin-backend/internal/schedule"
)

func windowFor(t *testing.T, e *Engine, title, day, start, end string) schedule.Window {
	t.Helper()
	s, err := time.ParseInLocation("2006-01-02 15:04", day+" "+start, e.loc)
	require.NoError(t, err)
	en, err := time.ParseInLocation("2006-01-02 15:04", day+" "+end, e.loc)
	require.NoError(t, err)
	return schedule.Window{Title: title, Start: s, End: en}
}

func TestCredit_StrictOverlap(t *testing.T) {
	e := testEngine(t)

	// An interval ending exactly when the session starts earns nothing.
	scans := scansFor(t, e, 1, "2025-05-02", "09:00", "10:00")
	intervals := e.Intervals(scans)
	w := windowFor(t, e, "Late Morning", "2025-05-02", "10:00", "11:00")

	rows := e.Credit(intervals, []schedule.Window{w}, []int64{1})
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Attended)

	// One minute of overlap is enough.
	scans = scansFor(t, e, 1, "2025-05-02", "09:00", "10:01")
	rows = e.Credit(e.Intervals(scans), []schedule.Window{w}, []int64{1})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Attended)
}

func TestCredit_Badge72Scenario(t *testing.T) {
	e := testEngine(t)

	scans := scansFor(t, e, 72, "2025-05-02", "08:31", "10:05", "13:28", "15:40")
	intervals := e.Intervals(scans)
	w := windowFor(t, e, "Opening Session", "2025-05-02", "08:30", "10:00")

	rows := e.Credit(intervals, []schedule.Window{w}, []int64{72})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Attended)
	assert.Equal(t, int64(72), rows[0].BadgeID)
	assert.Equal(t, "Opening Session", rows[0].SessionTitle)
}

func TestCredit_SingleScanCreditsRestOfDay(t *testing.T) {
	e := testEngine(t)

	// Badge 5 scans once at 08:40; the synthetic end-of-day close covers
	// every later session that day.
	scans := scansFor(t, e, 5, "2025-05-03", "08:40")
	intervals := e.Intervals(scans)
	windows := []schedule.Window{
		windowFor(t, e, "Morning", "2025-05-03", "08:30", "10:00"),
		windowFor(t, e, "Midday", "2025-05-03", "10:30", "12:00"),
		windowFor(t, e, "Afternoon", "2025-05-03", "15:30", "17:00"),
	}

	rows := e.Credit(intervals, windows, []int64{5})
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.True(t, r.Attended, "session %q should be credited", r.SessionTitle)
	}
}

func TestCredit_NoIntervalsMeansExplicitFalseRow(t *testing.T) {
	e := testEngine(t)

	w := windowFor(t, e, "Morning", "2025-05-02", "08:30", "10:00")
	rows := e.Credit(nil, []schedule.Window{w}, []int64{12, 4})

	require.Len(t, rows, 2)
	// Badge order is numeric ascending.
	assert.Equal(t, int64(4), rows[0].BadgeID)
	assert.Equal(t, int64(12), rows[1].BadgeID)
	assert.False(t, rows[0].Attended)
	assert.False(t, rows[1].Attended)
}

func TestCredit_MultipleOverlappingIntervalsCreditOnce(t *testing.T) {
	e := testEngine(t)

	// Two separate windows both inside the same long session.
	scans := scansFor(t, e, 8, "2025-05-02", "08:35", "08:50", "09:10", "09:40")
	intervals := e.Intervals(scans)
	require.Len(t, intervals, 2)

	w := windowFor(t, e, "Morning", "2025-05-02", "08:30", "10:00")
	rows := e.Credit(intervals, []schedule.Window{w}, []int64{8})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Attended)
}

func TestAttendedPublished(t *testing.T) {
	catalog := []schedule.Published{
		{Title: "Ethics", Credits: 3.0, Blocks: []string{"Ethics (Part 1)", "Ethics (Part 2)"}},
		{Title: "Keynote", Credits: 1.5, Blocks: []string{"Keynote"}},
		{Title: "Closing", Credits: 1.5, Blocks: []string{"Closing"}},
	}
	rows := []CreditRow{
		{BadgeID: 72, SessionTitle: "Ethics (Part 2)", Attended: true},
		{BadgeID: 72, SessionTitle: "Ethics (Part 1)", Attended: false},
		{BadgeID: 72, SessionTitle: "Keynote", Attended: true},
		{BadgeID: 72, SessionTitle: "Closing", Attended: false},
	}

	attended := AttendedPublished(rows, catalog)
	require.Len(t, attended, 2)
	// One credited block is enough for a multi-block entry, and the entry
	// counts once.
	assert.Equal(t, "Ethics", attended[0].Title)
	assert.Equal(t, "Keynote", attended[1].Title)
	assert.InDelta(t, 4.5, TotalHours(attended), 1e-9)
}

func TestTotalHours_Empty(t *testing.T) {
	assert.Zero(t, TotalHours(nil))
}
