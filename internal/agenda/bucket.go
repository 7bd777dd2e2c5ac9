package agenda

import (
	"strconv"
	"strings"
	"time"
)

// BucketKey returns the canonical YYYY-MM-DD key for the calendar day t
// falls on, read from its local calendar fields. Two dates belong to the
// same day iff their keys are equal.
func BucketKey(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}

// DateFromRemoteEvent resolves the calendar day a remote event belongs to.
// Timed events are converted to local time first and rebuilt from the
// local year/month/day triple, so a late-evening UTC instant lands on the
// viewer's wall-clock day. All-day events carry a bare YYYY-MM-DD string
// and are assembled from its numeric parts directly; handing the string to
// a generic parser would pin it to UTC midnight and shift the displayed
// day backward in every zone west of UTC.
//
// Malformed payloads yield the zero time, which never matches any bucket.
func DateFromRemoteEvent(ev RemoteCalendarEvent) time.Time {
	if ev.Start.DateTime != "" {
		inst, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			return time.Time{}
		}
		l := inst.In(time.Local)
		return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
	}
	if ev.Start.Date != "" {
		return dateFromParts(ev.Start.Date)
	}
	return time.Time{}
}

func dateFromParts(s string) time.Time {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

// activityDate picks the timestamp an activity is bucketed by: the due
// date when present, otherwise the creation time. Records with neither
// never appear on the calendar.
func activityDate(a RawActivity) (time.Time, bool) {
	if a.DueDate != nil {
		return *a.DueDate, true
	}
	if a.CreatedAt != nil {
		return *a.CreatedAt, true
	}
	return time.Time{}, false
}
