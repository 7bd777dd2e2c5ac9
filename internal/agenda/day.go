package agenda

import (
	"sort"
	"time"
)

// EventsForDay merges the four source collections into the ordered event
// list for one calendar day. Each collection is matched against the day's
// bucket key independently (tasks, notes and meetings by due date falling
// back to creation time; remote events per DateFromRemoteEvent), then
// normalized and concatenated in source order.
//
// The final sort is stable and compares HH:mm labels lexicographically.
// Items without a time label compare equal to everything, on purpose:
// untimed notes and tasks stay in their insertion order instead of being
// forced to either end of the day.
func EventsForDay(day, year int, month time.Month, tasks []RawActivity, remote []RemoteCalendarEvent, notes, meetings []RawActivity) []DisplayEvent {
	key := BucketKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))

	out := make([]DisplayEvent, 0)

	for _, a := range tasks {
		if matchesDay(a, key) {
			out = append(out, NormalizeTask(a, 0))
		}
	}
	for _, ev := range remote {
		d := DateFromRemoteEvent(ev)
		if d.IsZero() || BucketKey(d) != key {
			continue
		}
		out = append(out, NormalizeRemote(ev, 0))
	}
	for _, a := range notes {
		if matchesDay(a, key) {
			out = append(out, NormalizeNote(a, 0))
		}
	}
	for _, a := range meetings {
		if matchesDay(a, key) {
			out = append(out, NormalizeMeeting(a, 0))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Time, out[j].Time
		if a == "" || b == "" {
			return false
		}
		return a < b
	})

	return out
}

func matchesDay(a RawActivity, key string) bool {
	d, ok := activityDate(a)
	if !ok {
		return false
	}
	return BucketKey(d) == key
}
