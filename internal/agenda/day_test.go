package agenda

import (
	"reflect"
	"testing"
	"time"
)

func localTime(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.Local)
	return &t
}

func TestEventsForDayMergesAllFourSources(t *testing.T) {
	tasks := []RawActivity{
		{ID: 1, Title: "A", DueDate: localTime(2024, 3, 10, 23, 59)},
		{ID: 2, Title: "otro día", DueDate: localTime(2024, 3, 11, 9, 0)},
	}
	remote := []RemoteCalendarEvent{
		{ID: "g1", Summary: "Demo", Start: RemoteEventTime{Date: "2024-03-10"}},
	}
	notes := []RawActivity{
		{ID: 3, Subject: "Nota", Type: TypeNote, CreatedAt: localTime(2024, 3, 10, 8, 0)},
	}
	meetings := []RawActivity{
		{ID: 4, Subject: "Reunión", Type: TypeMeeting, DueDate: localTime(2024, 3, 10, 12, 0)},
	}

	got := EventsForDay(10, 2024, time.March, tasks, remote, notes, meetings)
	if len(got) != 4 {
		t.Fatalf("expected 4 events, got %d", len(got))
	}
	for _, ev := range got {
		if ev.Title == "otro día" {
			t.Fatalf("event from another day leaked in")
		}
	}
}

func TestEventsForDaySingleTaskScenario(t *testing.T) {
	tasks := []RawActivity{{ID: 1, Title: "A", DueDate: localTime(2024, 3, 10, 23, 59)}}

	got := EventsForDay(10, 2024, time.March, tasks, nil, nil, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Title != "A" {
		t.Fatalf("expected title A, got %q", got[0].Title)
	}
}

func TestEventsForDaySortsByTimeLabel(t *testing.T) {
	tasks := []RawActivity{
		{ID: 1, Subject: "tarde", DueDate: localTime(2024, 3, 10, 16, 0)},
		{ID: 2, Subject: "mañana", DueDate: localTime(2024, 3, 10, 8, 30)},
	}
	meetings := []RawActivity{
		{ID: 3, Subject: "mediodía", Type: TypeMeeting, DueDate: localTime(2024, 3, 10, 12, 0)},
	}

	got := EventsForDay(10, 2024, time.March, tasks, nil, nil, meetings)
	want := []string{"mañana", "mediodía", "tarde"}
	for i, w := range want {
		if got[i].Title != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, got[i].Title)
		}
	}
}

func TestEventsForDayUntimedItemsStayInInsertionOrder(t *testing.T) {
	// All-day remote events have no time label; they must keep their
	// relative order instead of being pushed to either end.
	remote := []RemoteCalendarEvent{
		{ID: "g1", Summary: "primero", Start: RemoteEventTime{Date: "2024-03-10"}},
		{ID: "g2", Summary: "segundo", Start: RemoteEventTime{Date: "2024-03-10"}},
	}
	notes := []RawActivity{
		{ID: 1, Subject: "timed", Type: TypeNote, CreatedAt: localTime(2024, 3, 10, 9, 0)},
	}

	got := EventsForDay(10, 2024, time.March, nil, remote, notes, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	first, second := indexOf(got, "primero"), indexOf(got, "segundo")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("untimed order changed: first=%d second=%d", first, second)
	}
}

func indexOf(events []DisplayEvent, title string) int {
	for i, ev := range events {
		if ev.Title == title {
			return i
		}
	}
	return -1
}

func TestEventsForDayIsDeterministic(t *testing.T) {
	tasks := []RawActivity{
		{ID: 1, Subject: "a", DueDate: localTime(2024, 3, 10, 10, 0)},
		{ID: 2, Subject: "b"},
	}
	remote := []RemoteCalendarEvent{
		{ID: "g1", Summary: "c", Start: RemoteEventTime{Date: "2024-03-10"}},
	}
	notes := []RawActivity{
		{ID: 3, Subject: "d", Type: TypeNote, CreatedAt: localTime(2024, 3, 10, 10, 0)},
	}

	first := EventsForDay(10, 2024, time.March, tasks, remote, notes, nil)
	second := EventsForDay(10, 2024, time.March, tasks, remote, notes, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two identical runs diverged:\n%v\n%v", first, second)
	}
}

func TestEventsForDayExcludesDatelessItems(t *testing.T) {
	tasks := []RawActivity{{ID: 1, Subject: "sin fecha"}}
	got := EventsForDay(10, 2024, time.March, tasks, nil, nil, nil)
	if len(got) != 0 {
		t.Fatalf("dateless task must not appear, got %d events", len(got))
	}
}
