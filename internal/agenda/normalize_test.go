package agenda

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestActivityTitleFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		in   RawActivity
		want string
	}{
		{"subject wins", RawActivity{Subject: "Llamar a cliente", Title: "x", Description: "y"}, "Llamar a cliente"},
		{"title next", RawActivity{Title: "Preparar demo", Description: "y"}, "Preparar demo"},
		{"description derived", RawActivity{Description: "<p>Enviar  propuesta</p>"}, "Enviar propuesta"},
		{"untitled", RawActivity{}, Untitled},
		{"markup only", RawActivity{Description: "<br/><div></div>"}, Untitled},
	}
	for _, c := range cases {
		ev := NormalizeNote(c.in, 0)
		if ev.Title != c.want {
			t.Fatalf("%s: expected %q, got %q", c.name, c.want, ev.Title)
		}
	}
}

func TestMeetingTypedTaskKeepsMeetingColor(t *testing.T) {
	ev := NormalizeTask(RawActivity{ID: 7, Subject: "Kickoff", Type: TypeMeeting}, 0)
	if ev.Type != TypeMeeting {
		t.Fatalf("expected meeting type, got %s", ev.Type)
	}
	if ev.Color != ColorMeeting {
		t.Fatalf("expected meeting color, got %s", ev.Color)
	}
	// Provenance still says task list: no flag set.
	if ev.IsGoogleEvent || ev.IsNote || ev.IsMeeting {
		t.Fatalf("task-sourced event must carry no provenance flag")
	}
}

func TestProvenanceFlagsAreExclusive(t *testing.T) {
	a := RawActivity{ID: 1, Subject: "x"}
	events := []DisplayEvent{
		NormalizeTask(a, 0),
		NormalizeNote(a, 0),
		NormalizeMeeting(a, 0),
		NormalizeRemote(RemoteCalendarEvent{ID: "r", Summary: "x"}, 0),
	}
	for i, ev := range events {
		n := 0
		for _, f := range []bool{ev.IsGoogleEvent, ev.IsNote, ev.IsMeeting} {
			if f {
				n++
			}
		}
		if n > 1 {
			t.Fatalf("event %d: %d provenance flags set", i, n)
		}
	}
	if !events[1].IsNote || !events[2].IsMeeting || !events[3].IsGoogleEvent {
		t.Fatalf("wrong provenance flags: %+v", events)
	}
}

func TestTimeLabelPriority(t *testing.T) {
	due := time.Date(2024, 3, 10, 14, 30, 0, 0, time.Local)
	created := time.Date(2024, 3, 10, 9, 15, 0, 0, time.Local)

	if got := NormalizeTask(RawActivity{DueDate: &due, CreatedAt: &created}, 0).Time; got != "14:30" {
		t.Fatalf("expected due-date label 14:30, got %q", got)
	}
	if got := NormalizeTask(RawActivity{CreatedAt: &created}, 0).Time; got != "09:15" {
		t.Fatalf("expected created label 09:15, got %q", got)
	}
	if got := NormalizeTask(RawActivity{}, 0).Time; got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

func TestRemoteTimeLabel(t *testing.T) {
	withZone(t, 2, func() {
		timed := RemoteCalendarEvent{ID: "r1", Summary: "Demo", Start: RemoteEventTime{DateTime: "2024-03-10T08:00:00Z"}}
		if got := NormalizeRemote(timed, 0).Time; got != "10:00" {
			t.Fatalf("expected 10:00 local, got %q", got)
		}
	})

	allDay := RemoteCalendarEvent{ID: "r2", Summary: "Feria", Start: RemoteEventTime{Date: "2024-03-10"}}
	if got := NormalizeRemote(allDay, 0).Time; got != "" {
		t.Fatalf("all-day event should have empty label, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	long := "Reunión de seguimiento comercial"
	got := Truncate(long, 20)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n > 23 {
		t.Fatalf("expected at most 23 runes, got %d (%q)", n, got)
	}

	if got := Truncate("corto", 20); got != "corto" {
		t.Fatalf("short string must pass through, got %q", got)
	}
	if got := Truncate(long, 0); got != long {
		t.Fatalf("max 0 must disable truncation, got %q", got)
	}
}

func TestColorForUnknownType(t *testing.T) {
	if got := ColorFor("whatsapp"); got != ColorNeutral {
		t.Fatalf("unknown type should map to neutral, got %s", got)
	}
	if got := ColorFor(""); got != ColorNeutral {
		t.Fatalf("empty type should map to neutral, got %s", got)
	}
	if ColorFor(TypeTodo) != ColorFor(TypeTask) {
		t.Fatalf("todo and task must share a color")
	}
}

func TestEffectiveType(t *testing.T) {
	if got := EffectiveType(RawActivity{Type: TypeCall}); got != TypeCall {
		t.Fatalf("direct type wins, got %s", got)
	}
	if got := EffectiveType(RawActivity{IsTask: true}); got != TypeTask {
		t.Fatalf("isTask without type is a task, got %s", got)
	}
	if got := EffectiveType(RawActivity{Type: TypeNote, IsTask: true}); got != TypeNote {
		t.Fatalf("type outranks the flag, got %s", got)
	}
	if got := EffectiveType(RawActivity{}); got != "" {
		t.Fatalf("typeless record stays unclassified, got %s", got)
	}
}
