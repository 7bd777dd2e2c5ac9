package agenda

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Untitled is the display title used when every fallback comes up empty.
const Untitled = "Sin título"

// Category colors, read from every list and calendar surface. Keep this
// the single place the mapping lives.
const (
	ColorTask    = "#f59e0b" // orange
	ColorEvent   = "#3b82f6" // blue
	ColorNote    = "#22c55e" // green
	ColorMeeting = "#ec4899" // pink
	ColorNeutral = "#9ca3af"
)

// ColorFor maps an effective type to its category color. Unknown or empty
// types get the neutral color, never an error.
func ColorFor(t TypeKey) string {
	switch t {
	case TypeTask, TypeTodo:
		return ColorTask
	case TypeEvent:
		return ColorEvent
	case TypeNote:
		return ColorNote
	case TypeMeeting:
		return ColorMeeting
	default:
		return ColorNeutral
	}
}

var markupRe = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes embedded tags from a description so it can serve as
// a display title, collapsing the leftover whitespace.
func StripMarkup(s string) string {
	plain := markupRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(plain), " ")
}

// Truncate cuts s to at most max runes and marks the cut with an
// ellipsis. max <= 0 disables truncation.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// NormalizeTask converts a task row into a DisplayEvent. A task whose own
// type is meeting keeps the meeting type and color: classification wins
// over source collection.
func NormalizeTask(a RawActivity, maxTitle int) DisplayEvent {
	typ := TypeTask
	if EffectiveType(a) == TypeMeeting {
		typ = TypeMeeting
	}
	return DisplayEvent{
		ID:    strconv.FormatUint(a.ID, 10),
		Title: Truncate(activityTitle(a), maxTitle),
		Time:  activityTimeLabel(a),
		Color: ColorFor(typ),
		Type:  typ,
	}
}

// NormalizeNote converts a note row into a DisplayEvent.
func NormalizeNote(a RawActivity, maxTitle int) DisplayEvent {
	return DisplayEvent{
		ID:     strconv.FormatUint(a.ID, 10),
		Title:  Truncate(activityTitle(a), maxTitle),
		Time:   activityTimeLabel(a),
		Color:  ColorFor(TypeNote),
		Type:   TypeNote,
		IsNote: true,
	}
}

// NormalizeMeeting converts a meeting row into a DisplayEvent.
func NormalizeMeeting(a RawActivity, maxTitle int) DisplayEvent {
	return DisplayEvent{
		ID:        strconv.FormatUint(a.ID, 10),
		Title:     Truncate(activityTitle(a), maxTitle),
		Time:      activityTimeLabel(a),
		Color:     ColorFor(TypeMeeting),
		Type:      TypeMeeting,
		IsMeeting: true,
	}
}

// NormalizeRemote converts a remote calendar item into a DisplayEvent.
// All-day events get an empty time label; timed events show the local
// wall-clock start.
func NormalizeRemote(ev RemoteCalendarEvent, maxTitle int) DisplayEvent {
	title := ev.Summary
	if title == "" {
		title = StripMarkup(ev.Description)
	}
	if title == "" {
		title = Untitled
	}

	label := ""
	if ev.Start.DateTime != "" {
		if inst, err := time.Parse(time.RFC3339, ev.Start.DateTime); err == nil {
			label = inst.In(time.Local).Format("15:04")
		}
	}

	return DisplayEvent{
		ID:            ev.ID,
		Title:         Truncate(title, maxTitle),
		Time:          label,
		Color:         ColorFor(TypeEvent),
		Type:          TypeEvent,
		IsGoogleEvent: true,
	}
}

// activityTitle resolves the display title: subject, then title, then a
// markup-stripped description, then the untitled literal.
func activityTitle(a RawActivity) string {
	if a.Subject != "" {
		return a.Subject
	}
	if a.Title != "" {
		return a.Title
	}
	if derived := StripMarkup(a.Description); derived != "" {
		return derived
	}
	return Untitled
}

// activityTimeLabel formats the local HH:mm label, preferring the due
// date over the creation time. Empty when neither is present.
func activityTimeLabel(a RawActivity) string {
	if a.DueDate != nil {
		return a.DueDate.In(time.Local).Format("15:04")
	}
	if a.CreatedAt != nil {
		return a.CreatedAt.In(time.Local).Format("15:04")
	}
	return ""
}
