package remote

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"gestor/internal/agenda"
)

// maxOccurrencesPerEvent caps recurrence expansion so a broken RRULE
// cannot flood the cache.
const maxOccurrencesPerEvent = 500

// ParseFeed converts an ICS payload into remote calendar events falling
// inside [windowStart, windowEnd]. Recurring VEVENTs are expanded into
// concrete occurrences. All-day events keep a date-only start so the
// aggregation buckets them independently of the viewer's timezone; timed
// events carry the RFC3339 instant.
//
// A VEVENT that fails to parse is logged and skipped, never fatal for
// the rest of the feed.
func ParseFeed(body []byte, windowStart, windowEnd time.Time) ([]agenda.RemoteCalendarEvent, error) {
	if len(body) == 0 {
		return nil, errors.New("empty feed body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	out := make([]agenda.RemoteCalendarEvent, 0)
	for _, ve := range cal.Events() {
		evs, err := expandVEvent(ve, windowStart, windowEnd)
		if err != nil {
			log.Printf("calendar feed: skipping event: %v\n", err)
			continue
		}
		out = append(out, evs...)
	}
	return out, nil
}

func expandVEvent(ve *ical.VEvent, windowStart, windowEnd time.Time) ([]agenda.RemoteCalendarEvent, error) {
	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return nil, errors.New("missing UID")
	}
	uid := uidProp.Value

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, err
	}
	end, err := ve.GetEndAt()
	if err != nil {
		end = start
	}

	summary, description, location := "", "", ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		location = p.Value
	}

	allDay := isAllDay(ve)

	rruleProp := ve.GetProperty(ical.ComponentPropertyRrule)
	if rruleProp == nil || rruleProp.Value == "" {
		if start.Before(windowStart) || start.After(windowEnd) {
			return nil, nil
		}
		ev := buildEvent(uid, summary, description, location, start, end, allDay)
		return []agenda.RemoteCalendarEvent{ev}, nil
	}

	r, err := rrule.StrToRRule(rruleProp.Value)
	if err != nil {
		return nil, err
	}
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)

	occStarts := set.Between(windowStart.In(start.Location()), windowEnd.In(start.Location()), true)
	if len(occStarts) > maxOccurrencesPerEvent {
		occStarts = occStarts[:maxOccurrencesPerEvent]
	}

	duration := end.Sub(start)
	out := make([]agenda.RemoteCalendarEvent, 0, len(occStarts))
	for _, occStart := range occStarts {
		occEnd := occStart.Add(duration)
		id := uid + "_" + occStart.Format("20060102T150405")
		out = append(out, buildEvent(id, summary, description, location, occStart, occEnd, allDay))
	}
	return out, nil
}

// isAllDay reports whether DTSTART is a date-only value, either via
// VALUE=DATE or by the absence of a time component.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

func buildEvent(id, summary, description, location string, start, end time.Time, allDay bool) agenda.RemoteCalendarEvent {
	ev := agenda.RemoteCalendarEvent{
		ID:          id,
		Summary:     summary,
		Description: description,
		Location:    location,
	}
	if allDay {
		ev.Start.Date = start.Format("2006-01-02")
		ev.End.Date = end.Format("2006-01-02")
	} else {
		ev.Start.DateTime = start.Format(time.RFC3339)
		ev.End.DateTime = end.Format(time.RFC3339)
	}
	return ev
}
