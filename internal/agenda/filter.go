package agenda

import (
	"strings"
	"time"
)

// TimeRange is one of the relative windows offered by the list views.
// The values double as the labels the UI shows.
type TimeRange string

const (
	RangeTodo         TimeRange = "Todo"
	RangeHoy          TimeRange = "Hoy"
	RangeAyer         TimeRange = "Ayer"
	RangeEstaSemana   TimeRange = "Esta semana"
	RangeSemanaPasada TimeRange = "Semana pasada"
	RangeUltimos7Dias TimeRange = "Últimos 7 días"
)

// TypeLabels maps the localized multi-select labels onto the type keys
// they cover. A label may cover more than one key ("Tarea" spans the old
// todo rows and the current task rows); matching is a union within a
// label and an OR across selected labels.
var TypeLabels = map[string][]TypeKey{
	"Nota":    {TypeNote},
	"Correo":  {TypeEmail},
	"Llamada": {TypeCall},
	"Tarea":   {TypeTask, TypeTodo},
	"Reunión": {TypeMeeting},
}

// Filter is the criteria set one list view holds. Zero values disable
// their stage.
type Filter struct {
	SearchText     string
	ActiveTab      TypeKey
	SelectedLabels []string
	TimeRange      TimeRange
}

// FilterActivities runs the filter pipeline over activities. Stages
// compose by intersection and each one is a no-op when its criterion is
// unset, so an empty Filter returns the input unchanged. now is the
// reference instant for the relative time ranges; passing it in keeps the
// function deterministic.
func FilterActivities(activities []RawActivity, f Filter, now time.Time) []RawActivity {
	out := activities
	out = bySearch(out, f.SearchText)
	out = byTab(out, f.ActiveTab)
	out = byLabels(out, f.SelectedLabels)
	out = byTimeRange(out, f.TimeRange, now)
	return out
}

func bySearch(in []RawActivity, text string) []RawActivity {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return in
	}
	out := make([]RawActivity, 0, len(in))
	for _, a := range in {
		if strings.Contains(strings.ToLower(a.Subject), text) ||
			strings.Contains(strings.ToLower(a.Title), text) ||
			strings.Contains(strings.ToLower(a.Description), text) {
			out = append(out, a)
		}
	}
	return out
}

func byTab(in []RawActivity, tab TypeKey) []RawActivity {
	if tab == "" || tab == TabAll {
		return in
	}
	out := make([]RawActivity, 0, len(in))
	for _, a := range in {
		if EffectiveType(a) == tab {
			out = append(out, a)
		}
	}
	return out
}

func byLabels(in []RawActivity, labels []string) []RawActivity {
	if len(labels) == 0 {
		return in
	}
	allowed := make(map[TypeKey]struct{})
	for _, l := range labels {
		for _, k := range TypeLabels[l] {
			allowed[k] = struct{}{}
		}
	}
	out := make([]RawActivity, 0, len(in))
	for _, a := range in {
		if _, ok := allowed[EffectiveType(a)]; ok {
			out = append(out, a)
		}
	}
	return out
}

func byTimeRange(in []RawActivity, r TimeRange, now time.Time) []RawActivity {
	if r == "" || r == RangeTodo {
		return in
	}

	start, end, ok := resolveRange(r, now)
	if !ok {
		return in
	}
	// Compare on day buckets, not raw timestamps: 23:59 is as much
	// "today" as 00:01. YYYY-MM-DD keys order lexicographically.
	lo, hi := BucketKey(start), BucketKey(end)

	out := make([]RawActivity, 0, len(in))
	for _, a := range in {
		if a.CreatedAt == nil {
			continue
		}
		key := BucketKey(*a.CreatedAt)
		if key >= lo && key <= hi {
			out = append(out, a)
		}
	}
	return out
}

// resolveRange turns a relative range into a concrete inclusive [start,
// end] day pair around now. The week ranges use a Sunday week start.
func resolveRange(r TimeRange, now time.Time) (start, end time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeHoy:
		return today, today, true
	case RangeAyer:
		y := today.AddDate(0, 0, -1)
		return y, y, true
	case RangeEstaSemana:
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return weekStart, today, true
	case RangeSemanaPasada:
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return weekStart.AddDate(0, 0, -7), weekStart.AddDate(0, 0, -1), true
	case RangeUltimos7Dias:
		return today.AddDate(0, 0, -6), today, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
