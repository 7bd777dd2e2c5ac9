package agenda

import "time"

// TypeKey is the normalized kind of a schedulable record.
type TypeKey string

const (
	TypeNote    TypeKey = "note"
	TypeEmail   TypeKey = "email"
	TypeCall    TypeKey = "call"
	TypeTask    TypeKey = "task"
	TypeTodo    TypeKey = "todo"
	TypeMeeting TypeKey = "meeting"
	TypeEvent   TypeKey = "event"
)

// TabAll is the active-tab value that disables the tab filter.
const TabAll TypeKey = "all"

// RawActivity is a source record as handed over by the activity provider.
// IDs are unique only within their own source collection. Type may be
// empty on rows written before the type column existed; those carry only
// the IsTask flag (see EffectiveType).
type RawActivity struct {
	ID          uint64
	Subject     string
	Title       string
	Description string
	Type        TypeKey
	IsTask      bool
	DueDate     *time.Time
	CreatedAt   *time.Time
	Owner       string
}

// RemoteEventTime is the start/end shape of a remote calendar item:
// either an absolute instant (DateTime, RFC3339) or a date-only string
// (Date, YYYY-MM-DD) for all-day events. Exactly one is set.
type RemoteEventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

// RemoteCalendarEvent is an item from the external calendar integration.
type RemoteCalendarEvent struct {
	ID          string          `json:"id"`
	Summary     string          `json:"summary"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Start       RemoteEventTime `json:"start"`
	End         RemoteEventTime `json:"end"`
}

// DisplayEvent is the unified, source-agnostic shape the calendar renders.
// At most one provenance flag is true; all three false means the item came
// from the task list. The flags only select the detail-fetch strategy
// downstream, they carry no display meaning.
type DisplayEvent struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Time          string  `json:"time"`
	Color         string  `json:"color"`
	Type          TypeKey `json:"type"`
	IsGoogleEvent bool    `json:"isGoogleEvent"`
	IsNote        bool    `json:"isNote"`
	IsMeeting     bool    `json:"isMeeting"`
}

// CalendarDay is one cell of the 6x7 month grid. Every cell has a concrete
// date; IsCurrentMonth separates in-range days from the leading/trailing
// days borrowed from the neighboring months.
type CalendarDay struct {
	Day            int       `json:"day"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	Date           time.Time `json:"date"`
}

// EffectiveType resolves the type a record is treated as for filtering and
// coloring, folding the legacy isTask-without-type encoding into a plain
// key. Returns "" when the record carries no type information at all.
func EffectiveType(a RawActivity) TypeKey {
	if a.Type != "" {
		return a.Type
	}
	if a.IsTask {
		return TypeTask
	}
	return ""
}
