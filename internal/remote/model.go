package remote

import (
	"time"

	"gestor/internal/agenda"
)

// RemoteEvent is the cached copy of one remote calendar item. Exactly one
// of StartDateTime (RFC3339 instant) and StartDate (YYYY-MM-DD, all-day)
// is set, mirroring the wire shape of the integration.
type RemoteEvent struct {
	ID       uint64 `gorm:"primaryKey"`
	SourceID string `gorm:"uniqueIndex:uq_remote_source_event;not null"`
	EventID  string `gorm:"uniqueIndex:uq_remote_source_event;not null"`

	Summary     string `gorm:"type:text;not null;default:''"`
	Description string `gorm:"type:text;not null;default:''"`
	Location    string `gorm:"type:text;not null;default:''"`

	StartDateTime string `gorm:"type:text;not null;default:''"`
	StartDate     string `gorm:"type:text;not null;default:''"`
	EndDateTime   string `gorm:"type:text;not null;default:''"`
	EndDate       string `gorm:"type:text;not null;default:''"`

	SyncedAt time.Time `gorm:"not null;default:now()"`
}

// ToAgenda converts a cached row back into the shape the aggregation
// core consumes.
func (e RemoteEvent) ToAgenda() agenda.RemoteCalendarEvent {
	return agenda.RemoteCalendarEvent{
		ID:          e.EventID,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Start:       agenda.RemoteEventTime{DateTime: e.StartDateTime, Date: e.StartDate},
		End:         agenda.RemoteEventTime{DateTime: e.EndDateTime, Date: e.EndDate},
	}
}

func fromAgenda(sourceID string, ev agenda.RemoteCalendarEvent, syncedAt time.Time) RemoteEvent {
	return RemoteEvent{
		SourceID:      sourceID,
		EventID:       ev.ID,
		Summary:       ev.Summary,
		Description:   ev.Description,
		Location:      ev.Location,
		StartDateTime: ev.Start.DateTime,
		StartDate:     ev.Start.Date,
		EndDateTime:   ev.End.DateTime,
		EndDate:       ev.End.Date,
		SyncedAt:      syncedAt,
	}
}
