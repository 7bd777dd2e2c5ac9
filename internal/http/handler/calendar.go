package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gestor/internal/activity"
	"gestor/internal/agenda"
	"gestor/internal/remote"
)

// compactTitleLen is the title budget of one grid cell chip.
const compactTitleLen = 20

type CalendarHandler struct {
	Svc    *activity.Service
	Remote *remote.Syncer
}

// Grid returns the bare 42-cell month layout.
func (h *CalendarHandler) Grid(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := intQuery(r, "year", now.Year())
	month := intQuery(r, "month", int(now.Month()))

	cells := agenda.BuildGrid(year, time.Month(month))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"year":  year,
		"month": month,
		"cells": cells,
	})
}

type monthCell struct {
	agenda.CalendarDay
	Events []agenda.DisplayEvent `json:"events"`
}

// Month returns the grid with each cell's events attached, titles cut to
// the compact chip length.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := intQuery(r, "year", now.Year())
	month := intQuery(r, "month", int(now.Month()))

	src, err := h.sources(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	cells := agenda.BuildGrid(year, time.Month(month))
	out := make([]monthCell, 0, len(cells))
	for _, cell := range cells {
		events := agenda.EventsForDay(
			cell.Date.Day(), cell.Date.Year(), cell.Date.Month(),
			src.tasks, src.remote, src.notes, src.meetings,
		)
		for i := range events {
			events[i].Title = agenda.Truncate(events[i].Title, compactTitleLen)
		}
		out = append(out, monthCell{CalendarDay: cell, Events: events})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"year":  year,
		"month": month,
		"cells": out,
	})
}

// Day returns the full ordered event list for one calendar day.
func (h *CalendarHandler) Day(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := intQuery(r, "year", now.Year())
	month := intQuery(r, "month", int(now.Month()))
	day := intQuery(r, "day", now.Day())

	src, err := h.sources(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	events := agenda.EventsForDay(day, year, time.Month(month), src.tasks, src.remote, src.notes, src.meetings)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"date":   agenda.BucketKey(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)),
		"events": events,
	})
}

// Status reports whether the remote calendar integration is connected.
func (h *CalendarHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Remote.StatusNow())
}

type daySources struct {
	tasks    []agenda.RawActivity
	remote   []agenda.RemoteCalendarEvent
	notes    []agenda.RawActivity
	meetings []agenda.RawActivity
}

// sources gathers the four calendar source collections. The task list is
// the task table plus the task-typed timeline rows; a disconnected
// integration simply contributes no remote events.
func (h *CalendarHandler) sources(ctx context.Context) (daySources, error) {
	var src daySources

	tasks, err := h.Svc.Tasks(ctx)
	if err != nil {
		return src, err
	}

	acts, err := h.Svc.List(ctx, activity.ListInput{Limit: 500})
	if err != nil {
		return src, err
	}
	c := activity.Split(acts)

	remoteEvents, err := h.Remote.Events(ctx)
	if err != nil {
		return src, err
	}

	src.tasks = append(tasks, c.Tasks...)
	src.remote = remoteEvents
	src.notes = c.Notes
	src.meetings = c.Meetings
	return src, nil
}
