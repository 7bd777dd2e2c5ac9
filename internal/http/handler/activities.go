package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gestor/internal/activity"
	"gestor/internal/agenda"
)

type ActivityHandler struct {
	Svc *activity.Service
}

type activityDTO struct {
	ID          uint64     `json:"id"`
	Type        string     `json:"type"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Owner       string     `json:"owner,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func toDTO(a agenda.RawActivity) activityDTO {
	return activityDTO{
		ID:          a.ID,
		Type:        string(agenda.EffectiveType(a)),
		Subject:     a.Subject,
		Description: a.Description,
		Owner:       a.Owner,
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
	}
}

// List serves every table/card view: one fetch window, then the shared
// search/filter/paginate pipeline over it.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context(), activity.ListInput{
		Limit: intQuery(r, "limit", 0),
		Tag:   strings.TrimSpace(strings.ToLower(r.URL.Query().Get("tag"))),
	})
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	v := agenda.NewView(intQuery(r, "page_size", agenda.DefaultPageSize))
	v.Filter = agenda.Filter{
		SearchText:     r.URL.Query().Get("q"),
		ActiveTab:      agenda.TypeKey(r.URL.Query().Get("tab")),
		SelectedLabels: listQuery(r, "types"),
		TimeRange:      agenda.TimeRange(r.URL.Query().Get("range")),
	}
	if p := intQuery(r, "page", 1); p >= 1 {
		v.Page = p
	}

	res := v.Apply(items, time.Now())

	out := make([]activityDTO, 0, len(res.Items))
	for _, a := range res.Items {
		out = append(out, toDTO(a))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items":      out,
		"page":       v.Page,
		"totalPages": res.TotalPages,
	})
}

type createActivityReq struct {
	Type        string  `json:"type"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Owner       string  `json:"owner"`
	DueDate     *string `json:"due_date"` // RFC3339 optional
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.Type = strings.TrimSpace(strings.ToLower(req.Type))
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Subject == "" && strings.TrimSpace(req.Description) == "" {
		http.Error(w, "subject or description required", http.StatusBadRequest)
		return
	}

	due, ok := timeBody(req.DueDate)
	if !ok {
		http.Error(w, "invalid due_date (RFC3339)", http.StatusBadRequest)
		return
	}

	id, err := h.Svc.CreateActivity(r.Context(), activity.CreateActivityInput{
		Type:        req.Type,
		Subject:     req.Subject,
		Description: req.Description,
		Owner:       strings.TrimSpace(req.Owner),
		DueDate:     due,
	})
	if err != nil {
		if err == activity.ErrInvalidType {
			http.Error(w, "invalid type", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
}
