package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"gestor/internal/activity"

	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	Svc *activity.Service
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.Tasks(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]activityDTO, 0, len(items))
	for _, t := range items {
		dto := toDTO(t)
		dto.Subject = t.Title
		out = append(out, dto)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

type createTaskReq struct {
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"due_date"` // RFC3339 optional
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}

	due, ok := timeBody(req.DueDate)
	if !ok {
		http.Error(w, "invalid due_date (RFC3339)", http.StatusBadRequest)
		return
	}

	id, err := h.Svc.CreateTask(r.Context(), activity.CreateTaskInput{
		Title:    req.Title,
		Type:     strings.TrimSpace(strings.ToLower(req.Type)),
		Priority: strings.TrimSpace(strings.ToLower(req.Priority)),
		DueDate:  due,
	})
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
}

func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Svc.CompleteTask(r.Context(), id64); err != nil {
		if err == activity.ErrNotFound {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
