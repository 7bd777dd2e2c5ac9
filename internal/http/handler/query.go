package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// intQuery reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func intQuery(r *http.Request, key string, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// listQuery splits a comma-separated query parameter, dropping empties.
func listQuery(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// timeBody parses an optional RFC3339 string from a request body field.
func timeBody(v *string) (*time.Time, bool) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, false
	}
	return &t, true
}
