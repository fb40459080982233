//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

type character struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Status   string         `json:"status"`
	Species  string         `json:"species"`
	Type     string         `json:"type"`
	Gender   string         `json:"gender"`
	Image    string         `json:"image"`
	Location map[string]any `json:"location,omitempty"`
}

var characters = []character{
	{ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human", Gender: "Male",
		Location: map[string]any{"name": "Citadel of Ricks"}},
	{ID: 2, Name: "Morty Smith", Status: "Alive", Species: "Human", Gender: "Male",
		Location: map[string]any{"name": "Citadel of Ricks"}},
	{ID: 3, Name: "Summer Smith", Status: "Alive", Species: "Human", Gender: "Female",
		Location: map[string]any{"name": "Earth (Replacement Dimension)"}},
	{ID: 8, Name: "Adjudicator Rick", Status: "Dead", Species: "Human", Gender: "Male"},
}

// newFakeAPI serves the character and location endpoints from a small
// fixture. Every search reports three pages so paging can be exercised.
func newFakeAPI(t *testing.T) string {
	t.Helper()
	write := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/character/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(r.URL.Query().Get("name"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		var hits []character
		for _, c := range characters {
			if strings.Contains(strings.ToLower(c.Name), name) {
				c.Name += pageSuffix(page)
				hits = append(hits, c)
			}
		}
		if len(hits) == 0 {
			write(w, http.StatusNotFound, map[string]string{"error": "There is nothing here"})
			return
		}
		write(w, http.StatusOK, map[string]any{
			"info":    map[string]int{"count": len(hits) * 3, "pages": 3},
			"results": hits,
		})
	})
	mux.HandleFunc("/api/character", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"info": map[string]int{"count": 4, "pages": 1}, "results": characters})
	})
	mux.HandleFunc("/api/location", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{
			"info":    map[string]int{"count": 2, "pages": 1},
			"results": []map[string]any{{"id": 1, "name": "Earth (C-137)"}, {"id": 3, "name": "Citadel of Ricks"}},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

// pageSuffix marks names beyond the first page so the screen shows which
// page is loaded
func pageSuffix(page int) string {
	if page <= 1 {
		return ""
	}
	return " p" + strconv.Itoa(page)
}
