package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/aidigest/pkg/domain"
	"github.com/umputun/aidigest/pkg/prefs"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// profileJSON is the wire form of the user profile
type profileJSON struct {
	Persona               string    `json:"persona"`
	PersonaLabel          string    `json:"persona_label"`
	City                  string    `json:"city"`
	Theme                 string    `json:"theme"`
	NotificationFrequency string    `json:"notification_frequency"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func toProfileJSON(p domain.Profile) profileJSON {
	return profileJSON{
		Persona:               string(p.Persona),
		PersonaLabel:          p.Persona.Label(),
		City:                  p.City,
		Theme:                 string(p.Theme),
		NotificationFrequency: string(p.NotificationFrequency),
		UpdatedAt:             p.UpdatedAt,
	}
}

// profileHandler returns the current profile
func (s *Server) profileHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, toProfileJSON(s.prefs.Profile()))
}

// personaHandler sets the reading-mode persona
func (s *Server) personaHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Persona string `json:"persona"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.prefs.SetPersona(r.Context(), domain.Persona(req.Persona)); err != nil {
		s.renderPrefsError(w, r, err, "set persona")
		return
	}
	renderJSON(w, r, http.StatusOK, toProfileJSON(s.prefs.Profile()))
}

// cityHandler sets the locality used for local news
func (s *Server) cityHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.prefs.SetCity(r.Context(), strings.TrimSpace(req.City)); err != nil {
		s.renderPrefsError(w, r, err, "set city")
		return
	}
	renderJSON(w, r, http.StatusOK, toProfileJSON(s.prefs.Profile()))
}

// frequencyHandler changes the notification frequency, gated by the
// notification permission for any non-off value
func (s *Server) frequencyHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Frequency string `json:"frequency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.prefs.SetFrequency(r.Context(), domain.NotificationFrequency(req.Frequency)); err != nil {
		s.renderPrefsError(w, r, err, "set notification frequency")
		return
	}
	renderJSON(w, r, http.StatusOK, toProfileJSON(s.prefs.Profile()))
}

// themeToggleHandler flips the theme and returns the new value
func (s *Server) themeToggleHandler(w http.ResponseWriter, r *http.Request) {
	theme, err := s.prefs.ToggleTheme(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to toggle theme: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"theme": string(theme)})
}

// topicJSON is the wire form of a catalog topic
type topicJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	TopPick  bool   `json:"top_pick"`
}

func toTopicJSON(t domain.Topic) topicJSON {
	return topicJSON{ID: t.ID, Name: t.Name, Category: t.Category, TopPick: t.TopPick}
}

// topicsHandler returns the catalog grouped by category plus the top picks shortlist
func (s *Server) topicsHandler(w http.ResponseWriter, r *http.Request) {
	type groupJSON struct {
		Category string      `json:"category"`
		Topics   []topicJSON `json:"topics"`
	}

	groups := s.catalog.ByCategory()
	resp := struct {
		Categories []groupJSON `json:"categories"`
		TopPicks   []topicJSON `json:"top_picks"`
	}{
		Categories: make([]groupJSON, 0, len(groups)),
		TopPicks:   []topicJSON{},
	}

	for _, g := range groups {
		gj := groupJSON{Category: g.Category, Topics: make([]topicJSON, 0, len(g.Topics))}
		for _, t := range g.Topics {
			gj.Topics = append(gj.Topics, toTopicJSON(t))
		}
		resp.Categories = append(resp.Categories, gj)
	}
	for _, t := range s.catalog.TopPicks() {
		resp.TopPicks = append(resp.TopPicks, toTopicJSON(t))
	}

	renderJSON(w, r, http.StatusOK, resp)
}

// selectedTopicsHandler returns the current selection
func (s *Server) selectedTopicsHandler(w http.ResponseWriter, r *http.Request) {
	selected := s.prefs.SelectedTopics()
	if selected == nil {
		selected = []string{}
	}
	renderJSON(w, r, http.StatusOK, map[string][]string{"selected": selected})
}

// selectTopicHandler replaces the selection with a single topic
func (s *Server) selectTopicHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TopicID string `json:"topic_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.TopicID == "" {
		renderError(w, r, fmt.Errorf("topic_id is required"), http.StatusBadRequest)
		return
	}

	if err := s.prefs.SelectTopic(r.Context(), req.TopicID); err != nil {
		s.renderPrefsError(w, r, err, "select topic")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string][]string{"selected": s.prefs.SelectedTopics()})
}

// exportHandler serves the full data backup as a file download
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	filename, data, err := s.prefs.Export(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to export data: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[WARN] failed to write export: %v", err)
	}
}

// importHandler accepts a backup file upload and replaces the store contents
func (s *Server) importHandler(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		renderError(w, r, fmt.Errorf("backup file is required"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".json") {
		renderError(w, r, fmt.Errorf("backup must be a .json file"), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		renderError(w, r, fmt.Errorf("read backup file: %w", err), http.StatusBadRequest)
		return
	}

	if err := s.prefs.Import(r.Context(), string(data)); err != nil {
		log.Printf("[WARN] import failed: %v", err)
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	// reload signal for the client, imported state replaces everything
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"status": "ok", "reload": true})
}

// resetHandler destroys all persisted state after explicit confirmation
func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm string `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.prefs.HardReset(r.Context(), req.Confirm); err != nil {
		s.renderPrefsError(w, r, err, "hard reset")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"status": "ok", "reload": true})
}

// legalHandler serves a sanitized legal document by mode
func (s *Server) legalHandler(w http.ResponseWriter, r *http.Request) {
	mode := domain.LegalMode(r.PathValue("mode"))
	if !mode.Valid() {
		renderError(w, r, fmt.Errorf("unknown legal document %q", mode), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := fmt.Fprint(w, s.legalDocs[mode]); err != nil {
		log.Printf("[WARN] failed to write legal document: %v", err)
	}
}

// renderPrefsError maps service failures to HTTP responses
func (s *Server) renderPrefsError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, prefs.ErrNotificationsUnsupported),
		errors.Is(err, prefs.ErrInvalidPersona),
		errors.Is(err, prefs.ErrInvalidFrequency),
		errors.Is(err, prefs.ErrUnknownTopic),
		errors.Is(err, prefs.ErrConfirmationMismatch):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, prefs.ErrPermissionDenied):
		renderError(w, r, err, http.StatusForbidden)
	default:
		log.Printf("[ERROR] failed to %s: %v", op, err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
