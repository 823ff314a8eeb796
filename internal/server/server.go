// Package server exposes the game session over HTTP. Handlers only
// decode identifiers, call the facade and map its errors to status
// codes; no transport types cross into the core.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"footballdirector/internal/app"
	"footballdirector/internal/util"
	"footballdirector/pkg/domain"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App *app.App
}

// Server exposes the game API endpoints.
type Server struct {
	app *app.App
	mux *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	s := &Server{
		app: cfg.App,
		mux: http.NewServeMux(),
	}
	s.routes()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog(util.WithCORS(util.WithSecurityHeaders(s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/api/club", s.handleClub)
	s.mux.HandleFunc("/api/footballers", s.handleFootballers)
	s.mux.HandleFunc("/api/footballers/", s.handleFootballerByID)
	s.mux.HandleFunc("/api/staff", s.handleStaff)
	s.mux.HandleFunc("/api/staff/", s.handleStaffByID)
	s.mux.HandleFunc("/api/inbox", s.handleInbox)
	s.mux.HandleFunc("/api/conversation/", s.handleConversationByID)
	s.mux.HandleFunc("/api/person/", s.handlePersonConversations)
	s.mux.HandleFunc("/api/clock", s.handleClock)
	s.mux.HandleFunc("/api/clock/advance", s.handleClockAdvance)
	s.mux.HandleFunc("/api/clock/advance-to-next-event", s.handleClockAdvanceToNextEvent)
	s.mux.HandleFunc("/api/llm/test", s.handleLlmTest)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClub(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	club, err := s.app.GetClub()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

func (s *Server) handleFootballers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	footballers, err := s.app.ListFootballers()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, footballers)
}

func (s *Server) handleFootballerByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id, ok := pathID(w, r.URL.Path, "/api/footballers/")
	if !ok {
		return
	}
	footballer, err := s.app.GetFootballer(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, footballer)
}

func (s *Server) handleStaff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var role *domain.StaffRole
	if raw := strings.TrimSpace(r.URL.Query().Get("role")); raw != "" {
		parsed, ok := parseStaffRole(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown staff role")
			return
		}
		role = &parsed
	}
	staff, err := s.app.ListStaff(role)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (s *Server) handleStaffByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id, ok := pathID(w, r.URL.Path, "/api/staff/")
	if !ok {
		return
	}
	member, err := s.app.GetStaffMember(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (s *Server) handleInbox(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	inbox, err := s.app.GetInbox()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inbox)
}

func (s *Server) handleConversationByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id, ok := pathID(w, r.URL.Path, "/api/conversation/")
	if !ok {
		return
	}
	conv, err := s.app.GetConversation(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// handlePersonConversations serves /api/person/{id}/conversations.
func (s *Server) handlePersonConversations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/person/")
	idPart, tail, found := strings.Cut(rest, "/")
	if !found || tail != "conversations" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, err := strconv.Atoi(idPart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid person id")
		return
	}
	summaries, err := s.app.GetConversationsForPerson(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleClock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	c, err := s.app.GetClock()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleClockAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	days := 1
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid days")
			return
		}
		days = parsed
	}
	c, err := s.app.AdvanceClock(days)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleClockAdvanceToNextEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	c, err := s.app.AdvanceToNextEvent()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleLlmTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	text, err := s.app.TestGeneration(r.Context())
	if err != nil {
		if errors.Is(err, app.ErrGeneratorUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func pathID(w http.ResponseWriter, path, prefix string) (int, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func parseStaffRole(raw string) (domain.StaffRole, bool) {
	role := domain.StaffRole(raw)
	switch role {
	case domain.RoleCoach, domain.RoleManager, domain.RolePhysio,
		domain.RoleScout, domain.RoleChiefExecutive, domain.RoleClubOwner:
		return role, true
	}
	return "", false
}

func writeAppError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, app.ErrFootballerNotFound),
		errors.Is(err, app.ErrStaffNotFound),
		errors.Is(err, app.ErrConversationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrSaveNotInitialized):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
