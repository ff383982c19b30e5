package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Prioritization/internal/config"
	"github.com/MikeSquared-Agency/Prioritization/internal/hermes"
	"github.com/MikeSquared-Agency/Prioritization/internal/metrics"
	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

// sessions is the plumbing every handler shares: loading a session, running
// the recomputation and saving the result.
type sessions struct {
	store   store.Store
	hermes  hermes.Client
	metrics *metrics.Metrics
	scorer  *scoring.Scorer
	cfg     *config.Config
	logger  *slog.Logger
	now     func() time.Time
}

func (ss *sessions) initialWeights() scoring.WeightSet {
	return scoring.WeightSet{
		Impact:        ss.cfg.Scoring.Weights.Impact,
		Cost:          ss.cfg.Scoring.Weights.Cost,
		Feasibility:   ss.cfg.Scoring.Weights.Feasibility,
		TimeToBenefit: ss.cfg.Scoring.Weights.TimeToBenefit,
	}
}

// create starts a session from the configured defaults and stores it.
func (ss *sessions) create(ctx context.Context) (*store.Session, error) {
	now := ss.now()
	anchor, err := ss.cfg.DefaultAnchor(now)
	if err != nil {
		return nil, err
	}
	s := store.NewSession(ss.initialWeights(), anchor, now)
	// a failure stays on the session and shows on first render
	_ = ss.recompute(s)
	if err := ss.store.CreateSession(ctx, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if n, err := ss.store.CountSessions(ctx); err == nil {
		ss.metrics.SetSessions(n)
	}
	ss.logger.Info("session created", "session_id", s.ID)
	hermes.Emit(ss.hermes, ss.logger, hermes.SubjectSessionCreated(s.ID.String()), hermes.SessionCreatedEvent{
		SessionID:   s.ID.String(),
		Initiatives: len(s.Initiatives),
		Timestamp:   now,
	})
	return s, nil
}

// lookup returns the session for id, or nil when there is none.
func (ss *sessions) lookup(ctx context.Context, id string) (*store.Session, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return ss.store.GetSession(ctx, sid)
}

// load resolves the {id} URL parameter and writes the error response itself
// when it cannot.
func (ss *sessions) load(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return nil, false
	}
	s, err := ss.store.GetSession(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	if s == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	return s, true
}

// recompute reruns the ranking and reports the outcome. The session keeps its
// last valid view when it fails.
func (ss *sessions) recompute(s *store.Session) error {
	if err := s.Recompute(ss.scorer, ss.now()); err != nil {
		ss.metrics.Error(scoring.Kind(err))
		ss.logger.Warn("recompute failed", "session_id", s.ID, "kind", scoring.Kind(err), "error", err)
		return err
	}
	ss.metrics.Recomputed()

	ev := hermes.SessionRankedEvent{
		SessionID: s.ID.String(),
		Weights:   make(map[string]float64, len(scoring.Criteria())),
		Count:     len(s.View.Ranking),
		Timestamp: s.View.ComputedAt,
	}
	for _, c := range scoring.Criteria() {
		ev.Weights[c.Field()] = s.View.Weights.Get(c)
	}
	if len(s.View.Ranking) > 0 {
		ev.Top = s.View.Ranking[0].Name
		ev.TopScore = s.View.Ranking[0].WeightedScore
	}
	hermes.Emit(ss.hermes, ss.logger, hermes.SubjectSessionRanked(s.ID.String()), ev)
	return nil
}

func (ss *sessions) save(ctx context.Context, s *store.Session) error {
	if err := ss.store.UpdateSession(ctx, s); err != nil {
		return fmt.Errorf("update session %s: %w", s.ID, err)
	}
	return nil
}

// respond saves s and answers with the session, or with the domain error and
// the last valid view.
func (ss *sessions) respond(w http.ResponseWriter, r *http.Request, s *store.Session, opErr error) {
	if err := ss.save(r.Context(), s); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if opErr != nil {
		writeDomainError(w, opErr, s.View)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// SessionsHandler serves the session lifecycle and the scoring operations on
// a session's matrix.
type SessionsHandler struct {
	*sessions
}

func NewSessionsHandler(ss *sessions) *SessionsHandler {
	return &SessionsHandler{sessions: ss}
}

// Create starts a session seeded with the default initiatives.
// POST /api/v1/sessions
func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.create(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SessionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteSession(r.Context(), s.ID); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if n, err := h.store.CountSessions(r.Context()); err == nil {
		h.metrics.SetSessions(n)
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceInitiatives swaps the whole score table. Rows with a missing score
// are kept so the user can fix them, and the response carries the error.
// PUT /api/v1/sessions/{id}/initiatives
func (h *SessionsHandler) ReplaceInitiatives(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	var req []scoring.Initiative
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	s.ReplaceInitiatives(req)
	h.respond(w, r, s, h.recompute(s))
}

// AddInitiative appends one row.
// POST /api/v1/sessions/{id}/initiatives
func (h *SessionsHandler) AddInitiative(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	var req scoring.Initiative
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	s.AddInitiative(req)
	h.respond(w, r, s, h.recompute(s))
}

// DeleteInitiative removes the row at {index}, counted from zero in table order.
// DELETE /api/v1/sessions/{id}/initiatives/{index}
func (h *SessionsHandler) DeleteInitiative(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid index"})
		return
	}
	if err := s.DeleteRow(idx); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	h.respond(w, r, s, h.recompute(s))
}

// SetWeights updates the raw weights. Omitted criteria keep their current
// value and every weight is pinned into [0,1].
// PUT /api/v1/sessions/{id}/weights
func (h *SessionsHandler) SetWeights(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	req := s.RawWeights
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := s.SetWeights(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.respond(w, r, s, h.recompute(s))
}

// Ranking returns the last valid ranking with the normalized weights used.
// GET /api/v1/sessions/{id}/ranking
func (h *SessionsHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weights":     s.View.Weights,
		"raw_weights": s.RawWeights,
		"ranking":     s.View.Ranking,
		"computed_at": s.View.ComputedAt,
		"last_error":  s.LastError,
	})
}

// Frontier lists the initiatives no other initiative beats on every criterion.
// GET /api/v1/sessions/{id}/frontier
func (h *SessionsHandler) Frontier(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"frontier": scoring.Frontier(s.View.Ranking),
	})
}

type selectionRequest struct {
	Name string `json:"name"`
}

// Select points the radar chart at another initiative.
// PUT /api/v1/sessions/{id}/selection
func (h *SessionsHandler) Select(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	err := s.Select(req.Name, h.now())
	if err != nil {
		h.metrics.Error(scoring.Kind(err))
	}
	h.respond(w, r, s, err)
}

// Radar returns the chart series for the selected initiative.
// GET /api/v1/sessions/{id}/radar
func (h *SessionsHandler) Radar(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	if s.View.Radar == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no initiative to compare"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"selected": s.View.Selected,
		"options":  s.Options(),
		"radar":    s.View.Radar,
	})
}

// Rubric returns the criteria and the 1–5 scoring guide.
// GET /api/v1/rubric
func Rubric(w http.ResponseWriter, _ *http.Request) {
	criteria := make([]map[string]string, 0, len(scoring.Criteria()))
	for _, c := range scoring.Criteria() {
		criteria = append(criteria, map[string]string{"name": string(c), "field": c.Field()})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"criteria": criteria,
		"rubric":   scoring.Rubric(),
	})
}

// writeDomainError answers 422 for scoring errors, carrying the view the
// dashboard should keep showing. Anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error, view store.View) {
	kind := scoring.Kind(err)
	if kind == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error": err.Error(),
		"kind":  kind,
		"view":  view,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
