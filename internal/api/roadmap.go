package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Prioritization/internal/hermes"
	"github.com/MikeSquared-Agency/Prioritization/internal/roadmap"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

type RoadmapHandler struct {
	*sessions
}

func NewRoadmapHandler(ss *sessions) *RoadmapHandler {
	return &RoadmapHandler{sessions: ss}
}

type anchorRequest struct {
	Anchor string `json:"anchor"`
}

// SetAnchor moves the roadmap start date.
// PUT /api/v1/sessions/{id}/anchor
func (h *RoadmapHandler) SetAnchor(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	var req anchorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	anchor, err := time.Parse(roadmap.DateLayout, req.Anchor)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "anchor must be YYYY-MM-DD"})
		return
	}
	s.SetAnchor(anchor, h.now())
	if err := h.save(r.Context(), s); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.build(s))
}

// Roadmap returns the phases, timeline rows and summary rows for the
// session's anchor date.
// GET /api/v1/sessions/{id}/roadmap
func (h *RoadmapHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.build(s))
}

func (h *RoadmapHandler) build(s *store.Session) roadmap.Roadmap {
	rm := roadmap.Build(s.Anchor)
	end := ""
	if n := len(rm.Phases); n > 0 {
		end = rm.Phases[n-1].End.Format(roadmap.DateLayout)
	}
	hermes.Emit(h.hermes, h.logger, hermes.SubjectRoadmapRendered(s.ID.String()), hermes.RoadmapRenderedEvent{
		SessionID: s.ID.String(),
		Anchor:    rm.Anchor.Format(roadmap.DateLayout),
		Phases:    len(rm.Phases),
		End:       end,
		Timestamp: h.now(),
	})
	return rm
}
