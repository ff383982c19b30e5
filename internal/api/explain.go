package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type ExplainHandler struct {
	*sessions
}

func NewExplainHandler(ss *sessions) *ExplainHandler {
	return &ExplainHandler{sessions: ss}
}

// Explain returns the per-criterion breakdown of one ranked row.
// GET /api/v1/sessions/{id}/explain/{rank}
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	rank, err := strconv.Atoi(chi.URLParam(r, "rank"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid rank"})
		return
	}
	if rank < 1 || rank > len(s.View.Ranking) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "rank out of range"})
		return
	}

	res := s.View.Ranking[rank-1]
	resp := map[string]interface{}{
		"rank":           res.Rank,
		"initiative":     res.Name,
		"weighted_score": res.WeightedScore,
		"weights":        s.View.Weights,
		"factors":        res.Factors,
	}
	if rank > 1 {
		resp["gap_to_previous"] = s.View.Ranking[rank-2].WeightedScore - res.WeightedScore
	}
	if rank < len(s.View.Ranking) {
		resp["lead_over_next"] = res.WeightedScore - s.View.Ranking[rank].WeightedScore
	}

	writeJSON(w, http.StatusOK, resp)
}
