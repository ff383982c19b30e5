package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Prioritization/internal/dashboard"
	"github.com/MikeSquared-Agency/Prioritization/internal/roadmap"
	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

// SessionCookie carries the browser's session id.
const SessionCookie = "prioritization_session"

// PagesHandler serves the HTML dashboard. Every form posts back, updates the
// cookie's session and redirects to the page it came from.
type PagesHandler struct {
	*sessions
	transfer *TransferHandler
	views    *dashboard.Renderer
}

func NewPagesHandler(ss *sessions, transfer *TransferHandler, views *dashboard.Renderer) *PagesHandler {
	return &PagesHandler{sessions: ss, transfer: transfer, views: views}
}

// current returns the cookie's session, starting a new one when the cookie is
// missing or its session has expired.
func (h *PagesHandler) current(w http.ResponseWriter, r *http.Request) (*store.Session, error) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		s, err := h.lookup(r.Context(), c.Value)
		if err != nil {
			return nil, err
		}
		if s != nil {
			return s, nil
		}
	}
	s, err := h.create(r.Context())
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    s.ID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.cfg.SessionTTL() / time.Second),
	})
	return s, nil
}

// Matrix renders the prioritization matrix page.
// GET /
func (h *PagesHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	s, err := h.current(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	page, err := dashboard.NewMatrixPage(s)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Matrix(w, page); err != nil {
		h.logger.Error("render matrix failed", "session_id", s.ID, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// Roadmap renders the roadmap page.
// GET /roadmap
func (h *PagesHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	s, err := h.current(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	page, err := dashboard.NewRoadmapPage(s)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Roadmap(w, page); err != nil {
		h.logger.Error("render roadmap failed", "session_id", s.ID, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// update runs fn against the cookie's session, saves it and redirects to
// target. Scoring errors are recorded on the session by fn and shown on the
// next render.
func (h *PagesHandler) update(w http.ResponseWriter, r *http.Request, target string, fn func(*store.Session)) {
	s, err := h.current(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fn(s)
	if err := h.save(r.Context(), s); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// SaveTable replaces the score table from the editor form.
// POST /initiatives
func (h *PagesHandler) SaveTable(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	rows := parseTableForm(r.PostForm["name"], r.PostForm["score"])
	h.update(w, r, "/", func(s *store.Session) {
		s.ReplaceInitiatives(rows)
		_ = h.recompute(s)
	})
}

// DeleteRow removes one row of the table.
// POST /initiatives/{index}/delete
func (h *PagesHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	h.update(w, r, "/", func(s *store.Session) {
		if s.DeleteRow(idx) == nil {
			_ = h.recompute(s)
		}
	})
}

// SetWeights applies the slider form. Unparsable values keep the current weight.
// POST /weights
func (h *PagesHandler) SetWeights(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.update(w, r, "/", func(s *store.Session) {
		ws := s.RawWeights
		for _, c := range scoring.Criteria() {
			v, err := strconv.ParseFloat(r.PostForm.Get(c.Field()), 64)
			if err != nil {
				continue
			}
			ws.Set(c, v)
		}
		if s.SetWeights(ws) == nil {
			_ = h.recompute(s)
		}
	})
}

// Select points the radar at another initiative.
// POST /selection
func (h *PagesHandler) Select(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.update(w, r, "/", func(s *store.Session) {
		if err := s.Select(r.PostForm.Get("name"), h.now()); err != nil {
			h.metrics.Error(scoring.Kind(err))
		}
	})
}

// Import loads the table from an uploaded workbook.
// POST /import
func (h *PagesHandler) Import(w http.ResponseWriter, r *http.Request) {
	rows, err := h.transfer.readUpload(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.update(w, r, "/", func(s *store.Session) {
		h.transfer.replace(s, rows)
		_ = h.recompute(s)
	})
}

// SetAnchor moves the roadmap start date.
// POST /anchor
func (h *PagesHandler) SetAnchor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	anchor, err := time.Parse(roadmap.DateLayout, r.PostForm.Get("anchor"))
	if err != nil {
		http.Error(w, "anchor must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	h.update(w, r, "/roadmap", func(s *store.Session) {
		s.SetAnchor(anchor, h.now())
	})
}

// parseTableForm rebuilds the table from parallel name and score fields, four
// scores per name. A blank or non-integer score is left missing so the
// recomputation reports it. Fully blank rows are dropped.
func parseTableForm(names, scores []string) []scoring.Initiative {
	criteria := scoring.Criteria()
	rows := make([]scoring.Initiative, 0, len(names))
	for i, name := range names {
		in := scoring.Initiative{Name: strings.TrimSpace(name)}
		blank := in.Name == ""
		for j, c := range criteria {
			k := i*len(criteria) + j
			if k >= len(scores) {
				continue
			}
			raw := strings.TrimSpace(scores[k])
			if raw != "" {
				blank = false
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			in.SetScore(c, v)
		}
		if !blank {
			rows = append(rows, in)
		}
	}
	return rows
}
