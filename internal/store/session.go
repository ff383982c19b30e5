package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
)

// NewSession starts a session from the default table and the given weights
// and anchor. The caller runs Recompute before showing it.
func NewSession(weights scoring.WeightSet, anchor time.Time, now time.Time) *Session {
	return &Session{
		ID:          uuid.New(),
		Initiatives: scoring.DefaultInitiatives(),
		RawWeights:  weights,
		Anchor:      anchor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Recompute rebuilds the view from the current inputs. On failure the previous
// view is kept and the error is recorded on the session and returned. A
// selection that no longer exists falls back to the top-ranked initiative.
func (s *Session) Recompute(sc *scoring.Scorer, now time.Time) error {
	s.UpdatedAt = now

	ranking, err := sc.Rank(s.Initiatives, s.RawWeights)
	if err != nil {
		s.LastError = err.Error()
		s.LastErrorKind = scoring.Kind(err)
		return err
	}

	view := View{
		Weights:    ranking.Weights,
		Ranking:    ranking.Results,
		ComputedAt: now,
	}
	if len(ranking.Results) > 0 {
		sel, err := scoring.SelectForComparison(ranking.Results, s.Selected)
		if err != nil {
			sel = ranking.Results[0]
		}
		radar := scoring.Radar(sel)
		view.Selected = sel.Name
		view.Radar = &radar
	}
	s.Selected = view.Selected

	s.View = view
	s.LastError = ""
	s.LastErrorKind = ""
	return nil
}

// Select points the radar chart at name. An unknown name leaves the selection
// unchanged and returns a *scoring.NotFoundError.
func (s *Session) Select(name string, now time.Time) error {
	sel, err := scoring.SelectForComparison(s.View.Ranking, name)
	if err != nil {
		s.LastError = err.Error()
		s.LastErrorKind = scoring.Kind(err)
		return err
	}
	radar := scoring.Radar(sel)
	s.Selected = sel.Name
	s.View.Selected = sel.Name
	s.View.Radar = &radar
	s.LastError = ""
	s.LastErrorKind = ""
	s.UpdatedAt = now
	return nil
}

// SetWeights records new raw weights, pinned into [0,1].
func (s *Session) SetWeights(w scoring.WeightSet) error {
	if err := w.Validate(); err != nil {
		return err
	}
	s.RawWeights = w.Clamp()
	return nil
}

// ReplaceInitiatives swaps in a new table.
func (s *Session) ReplaceInitiatives(in []scoring.Initiative) {
	s.Initiatives = scoring.CloneInitiatives(in)
}

// AddInitiative appends a row to the table.
func (s *Session) AddInitiative(in scoring.Initiative) {
	s.Initiatives = append(s.Initiatives, in.Clone())
}

// SetAnchor moves the roadmap start date.
func (s *Session) SetAnchor(anchor time.Time, now time.Time) {
	s.Anchor = anchor
	s.UpdatedAt = now
}

// Options lists the names the selector offers, in ranked order.
func (s *Session) Options() []string {
	return scoring.Names(s.View.Ranking)
}

// ErrRowOutOfRange is returned when a row index does not exist.
var ErrRowOutOfRange = errors.New("row index out of range")

// DeleteRow removes the initiative at index i.
func (s *Session) DeleteRow(i int) error {
	if i < 0 || i >= len(s.Initiatives) {
		return ErrRowOutOfRange
	}
	s.Initiatives = append(s.Initiatives[:i:i], s.Initiatives[i+1:]...)
	return nil
}

// Clone deep-copies the session so callers can mutate it freely.
func (s *Session) Clone() *Session {
	out := *s
	out.Initiatives = scoring.CloneInitiatives(s.Initiatives)
	if s.View.Ranking != nil {
		out.View.Ranking = make([]scoring.RankedResult, len(s.View.Ranking))
		for i, r := range s.View.Ranking {
			r.Initiative = r.Initiative.Clone()
			r.Factors = append([]scoring.FactorResult(nil), r.Factors...)
			out.View.Ranking[i] = r
		}
	}
	if s.View.Radar != nil {
		radar := *s.View.Radar
		radar.Categories = append([]scoring.Criterion(nil), radar.Categories...)
		radar.Values = append([]float64(nil), radar.Values...)
		out.View.Radar = &radar
	}
	return &out
}
