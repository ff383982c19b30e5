package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
)

var t0 = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func testScorer(policy scoring.ZeroWeightPolicy) *scoring.Scorer {
	return scoring.NewScorer(policy, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newComputedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(scoring.DefaultWeights(), t0, t0)
	require.NoError(t, s.Recompute(testScorer(scoring.ZeroWeightReject), t0))
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := newComputedSession(t)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Len(t, s.Initiatives, 3)
	assert.Len(t, s.View.Ranking, 3)
	assert.Equal(t, "Targeted Network Rehabilitation", s.Selected)
	require.NotNil(t, s.View.Radar)
	assert.Equal(t, s.Selected, s.View.Radar.Name)
	assert.Empty(t, s.LastError)
}

func TestRecomputeKeepsLastValidView(t *testing.T) {
	s := newComputedSession(t)
	before := s.View

	s.Initiatives[0].Cost = nil
	err := s.Recompute(testScorer(scoring.ZeroWeightReject), t0.Add(time.Minute))
	require.Error(t, err)
	assert.Equal(t, scoring.KindMissingField, s.LastErrorKind)
	assert.Equal(t, before, s.View)

	s.Initiatives[0].Cost = new(int)
	*s.Initiatives[0].Cost = 3
	s.RawWeights = scoring.WeightSet{}
	err = s.Recompute(testScorer(scoring.ZeroWeightReject), t0.Add(2*time.Minute))
	require.Error(t, err)
	assert.Equal(t, scoring.KindZeroWeight, s.LastErrorKind)
	assert.Equal(t, before, s.View)

	require.NoError(t, s.Recompute(testScorer(scoring.ZeroWeightEqual), t0.Add(3*time.Minute)))
	assert.Empty(t, s.LastError)
	assert.Equal(t, scoring.EqualWeights(), s.View.Weights)
}

func TestRecomputeRepopulatesDeletedSelection(t *testing.T) {
	s := newComputedSession(t)
	require.NoError(t, s.Select("Cost-Recovery & Household Metering", t0))

	// delete the selected row
	for i, in := range s.Initiatives {
		if in.Name == "Cost-Recovery & Household Metering" {
			require.NoError(t, s.DeleteRow(i))
		}
	}
	require.NoError(t, s.Recompute(testScorer(scoring.ZeroWeightEqual), t0))
	assert.Equal(t, s.View.Ranking[0].Name, s.Selected)
	assert.NotContains(t, s.Options(), "Cost-Recovery & Household Metering")
}

func TestRecomputeEmptyTable(t *testing.T) {
	s := newComputedSession(t)
	s.Initiatives = nil
	require.NoError(t, s.Recompute(testScorer(scoring.ZeroWeightEqual), t0))
	assert.Empty(t, s.View.Ranking)
	assert.Nil(t, s.View.Radar)
	assert.Empty(t, s.Selected)
}

func TestSelectUnknown(t *testing.T) {
	s := newComputedSession(t)
	prev := s.Selected

	err := s.Select("gone", t0)
	assert.Equal(t, scoring.KindNotFound, scoring.Kind(err))
	assert.Equal(t, prev, s.Selected)
	assert.Equal(t, prev, s.View.Radar.Name)
}

func TestDeleteRowOutOfRange(t *testing.T) {
	s := newComputedSession(t)
	assert.ErrorIs(t, s.DeleteRow(3), ErrRowOutOfRange)
	assert.ErrorIs(t, s.DeleteRow(-1), ErrRowOutOfRange)
	require.NoError(t, s.DeleteRow(1))
	assert.Len(t, s.Initiatives, 2)
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	s := newComputedSession(t)
	require.NoError(t, m.CreateSession(ctx, s))

	// mutating the caller's copy does not reach the store
	*s.Initiatives[0].Impact = 1
	s.View.Ranking[0].Name = "mutated"

	got, err := m.GetSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, *got.Initiatives[0].Impact)
	assert.Equal(t, "Targeted Network Rehabilitation", got.View.Ranking[0].Name)

	got.Selected = "Selective Pluvial Drainage Upgrades"
	require.NoError(t, m.UpdateSession(ctx, got))
	again, err := m.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Selective Pluvial Drainage Upgrades", again.Selected)
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	missing, err := m.GetSession(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, m.UpdateSession(ctx, &Session{ID: uuid.New()}))

	old := NewSession(scoring.DefaultWeights(), t0, t0)
	fresh := NewSession(scoring.DefaultWeights(), t0, t0.Add(time.Hour))
	require.NoError(t, m.CreateSession(ctx, old))
	require.NoError(t, m.CreateSession(ctx, fresh))
	assert.Error(t, m.CreateSession(ctx, old), "duplicate id")

	n, err := m.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	idle, err := m.IdleSessions(ctx, t0.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{old.ID}, idle)

	require.NoError(t, m.DeleteSession(ctx, old.ID))
	n, _ = m.CountSessions(ctx)
	assert.Equal(t, 1, n)

	require.NoError(t, m.Close())
	n, _ = m.CountSessions(ctx)
	assert.Equal(t, 0, n)
}

func TestSessionMutators(t *testing.T) {
	s := newComputedSession(t)

	assert.Error(t, s.SetWeights(scoring.WeightSet{Impact: -1}))
	require.NoError(t, s.SetWeights(scoring.WeightSet{Impact: 3, Cost: 0.5}))
	assert.Equal(t, scoring.WeightSet{Impact: 1, Cost: 0.5}, s.RawWeights)

	table := []scoring.Initiative{scoring.NewInitiative("X", 1, 2, 3, 4)}
	s.ReplaceInitiatives(table)
	*table[0].Impact = 5
	assert.Equal(t, 1, *s.Initiatives[0].Impact)

	s.AddInitiative(scoring.NewInitiative("Y", 5, 5, 5, 5))
	require.NoError(t, s.Recompute(testScorer(scoring.ZeroWeightReject), t0))
	assert.Equal(t, []string{"Y", "X"}, s.Options())

	later := t0.Add(time.Hour)
	anchor := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	s.SetAnchor(anchor, later)
	assert.Equal(t, anchor, s.Anchor)
	assert.Equal(t, later, s.UpdatedAt)
}
