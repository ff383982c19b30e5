package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
)

// View is the last successfully computed state of a session's matrix.
type View struct {
	Weights    scoring.WeightSet      `json:"weights"`
	Ranking    []scoring.RankedResult `json:"ranking"`
	Selected   string                 `json:"selected,omitempty"`
	Radar      *scoring.RadarSeries   `json:"radar,omitempty"`
	ComputedAt time.Time              `json:"computed_at"`
}

// Session holds one user's inputs and the view derived from them.
type Session struct {
	ID          uuid.UUID            `json:"session_id"`
	Initiatives []scoring.Initiative `json:"initiatives"`
	RawWeights  scoring.WeightSet    `json:"raw_weights"`
	Selected    string               `json:"selected,omitempty"`
	Anchor      time.Time            `json:"anchor"`

	View          View   `json:"view"`
	LastError     string `json:"last_error,omitempty"`
	LastErrorKind string `json:"last_error_kind,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store interface {
	CreateSession(ctx context.Context, s *Session) error
	// GetSession returns nil, nil when no session has the id.
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	UpdateSession(ctx context.Context, s *Session) error
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// IdleSessions lists sessions not updated since before.
	IdleSessions(ctx context.Context, before time.Time) ([]uuid.UUID, error)
	CountSessions(ctx context.Context) (int, error)

	Close() error
}
