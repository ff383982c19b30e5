package hermes

import "time"

type SessionCreatedEvent struct {
	SessionID   string    `json:"session_id"`
	Initiatives int       `json:"initiatives"`
	Timestamp   time.Time `json:"timestamp"`
}

type SessionRankedEvent struct {
	SessionID string             `json:"session_id"`
	Weights   map[string]float64 `json:"weights"`
	Top       string             `json:"top,omitempty"`
	TopScore  float64            `json:"top_score,omitempty"`
	Count     int                `json:"count"`
	Timestamp time.Time          `json:"timestamp"`
}

type SessionExportedEvent struct {
	SessionID string    `json:"session_id"`
	FileName  string    `json:"file_name"`
	Rows      int       `json:"rows"`
	Bytes     int       `json:"bytes"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionImportedEvent struct {
	SessionID string    `json:"session_id"`
	Rows      int       `json:"rows"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionExpiredEvent struct {
	SessionID string        `json:"session_id"`
	IdleFor   time.Duration `json:"idle_for_ns"`
	Timestamp time.Time     `json:"timestamp"`
}

type RoadmapRenderedEvent struct {
	SessionID string    `json:"session_id"`
	Anchor    string    `json:"anchor"`
	Phases    int       `json:"phases"`
	End       string    `json:"end"`
	Timestamp time.Time `json:"timestamp"`
}
