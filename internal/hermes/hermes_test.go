package hermes

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingClient struct {
	subjects []string
	err      error
}

func (r *recordingClient) Publish(subject string, _ interface{}) error {
	r.subjects = append(r.subjects, subject)
	return r.err
}

func (r *recordingClient) Close() {}

func TestSubjectsMatchStream(t *testing.T) {
	id := "5b8f0b9e-0000-4000-8000-000000000001"
	subjects := []string{
		SubjectSessionCreated(id),
		SubjectSessionRanked(id),
		SubjectSessionExported(id),
		SubjectSessionImported(id),
		SubjectSessionExpired(id),
		SubjectRoadmapRendered(id),
	}
	for _, s := range subjects {
		matched := false
		for _, pattern := range StreamSubjects {
			if strings.HasPrefix(s, strings.TrimSuffix(pattern, ">")) {
				matched = true
			}
		}
		assert.True(t, matched, "subject %s not captured by stream", s)
		assert.Contains(t, s, id)
	}
	assert.Equal(t, "prioritization.session."+id+".expired", SubjectSessionExpired(id))
}

func TestEmit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// nil client is a no-op
	Emit(nil, logger, "x", nil)

	rc := &recordingClient{}
	Emit(rc, logger, SubjectSessionCreated("a"), SessionCreatedEvent{SessionID: "a"})
	assert.Equal(t, []string{"prioritization.session.a.created"}, rc.subjects)

	rc.err = errors.New("down")
	Emit(rc, logger, SubjectSessionRanked("a"), nil)
	assert.Len(t, rc.subjects, 2)
}
