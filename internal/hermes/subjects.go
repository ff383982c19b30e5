package hermes

const (
	StreamName   = "PRIORITIZATION_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

// StreamSubjects are captured by the events stream.
var StreamSubjects = []string{"prioritization.session.>", "prioritization.roadmap.>"}

func SubjectSessionCreated(sessionID string) string  { return "prioritization.session." + sessionID + ".created" }
func SubjectSessionRanked(sessionID string) string   { return "prioritization.session." + sessionID + ".ranked" }
func SubjectSessionExported(sessionID string) string { return "prioritization.session." + sessionID + ".exported" }
func SubjectSessionImported(sessionID string) string { return "prioritization.session." + sessionID + ".imported" }
func SubjectSessionExpired(sessionID string) string  { return "prioritization.session." + sessionID + ".expired" }

func SubjectRoadmapRendered(sessionID string) string { return "prioritization.roadmap." + sessionID + ".rendered" }
