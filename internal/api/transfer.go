package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MikeSquared-Agency/Prioritization/internal/export"
	"github.com/MikeSquared-Agency/Prioritization/internal/hermes"
	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

// maxUploadBytes caps spreadsheet uploads.
const maxUploadBytes = 10 << 20

var errNoFile = errors.New(`multipart field "file" required`)

// TransferHandler moves the matrix in and out of xlsx workbooks.
type TransferHandler struct {
	*sessions
}

func NewTransferHandler(ss *sessions) *TransferHandler {
	return &TransferHandler{sessions: ss}
}

// Export downloads the last valid ranking as prioritization_matrix.xlsx.
// GET /api/v1/sessions/{id}/export
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	data, err := h.export(s)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *TransferHandler) export(s *store.Session) ([]byte, error) {
	data, err := export.ExportTable(s.View.Ranking)
	if err != nil {
		h.metrics.Error("")
		return nil, fmt.Errorf("export session %s: %w", s.ID, err)
	}
	h.metrics.Exported(len(data))
	h.logger.Info("matrix exported", "session_id", s.ID, "rows", len(s.View.Ranking), "bytes", len(data))
	hermes.Emit(h.hermes, h.logger, hermes.SubjectSessionExported(s.ID.String()), hermes.SessionExportedEvent{
		SessionID: s.ID.String(),
		FileName:  export.FileName,
		Rows:      len(s.View.Ranking),
		Bytes:     len(data),
		Timestamp: h.now(),
	})
	return data, nil
}

// Import replaces the score table with the rows of an uploaded workbook in
// the export layout. A Weighted Score column, if present, is ignored.
// POST /api/v1/sessions/{id}/import
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}
	rows, err := h.readUpload(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.replace(s, rows)
	h.respond(w, r, s, h.recompute(s))
}

// readUpload pulls the "file" part out of a multipart request.
func (h *TransferHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]scoring.Initiative, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("parse upload: %w", err)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, errNoFile
	}
	defer f.Close()
	return export.ReadInitiatives(f)
}

func (h *TransferHandler) replace(s *store.Session, rows []scoring.Initiative) {
	s.ReplaceInitiatives(rows)
	h.metrics.Imported()
	h.logger.Info("matrix imported", "session_id", s.ID, "rows", len(rows))
	hermes.Emit(h.hermes, h.logger, hermes.SubjectSessionImported(s.ID.String()), hermes.SessionImportedEvent{
		SessionID: s.ID.String(),
		Rows:      len(rows),
		Timestamp: h.now(),
	})
}
