package server

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/artifacts"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/document"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxUploadBytes bounds the size of an uploaded resume document.
const maxUploadBytes = 20 << 20 // 20 MiB

// handleParse accepts a multipart upload under the "file" field, extracts
// its text, runs the extraction pipeline and responds with the parsed
// record. The record is also written to the output directory.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	// Stage the upload on disk; the PDF reader needs a seekable file.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to stage upload")
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "failed to stage upload")
		return
	}
	tmp.Close()

	runID, runErr := s.startRun(r, header.Filename, contentType)
	if runErr != nil {
		log.Printf("Warning: failed to record run: %v", runErr)
	}

	text, err := document.ExtractText(tmp.Name(), contentType)
	if err != nil {
		s.finishRun(r, runID, db.StatusFailed, nil)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := parsing.Parse(r.Context(), text, parsing.Options{Client: s.client})
	if err != nil {
		// Partial extraction: the record still holds the surviving groups.
		log.Printf("Warning: extraction degraded: %v", err)
	}

	if s.outputDir != "" {
		if _, err := artifacts.Write(s.outputDir, header.Filename, record); err != nil {
			log.Printf("Warning: failed to write output artifact: %v", err)
		}
	}

	s.finishRun(r, runID, db.StatusCompleted, record)
	s.jsonResponse(w, http.StatusOK, record)
}

// handleGetOutput serves a previously written output file by name. Names are
// restricted to the output directory.
func (s *Server) handleGetOutput(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		s.errorResponse(w, http.StatusBadRequest, "invalid output name")
		return
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	record, err := artifacts.Read(filepath.Join(s.outputDir, name))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "output not found: "+name)
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListRuns lists recent parse runs when persistence is configured.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, http.StatusNotFound, "run persistence is not configured")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	runs, err := s.database.ListRuns(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}

	s.jsonResponse(w, http.StatusOK, runs)
}

// startRun records the beginning of a run when persistence is configured.
// Returns uuid.Nil when persistence is off.
func (s *Server) startRun(r *http.Request, sourceName, contentType string) (uuid.UUID, error) {
	if s.database == nil {
		return uuid.Nil, nil
	}
	return s.database.CreateRun(r.Context(), sourceName, contentType)
}

// finishRun completes a previously started run. A nil run ID is a no-op.
func (s *Server) finishRun(r *http.Request, runID uuid.UUID, status string, record *types.ResumeRecord) {
	if s.database == nil || runID == uuid.Nil {
		return
	}
	if err := s.database.CompleteRun(r.Context(), runID, status, record); err != nil {
		log.Printf("Warning: failed to complete run %s: %v", runID, err)
	}
}
