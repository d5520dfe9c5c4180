package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/artifacts"
	"github.com/jonathan/resume-parser/internal/document"
	"github.com/jonathan/resume-parser/internal/types"
)

const uploadResume = `Jane A. Doe
Senior Software Engineer
jane.doe@example.com | +1 415 555 0134

Engineer working with Python and Docker.`

func testServer(t *testing.T) *Server {
	t.Helper()
	return &Server{outputDir: t.TempDir()}
}

// multipartUpload builds a multipart body with one file part of the given
// content type.
func multipartUpload(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleParsePlainText(t *testing.T) {
	s := testServer(t)
	body, contentType := multipartUpload(t, "resume.txt", "text/plain", uploadResume)

	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var record types.ResumeRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "Jane A. Doe", record.CandidateName)
	assert.Equal(t, []string{"jane.doe@example.com"}, record.ContactInfo.EmailAddresses)
	assert.Equal(t, types.MethodDeterministic, record.ParsingMetadata.MethodUsed)
}

func TestHandleParseWritesOutputArtifact(t *testing.T) {
	s := testServer(t)
	body, contentType := multipartUpload(t, "resume.txt", "text/plain", uploadResume)

	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	record, err := artifacts.Read(artifacts.OutputPath(s.outputDir, "resume.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane A. Doe", record.CandidateName)
}

func TestHandleParseUnsupportedFormat(t *testing.T) {
	s := testServer(t)
	body, contentType := multipartUpload(t, "resume.zip", "application/zip", "binary")

	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandleParseEmptyDocument(t *testing.T) {
	s := testServer(t)
	body, contentType := multipartUpload(t, "resume.txt", "text/plain", "   \n\t ")

	req := httptest.NewRequest(http.MethodPost, "/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleParseMissingFileField(t *testing.T) {
	s := testServer(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetOutput(t *testing.T) {
	s := testServer(t)
	record := types.NewResumeRecord()
	record.CandidateName = "Jane A. Doe"
	_, err := artifacts.Write(s.outputDir, "resume.pdf", record)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/outputs/resume_output.json", nil)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got types.ResumeRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Jane A. Doe", got.CandidateName)
}

func TestHandleGetOutputUnknownName(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/outputs/missing_output.json", nil)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetOutputRejectsTraversal(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/outputs/..%2Fsecret.json", nil)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestHandleListRunsWithoutDatabase(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unsupported format", &document.UnsupportedFormatError{ContentType: "application/zip"}, http.StatusUnsupportedMediaType},
		{"no extractable text", &document.NoExtractableTextError{Path: "x"}, http.StatusUnprocessableEntity},
		{"extraction failed", &document.ExtractionFailedError{Path: "x", Cause: errors.New("bad")}, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
